package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	body := []byte(`[[["Bonjour. ","Hello. ",null,null,1],["Comment ça va?","How are you?",null,null,1]],null,"en"]`)
	got, err := parseResponse(body)
	require.NoError(t, err)
	assert.Equal(t, "Bonjour. Comment ça va?", got)
}

func TestParseResponseErrors(t *testing.T) {
	for _, body := range []string{`not json`, `[]`, `[null]`, `[[]]`} {
		_, err := parseResponse([]byte(body))
		assert.ErrorIs(t, err, ErrUpstream, body)
	}
}

func TestClientTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate_a/single", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "gtx", q.Get("client"))
		assert.Equal(t, "auto", q.Get("sl"))
		assert.Equal(t, "fr", q.Get("tl"))
		assert.Equal(t, "Hello", q.Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[["Bonjour","Hello",null,null,1]],null,"en"]`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL + "/", Timeout: 2 * time.Second})
	got, err := c.Translate(context.Background(), "Hello", "", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", got)
}

func TestClientUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL})
	_, err := c.Translate(context.Background(), "Hello", "en", "fr")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestClientExpiredContext(t *testing.T) {
	c := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:1"})
	ctx, cancel := context.WithTimeout(context.Background(), -time.Second)
	defer cancel()
	_, err := c.Translate(ctx, "Hello", "en", "fr")
	assert.Error(t, err)
}
