package export

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

type doc struct {
	Name  string `json:"name" yaml:"name" msgpack:"name"`
	Count int    `json:"count" yaml:"count" msgpack:"count"`
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": JSON, "JSON": JSON, "yml": YAML, "msgpack": MsgPack} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatFromAccept(t *testing.T) {
	assert.Equal(t, JSON, FormatFromAccept(""))
	assert.Equal(t, JSON, FormatFromAccept("text/html, */*"))
	assert.Equal(t, YAML, FormatFromAccept("application/yaml"))
	assert.Equal(t, MsgPack, FormatFromAccept("text/html;q=0.9, application/x-msgpack"))
}

func TestEncode(t *testing.T) {
	in := doc{Name: "fox", Count: 3}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, JSON, in))
	assert.Contains(t, buf.String(), "\n  \"name\": \"fox\"")
	var fromJSON doc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, in, fromJSON)

	buf.Reset()
	require.NoError(t, Encode(&buf, YAML, in))
	assert.Equal(t, "name: fox\ncount: 3\n", buf.String())
	var fromYAML doc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, in, fromYAML)

	buf.Reset()
	require.NoError(t, Encode(&buf, MsgPack, in))
	var fromMsgpack doc
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &fromMsgpack))
	assert.Equal(t, in, fromMsgpack)

	assert.ErrorIs(t, Encode(&buf, Format("xml"), in), ErrUnknownFormat)
}
