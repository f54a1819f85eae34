package views

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineRendersPages(t *testing.T) {
	engine := Engine()
	require.NoError(t, engine.Load())

	var buf bytes.Buffer
	err := engine.Render(&buf, "sentiment", map[string]any{
		"Title":  "Sentiment Analysis",
		"Active": "/sentiment",
		"Menu":   Menu,
		"Text":   "Enter some text in English...",
	}, Layout)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "NLP Examples")
	assert.Contains(t, out, `<a href="/sentiment" class="active">Sentiment Analysis</a>`)
	assert.Contains(t, out, "Analyze Sentiment")
	assert.Contains(t, out, "Enter some text in English...")
}

func TestPNGSourceIsNotEscaped(t *testing.T) {
	tpl := template.Must(template.New("img").Funcs(template.FuncMap{"pngsrc": pngSource}).Parse(`<img src="{{pngsrc .}}">`))
	var buf bytes.Buffer
	require.NoError(t, tpl.Execute(&buf, "iVBORw0KGgo="))
	assert.Equal(t, `<img src="data:image/png;base64,iVBORw0KGgo=">`, buf.String())
}

func TestAbout(t *testing.T) {
	html, err := About()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(html), "<h3>NLP Examples</h3>"))
	assert.Contains(t, string(html), "<strong>Translation</strong>")
}
