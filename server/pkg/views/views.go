package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gofiber/template/html/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates
var templates embed.FS

//go:embed about.md
var aboutMarkdown []byte

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Layout wraps every page.
const Layout = "layouts/main"

// MenuItem is an entry of the sidebar.
type MenuItem struct {
	Name string
	Path string
}

// Menu lists the four modes in sidebar order.
var Menu = []MenuItem{
	{Name: "Text Analysis", Path: "/analysis"},
	{Name: "Translation", Path: "/translation"},
	{Name: "Sentiment Analysis", Path: "/sentiment"},
	{Name: "About", Path: "/about"},
}

// Engine returns the html engine over the embedded templates.
func Engine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("json", toJSON)
	engine.AddFunc("pngsrc", pngSource)
	return engine
}

func toJSON(v any) (string, error) {
	bt, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bt), nil
}

// pngSource marks base64 PNG data as a safe image URL.
func pngSource(b64 string) template.URL {
	return template.URL("data:image/png;base64," + b64)
}

// About renders the About page markdown.
func About() (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(aboutMarkdown, &buf); err != nil {
		return "", fmt.Errorf("render about: %w", err)
	}
	return template.HTML(buf.String()), nil
}
