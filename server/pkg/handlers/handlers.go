package handlers

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/kaptinlin/jsonschema"

	"github.com/oarkflow/textlab/nlp/export"
	"github.com/oarkflow/textlab/nlp/pipeline"
	"github.com/oarkflow/textlab/nlp/translate"
	"github.com/oarkflow/textlab/server/pkg/metrics"
	"github.com/oarkflow/textlab/server/pkg/views"
)

// Placeholder prefills every text area.
const Placeholder = "Enter some text in English..."

// Handlers serves the pages and the JSON API. A nil Translator disables
// the translation mode.
type Handlers struct {
	Analyzer   *pipeline.Analyzer
	Translator *translate.Service
	Logger     *slog.Logger

	about   template.HTML
	schemas map[string]*jsonschema.Schema
}

func New(analyzer *pipeline.Analyzer, translator *translate.Service, logger *slog.Logger) (*Handlers, error) {
	if logger == nil {
		logger = slog.Default()
	}
	about, err := views.About()
	if err != nil {
		return nil, err
	}
	schemas, err := compileSchemas()
	if err != nil {
		return nil, err
	}
	return &Handlers{
		Analyzer:   analyzer,
		Translator: translator,
		Logger:     logger,
		about:      about,
		schemas:    schemas,
	}, nil
}

// Register mounts every route on app.
func (h *Handlers) Register(app fiber.Router) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/analysis")
	})
	app.Get("/analysis", h.AnalysisPage)
	app.Post("/analysis", h.AnalysisPage)
	app.Get("/translation", h.TranslationPage)
	app.Post("/translation", h.TranslationPage)
	app.Get("/sentiment", h.SentimentPage)
	app.Post("/sentiment", h.SentimentPage)
	app.Get("/about", h.AboutPage)

	api := app.Group("/api/v1")
	api.Post("/analyze", h.Analyze)
	api.Post("/sentiment", h.Sentiment)
	api.Post("/translate", h.Translate)
	api.Get("/languages", h.Languages)
	api.Post("/wordcloud", h.WordCloud)
}

// respond encodes v in the format the client accepts.
func respond(c *fiber.Ctx, status int, v any) error {
	format := export.FormatFromAccept(c.Get(fiber.HeaderAccept))
	var buf bytes.Buffer
	if err := export.Encode(&buf, format, v); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, export.ContentType[format])
	return c.Status(status).Send(buf.Bytes())
}

func errorBody(code, message string) fiber.Map {
	return fiber.Map{"error": code, "message": message}
}

// fail maps err to a status: warnings 422, upstream failures 502,
// anything else 500.
func (h *Handlers) fail(c *fiber.Ctx, mode string, err error) error {
	if w, ok := pipeline.AsWarning(err); ok {
		metrics.ObserveRequest(mode, metrics.Warning)
		return respond(c, fiber.StatusUnprocessableEntity, w)
	}
	metrics.ObserveRequest(mode, metrics.Failed)
	if upstream(err) {
		h.Logger.Warn("translation upstream failed", slog.String("mode", mode), slog.Any("error", err))
		return respond(c, fiber.StatusBadGateway, errorBody("upstream", "The translation service is unavailable, try again later."))
	}
	h.Logger.Error("request failed", slog.String("mode", mode), slog.Any("error", err))
	return respond(c, fiber.StatusInternalServerError, errorBody("internal", "Something went wrong."))
}

func upstream(err error) bool {
	return errors.Is(err, translate.ErrUpstream) || errors.Is(err, context.DeadlineExceeded)
}

// userMessage is the text shown on a page for a non-warning failure.
func userMessage(err error) string {
	if upstream(err) {
		return "The translation service is unavailable, try again later."
	}
	return "Something went wrong."
}
