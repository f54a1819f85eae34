package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/textlab/nlp/pipeline"
	"github.com/oarkflow/textlab/nlp/translate"
	"github.com/oarkflow/textlab/server/pkg/metrics"
	"github.com/oarkflow/textlab/server/pkg/views"
)

func page(title, path string) fiber.Map {
	return fiber.Map{
		"Title":   title,
		"Active":  path,
		"Menu":    views.Menu,
		"Text":    Placeholder,
		"Warning": nil,
		"Error":   "",
	}
}

// showFailure puts err on the page as a warning or an error box.
func (h *Handlers) showFailure(data fiber.Map, mode string, err error) {
	if w, ok := pipeline.AsWarning(err); ok {
		metrics.ObserveRequest(mode, metrics.Warning)
		data["Warning"] = w
		return
	}
	metrics.ObserveRequest(mode, metrics.Failed)
	h.Logger.Error("page request failed", slog.String("mode", mode), slog.Any("error", err))
	data["Error"] = userMessage(err)
}

func (h *Handlers) AnalysisPage(c *fiber.Ctx) error {
	data := page("Text Analysis", "/analysis")
	data["Report"] = nil
	if c.Method() == fiber.MethodPost {
		text := c.FormValue("text")
		data["Text"] = text
		report, err := h.Analyzer.Analyze(c.UserContext(), text)
		if err != nil {
			h.showFailure(data, "analysis", err)
		} else {
			metrics.ObserveDetection(report.Language)
			metrics.ObserveRequest("analysis", metrics.OK)
			data["Report"] = report
		}
	}
	return c.Render("analysis", data, views.Layout)
}

func (h *Handlers) TranslationPage(c *fiber.Ctx) error {
	data := page("Translation", "/translation")
	data["Languages"] = translate.Targets
	data["Target"] = translate.Targets[0].Name
	data["Result"] = nil
	if c.Method() == fiber.MethodPost {
		text := c.FormValue("text")
		target := c.FormValue("target", translate.Targets[0].Name)
		data["Text"] = text
		data["Target"] = target
		if h.Translator == nil {
			data["Error"] = "Translation is not configured."
			return c.Render("translation", data, views.Layout)
		}
		result, err := h.translate(c, text, target)
		if err != nil {
			h.showFailure(data, "translation", err)
		} else {
			metrics.ObserveRequest("translation", metrics.OK)
			data["Result"] = result
		}
	}
	return c.Render("translation", data, views.Layout)
}

func (h *Handlers) SentimentPage(c *fiber.Ctx) error {
	data := page("Sentiment Analysis", "/sentiment")
	data["Result"] = nil
	if c.Method() == fiber.MethodPost {
		text := c.FormValue("text")
		data["Text"] = text
		result, err := h.Analyzer.Sentiment(c.UserContext(), text)
		if err != nil {
			h.showFailure(data, "sentiment", err)
		} else {
			metrics.ObserveDetection(result.Language)
			metrics.ObserveRequest("sentiment", metrics.OK)
			data["Result"] = result
		}
	}
	return c.Render("sentiment", data, views.Layout)
}

func (h *Handlers) AboutPage(c *fiber.Ctx) error {
	data := page("About", "/about")
	data["About"] = h.about
	return c.Render("about", data, views.Layout)
}
