package handlers

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/textlab/nlp/pipeline"
	"github.com/oarkflow/textlab/nlp/translate"
	"github.com/oarkflow/textlab/nlp/wordcloud"
	"github.com/oarkflow/textlab/server/pkg/metrics"
)

type textRequest struct {
	Text string `json:"text"`
}

type translateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

type wordCloudRequest struct {
	Text     string `json:"text"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MaxWords int    `json:"max_words"`
}

// bind validates the JSON body against the named schema and decodes it
// into dst.
func (h *Handlers) bind(c *fiber.Ctx, schema string, dst any) error {
	var data map[string]any
	if err := json.Unmarshal(c.Body(), &data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := validate(h.schemas[schema], data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := json.Unmarshal(c.Body(), dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	return nil
}

func badRequest(c *fiber.Ctx, err error) error {
	msg := err.Error()
	if fe, ok := err.(*fiber.Error); ok {
		msg = fe.Message
	}
	return respond(c, fiber.StatusBadRequest, errorBody("bad_request", msg))
}

func (h *Handlers) Analyze(c *fiber.Ctx) error {
	var req textRequest
	if err := h.bind(c, "text", &req); err != nil {
		return badRequest(c, err)
	}
	report, err := h.Analyzer.Analyze(c.UserContext(), req.Text)
	if err != nil {
		return h.fail(c, "analysis", err)
	}
	metrics.ObserveDetection(report.Language)
	metrics.ObserveRequest("analysis", metrics.OK)
	return respond(c, fiber.StatusOK, report)
}

func (h *Handlers) Sentiment(c *fiber.Ctx) error {
	var req textRequest
	if err := h.bind(c, "text", &req); err != nil {
		return badRequest(c, err)
	}
	result, err := h.Analyzer.Sentiment(c.UserContext(), req.Text)
	if err != nil {
		return h.fail(c, "sentiment", err)
	}
	metrics.ObserveDetection(result.Language)
	metrics.ObserveRequest("sentiment", metrics.OK)
	return respond(c, fiber.StatusOK, result)
}

func (h *Handlers) Translate(c *fiber.Ctx) error {
	if h.Translator == nil {
		return respond(c, fiber.StatusServiceUnavailable, errorBody("translation_disabled", "Translation is not configured."))
	}
	var req translateRequest
	if err := h.bind(c, "translate", &req); err != nil {
		return badRequest(c, err)
	}
	result, err := h.translate(c, req.Text, req.Target)
	if err != nil {
		return h.fail(c, "translation", err)
	}
	metrics.ObserveRequest("translation", metrics.OK)
	return respond(c, fiber.StatusOK, result)
}

func (h *Handlers) translate(c *fiber.Ctx, text, target string) (*translate.Result, error) {
	start := time.Now()
	result, err := h.Translator.Translate(c.UserContext(), text, target)
	outcome := metrics.OK
	if err != nil {
		outcome = metrics.Failed
	}
	metrics.ObserveTranslation(targetLabel(target), outcome, time.Since(start))
	if err == nil {
		metrics.ObserveDetection(result.Source)
	}
	return result, err
}

// targetLabel keeps the metric label set bounded to the supported targets.
func targetLabel(target string) string {
	if lang, ok := translate.Lookup(target); ok {
		return lang.Code
	}
	return "unsupported"
}

func (h *Handlers) Languages(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, translate.Targets)
}

// WordCloud renders the word cloud of the posted text as a PNG.
func (h *Handlers) WordCloud(c *fiber.Ctx) error {
	var req wordCloudRequest
	if err := h.bind(c, "wordcloud", &req); err != nil {
		return badRequest(c, err)
	}
	if req.Text == "" {
		return h.fail(c, "wordcloud", pipeline.ErrEmpty)
	}
	opts := h.Analyzer.CloudOptions()
	if req.Width > 0 {
		opts.Width = req.Width
	}
	if req.Height > 0 {
		opts.Height = req.Height
	}
	if req.MaxWords > 0 {
		opts.MaxWords = req.MaxWords
	}
	png, err := wordcloud.Generate(req.Text, nil, opts)
	if err != nil {
		return h.fail(c, "wordcloud", err)
	}
	metrics.ObserveRequest("wordcloud", metrics.OK)
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}
