package translate

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

var (
	ErrUpstream            = errors.New("translate: upstream failure")
	ErrUnsupportedLanguage = errors.New("translate: unsupported language")
	ErrTooShort            = errors.New("translate: text too short")
)

// Translator translates text between two language codes. An empty or
// "auto" source lets the backend detect it.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// ClientConfig configures the HTTP translation client.
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	Rate      float64
	Burst     int
	UserAgent string
}

// DefaultBaseURL is the public web translation endpoint.
const DefaultBaseURL = "https://translate.googleapis.com"

// Client talks to a translate_a/single compatible endpoint.
type Client struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	limiter   *rate.Limiter
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "textlab/1.0"
	}
	limit := rate.Inf
	if cfg.Rate > 0 {
		limit = rate.Limit(cfg.Rate)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		timeout:   cfg.Timeout,
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(limit, cfg.Burst),
	}
}

func (c *Client) Translate(ctx context.Context, text, from, to string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	timeout := c.timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return "", context.DeadlineExceeded
	}
	if from == "" {
		from = "auto"
	}
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", from)
	q.Set("tl", to)
	q.Set("dt", "t")
	q.Set("q", text)

	a := fiber.Get(c.baseURL + "/translate_a/single?" + q.Encode())
	a.Timeout(timeout)
	a.UserAgent(c.userAgent)
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return "", fmt.Errorf("%w: %v", ErrUpstream, errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUpstream, code)
	}
	return parseResponse(body)
}

// parseResponse joins the translated segments of a response shaped like
// [[["Bonjour","Hello",...],...],null,"en",...].
func parseResponse(body []byte) (string, error) {
	var raw []any
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrUpstream)
	}
	segments, ok := raw[0].([]any)
	if !ok {
		return "", fmt.Errorf("%w: unexpected response shape", ErrUpstream)
	}
	var sb strings.Builder
	for _, s := range segments {
		seg, ok := s.([]any)
		if !ok || len(seg) == 0 {
			continue
		}
		if part, ok := seg[0].(string); ok {
			sb.WriteString(part)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: no translation in response", ErrUpstream)
	}
	return sb.String(), nil
}
