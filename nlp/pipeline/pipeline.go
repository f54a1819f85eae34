package pipeline

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/oarkflow/textlab/nlp/keyword"
	"github.com/oarkflow/textlab/nlp/langdetect"
	"github.com/oarkflow/textlab/nlp/lemmatizer"
	"github.com/oarkflow/textlab/nlp/sentiment"
	"github.com/oarkflow/textlab/nlp/stopwords"
	"github.com/oarkflow/textlab/nlp/summarization"
	"github.com/oarkflow/textlab/nlp/textstats"
	"github.com/oarkflow/textlab/nlp/translate"
	"github.com/oarkflow/textlab/nlp/wordcloud"
)

// Config tunes the analysis modes.
type Config struct {
	SummaryRatio    float64 `yaml:"summary_ratio" bcl:"summary_ratio"`
	KeyPhrases      int     `yaml:"key_phrases" bcl:"key_phrases"`
	CacheSize       int     `yaml:"cache_size" bcl:"cache_size"`
	WordCloudWidth  int     `yaml:"word_cloud_width" bcl:"word_cloud_width"`
	WordCloudHeight int     `yaml:"word_cloud_height" bcl:"word_cloud_height"`
	WordCloudWords  int     `yaml:"word_cloud_words" bcl:"word_cloud_words"`
}

func DefaultConfig() Config {
	cloud := wordcloud.DefaultOptions()
	return Config{
		SummaryRatio:    0.5,
		KeyPhrases:      10,
		CacheSize:       256,
		WordCloudWidth:  cloud.Width,
		WordCloudHeight: cloud.Height,
		WordCloudWords:  cloud.MaxWords,
	}
}

// CloudOptions returns the word cloud rendering options for cfg.
func (cfg Config) CloudOptions() wordcloud.Options {
	opts := wordcloud.DefaultOptions()
	if cfg.WordCloudWidth > 0 {
		opts.Width = cfg.WordCloudWidth
	}
	if cfg.WordCloudHeight > 0 {
		opts.Height = cfg.WordCloudHeight
	}
	if cfg.WordCloudWords > 0 {
		opts.MaxWords = cfg.WordCloudWords
	}
	return opts
}

// Report is the result of the Text Analysis mode.
type Report struct {
	ID         string             `json:"id" yaml:"id" msgpack:"id"`
	Language   string             `json:"language" yaml:"language" msgpack:"language"`
	Stats      textstats.Stats    `json:"stats" yaml:"stats" msgpack:"stats"`
	Statistics map[string]int     `json:"statistics" yaml:"statistics" msgpack:"statistics"`
	Stopwords  []string           `json:"stopwords" yaml:"stopwords" msgpack:"stopwords"`
	Filtered   string             `json:"filtered" yaml:"filtered" msgpack:"filtered"`
	Words      []wordcloud.Word   `json:"words" yaml:"words" msgpack:"words"`
	WordCloud  []byte             `json:"word_cloud,omitempty" yaml:"-" msgpack:"word_cloud,omitempty"`
	Tokens     []lemmatizer.Entry `json:"tokens" yaml:"tokens" msgpack:"tokens"`
	Summary    string             `json:"summary,omitempty" yaml:"summary,omitempty" msgpack:"summary,omitempty"`
	KeyPhrases []keyword.Phrase   `json:"key_phrases" yaml:"key_phrases" msgpack:"key_phrases"`
	Warnings   []*Warning         `json:"warnings,omitempty" yaml:"warnings,omitempty" msgpack:"warnings,omitempty"`
	CreatedAt  time.Time          `json:"created_at" yaml:"created_at" msgpack:"created_at"`
}

// WordCloudBase64 returns the PNG word cloud encoded for a data URL.
func (r *Report) WordCloudBase64() string {
	return base64.StdEncoding.EncodeToString(r.WordCloud)
}

// SentimentReport is the result of the Sentiment Analysis mode.
type SentimentReport struct {
	Language   string              `json:"language" yaml:"language" msgpack:"language"`
	Translated bool                `json:"translated" yaml:"translated" msgpack:"translated"`
	Text       string              `json:"text" yaml:"text" msgpack:"text"`
	Sentiment  sentiment.Sentiment `json:"sentiment" yaml:"sentiment" msgpack:"sentiment"`
}

// Analyzer runs the analysis modes over user text.
type Analyzer struct {
	cfg        Config
	stop       *stopwords.List
	summarizer *summarization.Summarizer
	sentiment  *sentiment.Analyzer
	translator translate.Translator
	detect     func(string) string
	memo       *lru.Cache[uint64, *Report]
	logger     *slog.Logger
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithTranslator lets Sentiment translate non-English text first.
func WithTranslator(t translate.Translator) Option {
	return func(a *Analyzer) { a.translator = t }
}

// WithDetector replaces the language detector.
func WithDetector(fn func(string) string) Option {
	return func(a *Analyzer) { a.detect = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

func New(cfg Config, opts ...Option) (*Analyzer, error) {
	def := DefaultConfig()
	if cfg.SummaryRatio <= 0 || cfg.SummaryRatio > 1 {
		cfg.SummaryRatio = def.SummaryRatio
	}
	if cfg.KeyPhrases <= 0 {
		cfg.KeyPhrases = def.KeyPhrases
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = def.CacheSize
	}
	a := &Analyzer{
		cfg:       cfg,
		stop:      stopwords.English(),
		sentiment: sentiment.Default(),
		detect:    langdetect.Language,
		logger:    slog.Default(),
	}
	a.summarizer = summarization.New()
	a.summarizer.Ratio = cfg.SummaryRatio
	a.summarizer.Stopwords = a.stop
	for _, opt := range opts {
		opt(a)
	}
	memo, err := lru.New[uint64, *Report](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create report cache: %w", err)
	}
	a.memo = memo
	return a, nil
}

// CloudOptions returns the configured word cloud options.
func (a *Analyzer) CloudOptions() wordcloud.Options {
	return a.cfg.CloudOptions()
}

// Detect returns the language code of text, or langdetect.Unknown.
func (a *Analyzer) Detect(text string) string {
	return a.detect(text)
}

// Analyze runs the Text Analysis mode. Empty or non-English text is
// rejected with a Warning. Reports are memoized by text.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, warn("empty", "Enter a Text...", ErrEmpty)
	}
	key := xxhash.Sum64String(text)
	if r, ok := a.memo.Get(key); ok {
		return r, nil
	}
	lang := a.detect(text)
	if lang != "en" {
		return nil, warn("not_english", "Enter a Text in English...", fmt.Errorf("%w: detected %q", ErrNotEnglish, lang))
	}

	r := &Report{
		ID:        uuid.NewString(),
		Language:  lang,
		CreatedAt: time.Now().UTC(),
	}
	var summaryErr, cloudErr error
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r.Stats = textstats.Compute(text, a.stop)
		r.Statistics = r.Stats.Summary()
		r.Stopwords = a.stop.Extract(text)
		r.Filtered = a.stop.Remove(text)
		return nil
	})
	g.Go(func() error {
		opts := a.cfg.CloudOptions()
		r.Words = wordcloud.Frequencies(text, a.stop, opts.MaxWords)
		cloud, err := wordcloud.Render(r.Words, opts)
		if err != nil {
			if errors.Is(err, wordcloud.ErrNoWords) {
				cloudErr = err
				return nil
			}
			return fmt.Errorf("render word cloud: %w", err)
		}
		var buf bytes.Buffer
		if err := cloud.EncodePNG(&buf); err != nil {
			return fmt.Errorf("encode word cloud: %w", err)
		}
		r.WordCloud = buf.Bytes()
		return ctx.Err()
	})
	g.Go(func() error {
		r.Tokens = lemmatizer.Analyze(lemmatizer.Prepare(text, a.stop))
		r.KeyPhrases = keyword.Extract(text, a.stop, a.cfg.KeyPhrases)
		return nil
	})
	g.Go(func() error {
		summary, err := a.summarizer.Summarize(text)
		if err != nil {
			if errors.Is(err, summarization.ErrTooShort) {
				summaryErr = err
				return nil
			}
			return fmt.Errorf("summarize: %w", err)
		}
		r.Summary = summary
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range []error{cloudErr, summaryErr} {
		if w, ok := AsWarning(err); ok {
			r.Warnings = append(r.Warnings, w)
		}
	}
	a.memo.Add(key, r)
	a.logger.Debug("text analyzed",
		slog.String("id", r.ID),
		slog.Int("words", r.Stats.Words),
		slog.Int("warnings", len(r.Warnings)))
	return r, nil
}

// Sentiment runs the Sentiment Analysis mode. Text detected in another
// language is translated to English first when a translator is set.
func (a *Analyzer) Sentiment(ctx context.Context, text string) (*SentimentReport, error) {
	if strings.TrimSpace(text) == "" {
		return nil, warn("empty", "Enter some text for analyzing the sentiment...", ErrEmpty)
	}
	out := &SentimentReport{Language: a.detect(text), Text: text}
	if a.translator != nil && out.Language != "en" && out.Language != langdetect.Unknown {
		translated, err := a.translator.Translate(ctx, text, out.Language, "en")
		if err != nil {
			return nil, fmt.Errorf("translate to english: %w", err)
		}
		out.Text = translated
		out.Translated = true
	}
	out.Sentiment = a.sentiment.Analyze(out.Text)
	return out, nil
}
