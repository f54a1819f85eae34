package translate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/oarkflow/textlab/nlp/langdetect"
)

// MinLength is the shortest text accepted for translation, in characters.
const MinLength = 3

// Result is the outcome of a translation request.
type Result struct {
	Source     string `json:"source" yaml:"source" msgpack:"source"`
	SourceName string `json:"source_name" yaml:"source_name" msgpack:"source_name"`
	Target     string `json:"target" yaml:"target" msgpack:"target"`
	TargetName string `json:"target_name" yaml:"target_name" msgpack:"target_name"`
	Text       string `json:"text" yaml:"text" msgpack:"text"`
	Translated bool   `json:"translated" yaml:"translated" msgpack:"translated"`
}

// Service detects the source language and translates into a target.
type Service struct {
	Translator Translator
	Detect     func(string) string
	Logger     *slog.Logger
}

func NewService(t Translator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Translator: t, Detect: langdetect.Language, Logger: logger}
}

// Translate translates text into target, given by name or code. Text
// already in the target language is reported instead of translated.
func (s *Service) Translate(ctx context.Context, text, target string) (*Result, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinLength {
		return nil, ErrTooShort
	}
	lang, ok := Lookup(target)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, target)
	}
	source := s.Detect(text)
	res := &Result{
		Source:     source,
		SourceName: DisplayName(source),
		Target:     lang.Code,
		TargetName: lang.Name,
	}
	if source == lang.Code {
		res.Text = "Text is already in '" + source + "'"
		return res, nil
	}
	from := source
	if from == langdetect.Unknown {
		from = "auto"
	}
	s.Logger.Debug("translating", slog.String("from", from), slog.String("to", lang.Code), slog.Int("chars", utf8.RuneCountInString(text)))
	out, err := s.Translator.Translate(ctx, text, from, lang.Code)
	if err != nil {
		return nil, err
	}
	res.Text = out
	res.Translated = true
	return res, nil
}
