package pipeline

import (
	"errors"

	"github.com/oarkflow/textlab/nlp/summarization"
	"github.com/oarkflow/textlab/nlp/translate"
	"github.com/oarkflow/textlab/nlp/wordcloud"
)

var (
	ErrEmpty      = errors.New("pipeline: empty text")
	ErrNotEnglish = errors.New("pipeline: text is not in English")
)

// Warning is a user facing rejection of the input. It is shown to the
// user instead of a result and is never logged as a failure.
type Warning struct {
	Code    string `json:"error" yaml:"error" msgpack:"error"`
	Message string `json:"message" yaml:"message" msgpack:"message"`
	err     error
}

func (w *Warning) Error() string { return w.Message }

func (w *Warning) Unwrap() error { return w.err }

func warn(code, message string, err error) *Warning {
	return &Warning{Code: code, Message: message, err: err}
}

// AsWarning reports whether err should be shown as a warning, and which.
func AsWarning(err error) (*Warning, bool) {
	if err == nil {
		return nil, false
	}
	var w *Warning
	if errors.As(err, &w) {
		return w, true
	}
	switch {
	case errors.Is(err, ErrEmpty):
		return warn("empty", "Enter a Text...", err), true
	case errors.Is(err, ErrNotEnglish):
		return warn("not_english", "Enter a Text in English...", err), true
	case errors.Is(err, translate.ErrTooShort):
		return warn("too_short", "Enter text that is at least 3 characters ...", err), true
	case errors.Is(err, translate.ErrUnsupportedLanguage):
		return warn("unsupported_language", "Select a language to translate into...", err), true
	case errors.Is(err, summarization.ErrTooShort):
		return warn("summary_too_short", "Enter a longer piece of text...", err), true
	case errors.Is(err, wordcloud.ErrNoWords):
		return warn("no_words", "Enter a text with some words that are not stop words...", err), true
	}
	return nil, false
}
