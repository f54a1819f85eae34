package translate

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/oarkflow/textlab/nlp/langdetect"
)

// Language is a translation target offered in the UI.
type Language struct {
	Name string `json:"name" yaml:"name" msgpack:"name"`
	Code string `json:"code" yaml:"code" msgpack:"code"`
}

// Targets lists the languages text can be translated into, in menu order.
var Targets = []Language{
	{Name: "Chinese", Code: "zh-CN"},
	{Name: "English", Code: "en"},
	{Name: "French", Code: "fr"},
	{Name: "Italian", Code: "it"},
	{Name: "Tamil", Code: "ta"},
	{Name: "Malayalam", Code: "ml"},
	{Name: "Spanish", Code: "es"},
	{Name: "Japanese", Code: "ja"},
}

// Lookup finds a target by name or code, ignoring case.
func Lookup(nameOrCode string) (Language, bool) {
	for _, l := range Targets {
		if strings.EqualFold(l.Name, nameOrCode) || strings.EqualFold(l.Code, nameOrCode) {
			return l, true
		}
	}
	return Language{}, false
}

// DisplayName returns the English name of a language code, or the code
// itself when it cannot be parsed.
func DisplayName(code string) string {
	if code == langdetect.Unknown {
		return code
	}
	if l, ok := Lookup(code); ok {
		return l.Name
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
