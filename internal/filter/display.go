package filter

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ytget/recipe-browser/internal/model"
)

// LabelSeparator joins words inside a raw label ("low-carb")
const LabelSeparator = "-"

// DisplayName converts a hyphen-separated label into space-separated words
// with the first character of each word upper-cased ("low-carb" -> "Low Carb").
// The rest of each word is left unchanged. label must not be empty.
func DisplayName(label model.Label) string {
	if label == "" {
		panic("filter: DisplayName called with empty label")
	}

	// Casers are stateful, so one per call.
	upper := cases.Upper(language.Und)
	words := strings.Split(string(label), LabelSeparator)
	for i, word := range words {
		if word == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(word)
		words[i] = upper.String(word[:size]) + word[size:]
	}
	return strings.Join(words, " ")
}
