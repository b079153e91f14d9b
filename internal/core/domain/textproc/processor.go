package textproc

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Processor maps an input string to an output string.
type Processor func(string) string

// Process runs the pipeline on text. A nil Processor behaves as Identity.
func (p Processor) Process(text string) string {
	if p == nil {
		return text
	}
	return p(text)
}

// Identity returns its input unchanged. It is the usual base of a chain.
func Identity() Processor {
	return func(text string) string { return text }
}

// decorate runs inner and then fn on the result.
func decorate(inner Processor, fn func(string) string) Processor {
	return func(text string) string {
		return fn(inner.Process(text))
	}
}

// UpperCase upper-cases the output of inner with the locale-invariant Unicode
// mapping, so results do not depend on the host locale. Full case mapping
// applies: "straße" becomes "STRASSE".
func UpperCase(inner Processor) Processor {
	return UpperCaseIn(language.Und, inner)
}

// UpperCaseIn is UpperCase with the case rules of a specific language,
// e.g. language.Turkish maps "i" to "İ".
func UpperCaseIn(tag language.Tag, inner Processor) Processor {
	return decorate(inner, func(s string) string {
		// Casers are stateful; one per call keeps the Processor goroutine-safe.
		return cases.Upper(tag).String(s)
	})
}

// Trim strips leading and trailing Unicode whitespace from the output of inner.
func Trim(inner Processor) Processor {
	return decorate(inner, strings.TrimSpace)
}

// ReplaceSpaces replaces every ASCII space in the output of inner with '_'.
// Tabs, newlines and other whitespace are left alone.
func ReplaceSpaces(inner Processor) Processor {
	return decorate(inner, func(s string) string {
		return strings.ReplaceAll(s, " ", "_")
	})
}
