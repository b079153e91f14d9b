package textproc_test

import (
	"testing"

	"showcase/internal/core/domain/textproc"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestIdentity(t *testing.T) {
	for _, input := range []string{"", " ", "Hello, World", "\ttab\n"} {
		assert.Equal(t, input, textproc.Identity().Process(input))
	}
}

func TestNilProcessorIsIdentity(t *testing.T) {
	var p textproc.Processor

	assert.Equal(t, "as is", p.Process("as is"))
	assert.Equal(t, "A B", textproc.UpperCase(nil).Process("a b"))
}

func TestUpperCase(t *testing.T) {
	p := textproc.UpperCase(textproc.Identity())

	assert.Equal(t, "HELLO, WORLD 42", p.Process("Hello, World 42"))
	assert.Equal(t, "ПРИВЕТ", p.Process("привет"))
	assert.Equal(t, "STRASSE", p.Process("straße"))
	assert.Equal(t, "I", p.Process("i"))
}

func TestUpperCaseIn(t *testing.T) {
	p := textproc.UpperCaseIn(language.Turkish, textproc.Identity())

	assert.Equal(t, "İSTANBUL", p.Process("istanbul"))
}

func TestTrim(t *testing.T) {
	p := textproc.Trim(textproc.Identity())

	assert.Equal(t, "a  b", p.Process(" \t a  b \n"))
	assert.Equal(t, "", p.Process(" \t\n "))
}

func TestReplaceSpaces(t *testing.T) {
	p := textproc.ReplaceSpaces(textproc.Identity())

	assert.Equal(t, "__a_b__", p.Process("  a b  "))
	assert.Equal(t, "a\tb\nc_d", p.Process("a\tb\nc d"))
}

func TestComposition(t *testing.T) {
	testCases := []struct {
		name     string
		pipeline textproc.Processor
		input    string
		expected string
	}{
		{
			name:     "trim after upper",
			pipeline: textproc.Trim(textproc.UpperCase(textproc.Identity())),
			input:    "  ab cd  ",
			expected: "AB CD",
		},
		{
			name:     "upper after trim",
			pipeline: textproc.UpperCase(textproc.Trim(textproc.Identity())),
			input:    "  ab cd  ",
			expected: "AB CD",
		},
		{
			name:     "replace after trim",
			pipeline: textproc.ReplaceSpaces(textproc.Trim(textproc.Identity())),
			input:    "  a b  ",
			expected: "a_b",
		},
		{
			name:     "trim after replace keeps boundary underscores",
			pipeline: textproc.Trim(textproc.ReplaceSpaces(textproc.Identity())),
			input:    "  a b  ",
			expected: "__a_b__",
		},
		{
			name:     "trim after replace strips other whitespace",
			pipeline: textproc.Trim(textproc.ReplaceSpaces(textproc.Identity())),
			input:    "\t a b \n",
			expected: "_a_b_",
		},
		{
			name: "all stages",
			pipeline: textproc.UpperCase(
				textproc.ReplaceSpaces(
					textproc.Trim(textproc.Identity()))),
			input:    "  hello big world ",
			expected: "HELLO_BIG_WORLD",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.pipeline.Process(tc.input))
		})
	}
}

func TestEmptyInput(t *testing.T) {
	pipelines := []textproc.Processor{
		textproc.Identity(),
		textproc.UpperCase(textproc.Identity()),
		textproc.Trim(textproc.Identity()),
		textproc.ReplaceSpaces(textproc.Identity()),
		textproc.Trim(textproc.ReplaceSpaces(textproc.UpperCase(textproc.Identity()))),
	}

	for _, p := range pipelines {
		assert.Empty(t, p.Process(""))
	}
}

func TestProcessIsDeterministic(t *testing.T) {
	p := textproc.Trim(textproc.ReplaceSpaces(textproc.UpperCase(textproc.Identity())))
	input := "  mixed Case input  "

	first := p.Process(input)
	second := p.Process(input)

	assert.Equal(t, first, second)
}

func TestDeepChain(t *testing.T) {
	p := textproc.Identity()
	for range 1000 {
		p = textproc.Trim(p)
	}

	assert.Equal(t, "x", p.Process("   x   "))
}
