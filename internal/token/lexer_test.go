package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"simple words", "echo hello world", []string{"echo", "hello", "world"}},
		{"collapses runs of spaces", "echo hello   world", []string{"echo", "hello", "world"}},
		{"tabs collapse too", "echo\thello\t\tworld", []string{"echo", "hello", "world"}},
		{"single quotes preserve whitespace", "echo 'hello  world'", []string{"echo", "hello  world"}},
		{"double quotes preserve whitespace", `echo "hello  world"`, []string{"echo", "hello  world"}},
		{"single quotes suppress escapes", `echo 'a\nb'`, []string{"echo", `a\nb`}},
		{"double quote escapes quote and backslash", `echo "a\"b\\c"`, []string{"echo", `a"b\c`}},
		{"double quote keeps backslash for ordinary char", `echo "a\nb"`, []string{"echo", `a\nb`}},
		{"adjacent single quotes concatenate", "echo 'foo''bar'", []string{"echo", "foobar"}},
		{"adjacent double quotes concatenate", `echo "foo""bar"`, []string{"echo", "foobar"}},
		{"empty quote pair elides", "echo ''abc", []string{"echo", "abc"}},
		{"unterminated single quote closes at eof", "echo 'abc", []string{"echo", "abc"}},
		{"unterminated double quote closes at eof", `echo "abc`, []string{"echo", "abc"}},
		{"trailing lone backslash is literal", `echo abc\`, []string{"echo", `abc\`}},
		{"operators are ordinary characters when unspaced", "a|b", []string{"a|b"}},
		{"operators split when spaced", "a | b", []string{"a", "|", "b"}},
		{"mixed quoting across one token", `echo hello'  '"world"`, []string{"echo", "hello  world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	toks := []string{"foo", "bar", "baz"}
	joined := "foo bar baz"
	assert.Equal(t, toks, Tokenize(joined))
}

func TestTokenizeQuotedInputsProduceNoTabs(t *testing.T) {
	inputs := []string{
		`echo "a 'b' c"`,
		`echo 'a "b" c'`,
		`echo a\'b`,
	}
	for _, in := range inputs {
		for _, tok := range Tokenize(in) {
			assert.NotContains(t, tok, "\t")
		}
	}
}
