package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "uppercase", input: "HELLO WORLD", expected: "hello world"},
		{name: "accents", input: "café résumé naïve", expected: "cafe resume naive"},
		{name: "leetspeak", input: "$h1t 4ppl3 0n3", expected: "shit apple one"},
		{name: "at sign", input: "h@te", expected: "hate"},
		{name: "cyrillic homoglyphs", input: "sрам", expected: "spam"},
		{name: "cyrillic expansions", input: "жшщ", expected: "zhshsch"},
		{name: "punctuation becomes space", input: "spam!!!content", expected: "spam content"},
		{name: "collapse whitespace", input: "  lots \t of\n\nspace  ", expected: "lots of space"},
		{name: "only punctuation", input: "!?.,;:", expected: ""},
		{name: "empty", input: "", expected: ""},
		{name: "unmapped digits kept", input: "Room 26", expected: "room 26"},
		{name: "emoji dropped", input: "party 🎉 time", expected: "party time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"HELLO WORLD",
		"café résumé naïve",
		"$h1t 4ppl3 0n3",
		"Ünïcödé ЖУРНАЛ 123 __ ~~",
		"İstanbul",
		"Ǆemal ﬁne",
		"   ",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
