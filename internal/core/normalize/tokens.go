package normalize

import (
	"strings"
	"unicode"
)

// Tokens splits normalized text into word tokens. Letters, digits and
// inner apostrophes stay in a token; placeholders survive whole
func Tokens(s string) []string {
	var out []string
	for _, f := range strings.Fields(s) {
		if f == URLToken || f == UserToken {
			out = append(out, f)
			continue
		}
		out = appendWords(out, f)
	}
	return out
}

func appendWords(out []string, f string) []string {
	rs := []rune(f)
	start := -1
	for i, r := range rs {
		word := unicode.IsLetter(r) || unicode.IsDigit(r) ||
			(r == '\'' && start >= 0 && i+1 < len(rs) && unicode.IsLetter(rs[i+1]))
		switch {
		case word && start < 0:
			start = i
		case !word && start >= 0:
			out = append(out, string(rs[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, string(rs[start:]))
	}
	return out
}

// NGrams returns every 1..n gram of tokens in order, grams joined by a space
func NGrams(tokens []string, n int) []string {
	if n < 1 {
		n = 1
	}
	out := make([]string, 0, len(tokens)*n)
	for size := 1; size <= n; size++ {
		for i := 0; i+size <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+size], " "))
		}
	}
	return out
}
