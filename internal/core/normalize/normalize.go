// Package normalize turns raw tweet text into the canonical form the model was trained on
// Pipeline order
// 1 sanitize controls and repair UTF-8
// 2 Unicode NFKD decomposition
// 3 Case folding
// 4 Remove zero-width and combining marks
// 5 Width fold fullwidth to ASCII, then recompose (NFC)
// 6 Replace urls and @mentions with placeholders, drop '#' from hashtags
// 7 Optional leet folding eg 4/@->a 0->o 1/!->i 3->e 5/$->s 7->t
// 8 Squash character runs longer than two ("soooo" -> "soo")
// 9 Collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

const (
	// URLToken replaces http(s) links and www. hosts
	URLToken = "<url>"
	// UserToken replaces @mentions
	UserToken = "<user>"
)

// Options toggles the optional stages
type Options struct {
	LeetFold bool
	// MaxRepeat keeps at most this many repeats of a rune, 0 means 2
	MaxRepeat int
}

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct {
	opt Options
}

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)), // combining marks
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ FEFF etc
			width.Fold,
			norm.NFC,
		)
	},
}

// New constructs a Normalizer
func New(opt Options) *Normalizer {
	if opt.MaxRepeat <= 0 {
		opt.MaxRepeat = 2
	}
	return &Normalizer{opt: opt}
}

// Normalize returns the canonical form of s; it is idempotent
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(Sanitize(s), "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	ns = placeholders(ns)
	if n.opt.LeetFold {
		ns = leetFold(ns)
	}
	ns = squashRuns(ns, n.opt.MaxRepeat)
	return collapseSpaces(ns)
}

// placeholders rewrites urls and mentions word by word; hashtags keep their word
func placeholders(s string) string {
	if !strings.ContainsAny(s, "@#:.") {
		return s
	}
	fields := strings.Fields(s)
	for i, f := range fields {
		switch {
		case strings.HasPrefix(f, "http://"), strings.HasPrefix(f, "https://"), strings.HasPrefix(f, "www."):
			fields[i] = URLToken
		case len(f) > 1 && f[0] == '@' && f != UserToken:
			fields[i] = UserToken
		case len(f) > 1 && f[0] == '#':
			fields[i] = strings.TrimLeft(f, "#")
		}
	}
	return strings.Join(fields, " ")
}

// leetFold maps a tiny curated set of ASCII lookalikes to their letters
func leetFold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '4':
			b.WriteRune('a')
		case '0':
			b.WriteRune('o')
		case '1', '!':
			b.WriteRune('i')
		case '3':
			b.WriteRune('e')
		case '5', '$':
			b.WriteRune('s')
		case '7':
			b.WriteRune('t')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func squashRuns(s string, max int) string {
	if s == "" || max < 1 {
		return s
	}
	out := make([]rune, 0, len(s))
	var prev rune
	count := 0
	for _, r := range s {
		if r == prev {
			count++
			if count <= max {
				out = append(out, r)
			}
			continue
		}
		prev = r
		count = 1
		out = append(out, r)
	}
	return string(out)
}

// collapseSpaces converts every whitespace run to one ASCII space and trims the edges
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
