// Package namematch decides whether two free-text household or person labels
// plausibly refer to the same entity. It is a recall-favoring heuristic: a
// false "already imported" that a reviewer can dismiss is cheaper than a
// silently created duplicate family, so callers must treat a match as a hint,
// never as proof.
//
// Matching is a pure predicate over the two labels with no shared state, so
// it is safe to call concurrently
package namematch

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

// pool of fresh transformer chains, mirrors the canonicalization pipeline:
// decompose, unicode case fold, strip combining marks and format chars,
// width fold, recompose. Marks must be stripped while still decomposed or
// NFC-precomposed runes keep their diacritics
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
			norm.NFC,
		)
	},
}

// Canon normalizes a label for comparison: unicode folding per the chain
// above, apostrophes stripped, hyphens collapsed to spaces, remaining
// punctuation dropped, whitespace collapsed and trimmed
func Canon(label string) string {
	if label == "" {
		return ""
	}
	s := strings.ToValidUTF8(label, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	var b strings.Builder
	b.Grow(len(ns))
	for _, r := range ns {
		switch {
		case r == '\'' || r == '’':
			// O'Brien -> obrien
		case r == '-' || r == '–' || r == '—':
			b.WriteRune(' ')
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Match reports whether labels a and b plausibly name the same entity.
// After canonicalization they match when equal, when one contains the other,
// or when they share an identical surname token and at least one remaining
// word token (longer than one rune) of one equals or prefixes a token of the
// other. The surname token is the text before the first comma, or the whole
// label when there is none
func Match(a, b string) bool {
	ca, cb := Canon(a), Canon(b)
	if ca == "" || cb == "" {
		return false
	}
	if ca == cb {
		return true
	}
	if strings.Contains(ca, cb) || strings.Contains(cb, ca) {
		return true
	}

	surA, restA := splitSurname(a)
	surB, restB := splitSurname(b)
	if surA == "" || surA != surB {
		return false
	}
	return tokensOverlap(restA, restB) || tokensOverlap(restB, restA)
}

// splitSurname splits a raw label at its first comma and canonicalizes both
// halves; without a comma the whole label is the surname and there are no
// remaining tokens
func splitSurname(label string) (surname string, rest []string) {
	head, tail, found := strings.Cut(label, ",")
	surname = Canon(head)
	if !found {
		return surname, nil
	}
	return surname, tokens(Canon(tail))
}

// tokens splits a canonical string into word tokens longer than one rune
func tokens(s string) []string {
	var out []string
	for _, t := range strings.Fields(s) {
		if len([]rune(t)) > 1 {
			out = append(out, t)
		}
	}
	return out
}

// tokensOverlap reports whether any token of a equals or prefixes a token of b
func tokensOverlap(a, b []string) bool {
	for _, ta := range a {
		for _, tb := range b {
			if ta == tb || strings.HasPrefix(tb, ta) {
				return true
			}
		}
	}
	return false
}
