// Package textnorm folds Spanish text for keyword matching and keeps a byte
// offset map back to the original so excerpts can quote the caller's text.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Folded is a lowercased, accent-stripped copy of a string.
type Folded struct {
	Original string
	Text     string
	// offsets[i] is the byte offset in Original of the rune that produced
	// byte i of Text. It has len(Text)+1 entries; the last is len(Original).
	offsets []int
}

func newFolder() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Fold lowercases s and strips combining marks rune by rune.
// The transformer is built per call because transform chains are stateful.
func Fold(s string) Folded {
	t := newFolder()
	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)

	for i, r := range s {
		var piece string
		if r < utf8.RuneSelf {
			piece = string(unicode.ToLower(r))
		} else {
			out, _, err := transform.String(t, string(r))
			if err != nil {
				out = string(r)
			}
			piece = strings.ToLower(out)
		}
		for j := 0; j < len(piece); j++ {
			offsets = append(offsets, i)
		}
		b.WriteString(piece)
	}
	offsets = append(offsets, len(s))

	return Folded{Original: s, Text: b.String(), offsets: offsets}
}

// FoldString returns only the folded text.
func FoldString(s string) string {
	return Fold(s).Text
}

// OriginalSpan maps a folded byte range back to the original text.
func (f Folded) OriginalSpan(start, end int) string {
	if len(f.offsets) == 0 {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end > len(f.Text) {
		end = len(f.Text)
	}
	if start >= end {
		return ""
	}
	return f.Original[f.offsets[start]:f.offsets[end]]
}

// Window returns the original text around a folded match, extended by
// radius folded bytes on each side and snapped to rune boundaries.
func (f Folded) Window(start, end, radius int) string {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(f.Text) {
		hi = len(f.Text)
	}
	for lo > 0 && !utf8.RuneStart(f.Text[lo]) {
		lo--
	}
	for hi < len(f.Text) && !utf8.RuneStart(f.Text[hi]) {
		hi++
	}
	return strings.TrimSpace(f.OriginalSpan(lo, hi))
}
