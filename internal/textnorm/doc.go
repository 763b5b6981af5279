package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentence is one sentence of the folded text.
type Sentence struct {
	Text     string `json:"text"`
	Question bool   `json:"question"`
	Index    int    `json:"index"`
}

// Doc is a folded query with its tokens and sentences precomputed.
type Doc struct {
	Folded    Folded
	Tokens    []string
	Sentences []Sentence
	padded    string
}

// NewDoc folds s and splits it into tokens and sentences.
func NewDoc(s string) *Doc {
	f := Fold(s)
	tokens := Tokenize(f.Text)
	return &Doc{
		Folded:    f,
		Tokens:    tokens,
		Sentences: SplitSentences(f.Text),
		padded:    " " + strings.Join(tokens, " ") + " ",
	}
}

// Text returns the folded text.
func (d *Doc) Text() string {
	return d.Folded.Text
}

// Has reports whether the folded phrase occurs on word boundaries.
func (d *Doc) Has(phrase string) bool {
	return strings.Contains(d.padded, " "+phrase+" ")
}

// Count returns the number of word-boundary occurrences of phrase.
func (d *Doc) Count(phrase string) int {
	return strings.Count(d.padded, " "+phrase+" ")
}

// HasAny reports whether any phrase occurs.
func (d *Doc) HasAny(phrases []string) bool {
	for _, p := range phrases {
		if d.Has(p) {
			return true
		}
	}
	return false
}

// CountAll sums Count over phrases.
func (d *Doc) CountAll(phrases []string) int {
	n := 0
	for _, p := range phrases {
		n += d.Count(p)
	}
	return n
}

// Tokenize splits folded text into letter/number runs.
func Tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Padded returns tokens of s joined by single spaces with a leading and
// trailing space, ready for word-boundary phrase lookups.
func Padded(s string) string {
	return " " + strings.Join(Tokenize(s), " ") + " "
}

// HasPhrase reports whether phrase occurs on word boundaries in folded s.
func HasPhrase(s, phrase string) bool {
	return strings.Contains(Padded(s), " "+phrase+" ")
}

// HasAnyPhrase reports whether any phrase occurs on word boundaries in folded s.
func HasAnyPhrase(s string, phrases []string) bool {
	p := Padded(s)
	for _, ph := range phrases {
		if strings.Contains(p, " "+ph+" ") {
			return true
		}
	}
	return false
}

// FirstPhrase returns the phrase of the list that occurs earliest in s; on
// equal positions the longer phrase wins. ok is false when none matches.
func FirstPhrase(s string, phrases []string) (phrase string, ok bool) {
	p := Padded(s)
	best := -1
	for _, ph := range phrases {
		if i := strings.Index(p, " "+ph+" "); i >= 0 && (best < 0 || i < best || (i == best && len(ph) > len(phrase))) {
			best = i
			phrase = ph
		}
	}
	return phrase, best >= 0
}

// SplitSentences splits folded text on terminal punctuation and newlines.
func SplitSentences(s string) []Sentence {
	var out []Sentence
	var b strings.Builder
	question := false

	flush := func() {
		text := strings.TrimFunc(b.String(), func(r rune) bool {
			return unicode.IsSpace(r) || r == ',' || r == '¿' || r == '¡' || r == '"' || r == '\''
		})
		if text != "" && len(Tokenize(text)) > 0 {
			out = append(out, Sentence{Text: text, Question: question, Index: len(out)})
		}
		b.Reset()
		question = false
	}

	for _, r := range s {
		switch r {
		case '.', '!', ';', '\n':
			flush()
		case '?':
			question = true
			flush()
		case '¿':
			question = true
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return out
}

// Truncate shortens s to at most n runes, appending "..." when cut.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "..."
}
