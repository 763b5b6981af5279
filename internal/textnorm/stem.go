package textnorm

// StemLength is the rune prefix used as a crude stem for vocabulary overlap.
const StemLength = 4

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "al", "algo", "ante", "con", "contra", "de", "del", "desde", "el", "ella", "ellas",
		"ellos", "en", "entre", "era", "eres", "es", "esa", "ese", "eso", "esta", "estas", "este",
		"esto", "estos", "fue", "ha", "han", "hay", "la", "las", "le", "les", "lo", "los", "me",
		"mi", "mis", "muy", "nos", "o", "para", "pero", "por", "que", "se", "sea", "ser", "si",
		"sin", "sobre", "son", "su", "sus", "te", "ti", "todo", "todos", "toda", "todas", "tu",
		"tus", "un", "una", "unas", "uno", "unos", "y", "ya", "yo", "como", "mas", "no", "cada",
		"entonces", "luego", "tanto", "porque", "pues", "asi", "tambien", "siempre", "nunca",
		"ningun", "ninguno", "ninguna", "he", "has", "estan", "estoy", "usted",
	} {
		stopwords[w] = struct{}{}
	}
}

// IsStopword reports whether the folded token is a function word.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// Stem truncates a folded token to StemLength runes.
func Stem(token string) string {
	r := []rune(token)
	if len(r) <= StemLength {
		return token
	}
	return string(r[:StemLength])
}

// ContentStems returns the unique stems of non-stopword tokens in order of
// first appearance.
func ContentStems(s string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range Tokenize(s) {
		if IsStopword(tok) || len([]rune(tok)) < 2 {
			continue
		}
		st := Stem(tok)
		if _, ok := seen[st]; ok {
			continue
		}
		seen[st] = struct{}{}
		out = append(out, st)
	}
	return out
}

// ContentWords returns non-stopword tokens of s, keeping duplicates.
func ContentWords(s string) []string {
	var out []string
	for _, tok := range Tokenize(s) {
		if !IsStopword(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// Overlap counts stems of a that also appear in b.
func Overlap(a, b []string) int {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}
	n := 0
	for _, s := range a {
		if _, ok := set[s]; ok {
			n++
		}
	}
	return n
}
