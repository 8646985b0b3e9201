package manifest

import (
	"regexp"
	"strings"
)

// wordStart matches the first character of each ASCII word. A digit counts
// as a word character, so "2nd" has no further word start.
var wordStart = regexp.MustCompile(`\b\w`)

// acronymExceptions restores domain acronyms after word capitalization.
// Applied in order as plain substring replacements.
var acronymExceptions = []struct {
	from, to string
}{
	{"Pyq", "PYQ"},
	{"Cfoa", "CFOA"},
	{"Dld", "DLD"},
}

// FormatTitle turns a slug such as "dld_lab" into a display title ("DLD Lab").
// Only the first character of each ASCII word is upper-cased; the rest keeps
// its case and non-ASCII letters are never changed.
func FormatTitle(slug string) string {
	s := strings.ReplaceAll(slug, "_", " ")
	s = wordStart.ReplaceAllStringFunc(s, strings.ToUpper)
	for _, ex := range acronymExceptions {
		s = strings.ReplaceAll(s, ex.from, ex.to)
	}
	return s
}

// fallbackTitle is used when a registry entry has no title
func fallbackTitle(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}
