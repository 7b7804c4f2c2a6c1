// Package extract finds string-identifier tokens in free-form text.
package extract

import "regexp"

// identRe matches a STR_ identifier whose preceding character is not an
// uppercase letter or underscore, so a suffix of a longer token (for example
// MY_STR_FOO) is not reported. A token at offset zero of the text has no
// preceding character and is not matched.
var identRe = regexp.MustCompile(`[^A-Z_](STR_[A-Z0-9_]*)`)

// Identifiers returns every string-identifier token found in text, in
// occurrence order. Duplicates are kept; callers aggregate into a set.
func Identifiers(text string) []string {
	ms := identRe.FindAllStringSubmatch(text, -1)
	if len(ms) == 0 {
		return nil
	}
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m[1])
	}
	return out
}
