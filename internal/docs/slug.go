package docs

import (
	"strings"
	"unicode"
)

// MaxSlugLen bounds the slug length (in runes before mapping, bytes after).
const MaxSlugLen = 50

// Slug normalizes a user-supplied document id into a filesystem-safe name.
//
// "-" becomes "_" first because a leading "_" marks internal documents such
// as "_index". The id is cut to MaxSlugLen runes, lowercased, every rune
// outside [a-z0-9_] becomes "_" and runs of "_" collapse to one.
func Slug(id string) string {
	id = strings.ReplaceAll(id, "-", "_")

	var b strings.Builder
	b.Grow(min(len(id), MaxSlugLen))

	n := 0
	for _, r := range id {
		if n == MaxSlugLen {
			break
		}
		n++

		r = unicode.ToLower(r)
		if !isSlugRune(r) {
			r = '_'
		}
		if r == '_' && strings.HasSuffix(b.String(), "_") {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
}
