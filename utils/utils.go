package utils

import (
	"strings"
	"unicode"
)

var Has = struct{}{}

type Set map[string]struct{}

func (s Set) Add(key string) {
	s[key] = Has
}

func (s Set) Has(key string) bool {
	_, in := s[key]
	return in
}

func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// KebabToCamel converts a dash separated CSS property name to the
// camelCase form used in style dicts : "border-top-width" gives
// "borderTopWidth". A leading dash capitalizes the first letter, so
// vendor prefixed names like "-webkit-transition" give
// "WebkitTransition".
func KebabToCamel(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	upper := false
	for _, r := range name {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CamelToKebab is the reverse of KebabToCamel : "borderTopWidth"
// gives "border-top-width".
func CamelToKebab(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
