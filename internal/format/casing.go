package format

import (
	"strings"
	"unicode"
)

// SnakeCase turns a display name such as "My Item Name" into "my_item_name".
func SnakeCase(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 4)
	for _, r := range text {
		if r == ' ' {
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(strings.TrimPrefix(b.String(), "_"))
}
