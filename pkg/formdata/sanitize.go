package formdata

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all markup from free-text input and trims whitespace.
func SanitizeText(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}

func sanitizeTree(node any) {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			if s, ok := child.(string); ok {
				v[key] = SanitizeText(s)
				continue
			}
			sanitizeTree(child)
		}
	case []any:
		for i, child := range v {
			if s, ok := child.(string); ok {
				v[i] = SanitizeText(s)
				continue
			}
			sanitizeTree(child)
		}
	}
}
