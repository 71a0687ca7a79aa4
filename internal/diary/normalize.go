package diary

import (
	"regexp"
	"strings"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeDate returns the trimmed date and true if v is a string shaped like YYYY-MM-DD.
// Month and day ranges are not checked.
func NormalizeDate(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" || !dateRe.MatchString(s) {
		return "", false
	}
	return s, true
}

// NormalizeTodo coerces a list of strings or a comma separated string into trimmed,
// non-empty items in their original order. Anything else yields an empty list.
func NormalizeTodo(v any) []string {
	out := []string{}

	switch t := v.(type) {
	case []any:
		for _, el := range t {
			s, ok := el.(string)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, s := range strings.Split(t, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}

	return out
}

// normalizeText trims strings; non-strings become "".
func normalizeText(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
