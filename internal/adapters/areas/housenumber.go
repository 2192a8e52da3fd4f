package areas

import (
	"regexp"
	"strconv"
	"strings"
)

// validHousenumber accepts a number with an optional letter suffix, e.g. 12 or 12/a.
var validHousenumber = regexp.MustCompile(`^[1-9][0-9]*(/?[a-z])?$`)

// normalizeHousenumber lowercases and strips spaces. ok is false for values
// that cannot be surveyed, e.g. ranges or free text.
func normalizeHousenumber(value string) (string, bool) {
	n := strings.ToLower(strings.Join(strings.Fields(value), ""))
	if !validHousenumber.MatchString(n) {
		return n, false
	}
	return strings.Replace(n, "/", "", 1), true
}

// splitHousenumbers splits an OSM value holding several numbers, e.g. "1;3".
func splitHousenumbers(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ';' || r == ','
	})
}

// compareHousenumbers orders by numeric part, then by suffix.
func compareHousenumbers(a, b string) int {
	na, sa := splitNumber(a)
	nb, sb := splitNumber(b)
	if na != nb {
		if na < nb {
			return -1
		}
		return 1
	}
	return strings.Compare(sa, sb)
}

func splitNumber(value string) (int, string) {
	i := 0
	for i < len(value) && value[i] >= '0' && value[i] <= '9' {
		i++
	}
	n, _ := strconv.Atoi(value[:i])
	return n, value[i:]
}
