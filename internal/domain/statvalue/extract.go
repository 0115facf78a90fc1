package statvalue

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Extract returns the numeric value of the first entry whose category, format
// and label equal the given key after normalization. A missing entry or a
// value that does not parse as a finite number yields 0.
func Extract(entries []Entry, category, format, label string) float64 {
	category = normalizeTag(category)
	format = normalizeTag(format)
	label = normalizeTag(label)

	for _, entry := range entries {
		if normalizeTag(entry.Category) != category {
			continue
		}
		if normalizeTag(entry.Format) != format {
			continue
		}
		if normalizeTag(entry.Label) != label {
			continue
		}
		return parseValue(entry.Value)
	}

	return 0
}

// normalizeTag collapses internal whitespace, trims and lowercases.
func normalizeTag(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

func parseValue(raw string) float64 {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if compact == "" {
		return 0
	}

	value, err := strconv.ParseFloat(compact, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}
