package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`[\s\p{Zs}]+`)

// lowercases the label and collapses runs of whitespace (including
// non-breaking spaces) into a single space
func NormalizeLabel(label string) string {
	label = strings.ToLower(label)
	label = whitespaceRegex.ReplaceAllString(label, " ")
	label = strings.Trim(label, " ")
	return label
}

// reports whether the normalized label contains any of the matchers,
// matchers are expected to already be lowercase
func MatchLabel(label string, matchers []string) bool {
	label = NormalizeLabel(label)
	for _, m := range matchers {
		if strings.Contains(label, m) {
			return true
		}
	}
	return false
}
