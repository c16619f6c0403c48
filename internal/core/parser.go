package core

import (
	"regexp"
	"strings"
)

var issuePattern = regexp.MustCompile(`^(\d+\s*,\s*)*\d+$`)

// ValidIssues reports whether s is a comma separated list of issue numbers,
// e.g. "12,34" or "12, 34".
func ValidIssues(s string) bool {
	return issuePattern.MatchString(s)
}

// ParseIssues validates s and returns it unchanged.
func ParseIssues(s string) (string, error) {
	if !ValidIssues(s) {
		return "", &InvalidIssueFormatError{Input: s}
	}
	return s, nil
}

// SplitIssues splits a raw issue list on commas and trims each entry.
func SplitIssues(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
