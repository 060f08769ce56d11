package utils

import "strings"

// ContainsString returns true if targetString is one of sliceOfStrings
func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// NormalizeToken lower-cases and trims a token typed by the user
func NormalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// IsMissing returns true if value is one of the markers the CSV reader uses for empty cells
func IsMissing(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || value == "NaN" || value == "NA"
}
