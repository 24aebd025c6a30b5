package collection

import (
	"html"
	"strings"
)

// Sanitize unescapes HTML entities and strips markup leftovers from scraped text
func Sanitize(s string) (str string) {
	str = html.UnescapeString(strings.TrimSpace(s))
	var replacements = [...]string{
		"\"",
		"#",
		"*",
		"_",
		"\n",
		"\r",
	}

	for i := range replacements {
		str = strings.Replace(str, replacements[i], "", -1)
	}

	return strings.TrimSpace(str)
}

// CollateString returns a if a != nil, else b
func CollateString(a, b string) string {
	if a == "" {
		return b
	}
	return a
}

// CollateStrings returns the first non-empty string in list
func CollateStrings(input ...string) string {
	for i := range input {
		if input[i] != "" {
			return input[i]
		}
	}
	return ""
}

// IsEmpty checks for empty string
func IsEmpty(s *string) bool {
	return *s == ""
}

// AnyEmpty checks for any empty string in slice
func AnyEmpty(s []*string) bool {
	for i := range s {
		if *s[i] == "" {
			return true
		}
	}
	return false
}

// StringInList returns true if a given string is in a list of strings
func StringInList(str string, list []string) bool {
	for i := range list {
		if str == list[i] {
			return true
		}
	}
	return false
}

func HighestFloat(a []float64) (c float64) {
	if len(a) < 1 {
		return 0.0
	}
	var highest float64
	for i := range a {
		if a[i] > highest {
			highest = a[i]
		}
	}
	return highest
}

func LowestFloat(a []float64) (c float64) {
	if len(a) < 1 {
		return 0.0
	}
	lowest := HighestFloat(a)
	for i := range a {
		if a[i] < lowest {
			lowest = a[i]
		}
	}
	return lowest
}

func MeanFloat(a []float64) (c float64) {
	if len(a) < 1 {
		return 0.0
	}
	var sum float64
	for i := range a {
		sum += a[i]
	}
	return sum / float64(len(a))
}
