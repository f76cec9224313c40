// Package pattern holds the precompiled regular-expression tables used for
// field extraction. All tables are built at init time and are read-only
// afterwards; parsers share them by reference and layer their own candidate
// lists on top.
package pattern

import "regexp"

// Candidate pairs a compiled pattern with the capture group that carries the
// field value and an optional post-processor. Candidate lists are ordered:
// extraction tries each in turn and returns the first hit, so the most
// common or most specific form is listed first.
type Candidate struct {
	Regex *regexp.Regexp
	Post  func(string) string
	Group int
}

// Find runs the candidate against message and returns the processed capture,
// or ok=false when the pattern does not match.
func (c Candidate) Find(message string) (string, bool) {
	m := c.Regex.FindStringSubmatch(message)
	if m == nil || c.Group >= len(m) {
		return "", false
	}
	v := m[c.Group]
	if v == "" {
		return "", false
	}
	if c.Post != nil {
		v = c.Post(v)
	}
	return v, true
}

// FindFirst tries each candidate in order and returns the first match.
func FindFirst(candidates []Candidate, message string) (string, bool) {
	for _, c := range candidates {
		if v, ok := c.Find(message); ok {
			return v, true
		}
	}
	return "", false
}
