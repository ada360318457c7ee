package parse

import "strings"

// HeaderRule maps a set of header phrases to a section key. A line
// containing any phrase (case-insensitive substring) opens that section.
type HeaderRule struct {
	Section string
	Phrases []string
}

// SectionSplitter buckets lines of generated text into named sections.
// It is a small state machine: the state is the current section key (or
// none), and the transition table is the ordered rule list. Rules are
// checked in order and the first match wins, so phrase sets must be
// mutually non-overlapping as substrings.
type SectionSplitter struct {
	rules []HeaderRule
}

// NewSectionSplitter creates a splitter with the given header rules
func NewSectionSplitter(rules []HeaderRule) *SectionSplitter {
	return &SectionSplitter{rules: rules}
}

// Split scans text line by line and returns the lines belonging to each
// recognized section, in input order. Blank lines are skipped, header
// lines are consumed, and lines before the first recognized header are
// dropped.
func (s *SectionSplitter) Split(text string) map[string][]string {
	sections := make(map[string][]string)
	current := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if section, ok := s.matchHeader(line); ok {
			current = section
			continue
		}

		if current == "" {
			continue
		}
		sections[current] = append(sections[current], line)
	}

	return sections
}

// matchHeader classifies a line as a section header, returning the
// section it opens
func (s *SectionSplitter) matchHeader(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, rule := range s.rules {
		for _, phrase := range rule.Phrases {
			if strings.Contains(lower, phrase) {
				return rule.Section, true
			}
		}
	}
	return "", false
}
