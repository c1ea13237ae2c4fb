package services

import (
	"regexp"
	"strings"

	"github.com/NishantRathee12/resume-reviewer/internal/models"
)

// EducationMatcher recognizes degree and field-of-study phrases in free text
// using the pre-expanded vocabulary tables.
type EducationMatcher interface {
	ExtractEducation(text string) []string
}

type educationMatcher struct{}

func NewEducationMatcher() EducationMatcher {
	return &educationMatcher{}
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// A single letter followed by a dot and whitespace is an abbreviation
	// fragment, not a sentence end: "b. tech" reads as "b.tech".
	abbrevDotRe   = regexp.MustCompile(`\b([A-Za-z])\.\s+`)
	sentenceEndRe = regexp.MustCompile(`[.!?]+(?:\s+|$)`)
)

// ExtractEducation returns the set of education entries found in text, each
// formatted as "<degree> in <field>" or a bare "<degree>" when no field of
// study appears in the same segment.
func (m *educationMatcher) ExtractEducation(text string) []string {
	normalized := whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	normalized = abbrevDotRe.ReplaceAllString(normalized, "$1.")

	var entries []string
	for _, segment := range sentenceEndRe.Split(normalized, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		degree := matchDegree(segment)
		if degree == "" {
			continue
		}

		entry := degree
		if field := matchField(segment); field != "" {
			entry = degree + " in " + field
		}
		entries = append(entries, entry)
	}

	return models.NormalizeSet(entries)
}

// matchDegree returns the first degree class, in priority order, whose
// variant set intersects the segment. Each variant is tested against the
// segment as-is, lowercased and uppercased.
func matchDegree(segment string) string {
	variants := [3]string{segment, strings.ToLower(segment), strings.ToUpper(segment)}
	for _, class := range degreeClasses {
		for _, sv := range variants {
			for _, v := range degreeVocabulary[class] {
				if strings.Contains(sv, v) {
					return class
				}
			}
		}
	}
	return ""
}

func matchField(segment string) string {
	variants := [3]string{segment, strings.ToLower(segment), strings.ToUpper(segment)}
	for _, class := range fieldClasses {
		for _, sv := range variants {
			for _, v := range fieldVocabulary[class] {
				if strings.Contains(sv, v) {
					return class
				}
			}
		}
	}
	return ""
}
