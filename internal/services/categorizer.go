package services

import (
	"fmt"
	"strings"

	"github.com/NishantRathee12/resume-reviewer/internal/models"
)

// Categorizer classifies tokens and phrases from a text into the four
// keyword categories.
type Categorizer interface {
	Categorize(text string) (models.CategorizedKeywords, error)
}

type categorizer struct {
	tagger    Tagger
	education EducationMatcher
}

func NewCategorizer(tagger Tagger, education EducationMatcher) Categorizer {
	return &categorizer{
		tagger:    tagger,
		education: education,
	}
}

// Categorize extracts noun tokens and noun phrases from text and tests each
// against the indicator vocabularies. A candidate may land in several
// categories; each match records the canonical indicator rather than the raw
// candidate, so keyword sets from different texts are directly comparable.
// Education is produced by the EducationMatcher instead of indicator lookup.
func (c *categorizer) Categorize(text string) (models.CategorizedKeywords, error) {
	keywords := models.NewCategorizedKeywords()

	lowered := strings.ToLower(text)
	tagged, err := c.tagger.Tag(lowered)
	if err != nil {
		return keywords, fmt.Errorf("failed to tag text: %w", err)
	}

	var candidates []string
	for _, tok := range append(tagged.Nouns, tagged.NounPhrases...) {
		tok = strings.TrimSpace(tok)
		if len(tok) > 2 {
			candidates = append(candidates, tok)
		}
	}

	var technical, soft, experience []string
	for _, candidate := range candidates {
		for _, indicator := range technicalIndicators {
			if matchesIndicator(candidate, indicator) {
				technical = append(technical, indicator)
			}
		}
		for _, indicator := range softSkillIndicators {
			if matchesIndicator(candidate, indicator) {
				soft = append(soft, indicator)
			}
		}
		for _, indicator := range experienceIndicators {
			if matchesIndicator(candidate, indicator) {
				experience = append(experience, indicator)
			}
		}
	}

	// Multi-word soft skills rarely surface as single tokens, so whole
	// sentences are scanned for the fixed phrase list.
	for _, sentence := range tagged.Sentences {
		for _, phrase := range softSkillPhrases {
			if strings.Contains(sentence, phrase) {
				soft = append(soft, phrase)
			}
		}
	}

	keywords.Set(models.CategoryTechnicalSkills, technical)
	keywords.Set(models.CategorySoftSkills, soft)
	keywords.Set(models.CategoryEducation, c.education.ExtractEducation(text))
	keywords.Set(models.CategoryExperience, experience)
	return keywords, nil
}

// matchesIndicator reports whether one string contains the other. Both
// directions count: the indicator "python" matches the phrase "python
// development", and the token "manage" matches "time management".
func matchesIndicator(candidate, indicator string) bool {
	return strings.Contains(candidate, indicator) || strings.Contains(indicator, candidate)
}
