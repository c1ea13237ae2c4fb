package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_MissingKeywordsAcrossCategories(t *testing.T) {
	g := NewImprovementGenerator()

	resume := keywords([]string{"python"}, nil, []string{"bachelor in computer science"}, nil)
	job := keywords([]string{"python", "aws"}, []string{"communication"}, []string{"master"}, nil)

	report := g.Generate(resume, job)

	assert.Equal(t, []string{"aws", "communication", "master"}, report.MissingKeywords)
	assert.Equal(t, []string{"aws"}, report.SkillsNeeded)
}

func TestGenerate_SuggestionTextAndOrder(t *testing.T) {
	g := NewImprovementGenerator()

	resume := keywords(nil, nil, nil, nil)
	job := keywords(
		[]string{"aws", "python"},
		[]string{"communication"},
		[]string{"master"},
		[]string{"experience"},
	)

	report := g.Generate(resume, job)

	// Category order first, then threshold suggestions.
	assert.Equal(t, []string{
		"Add experience with aws, python to your technical skills section",
		"Highlight your communication abilities in your experience descriptions",
		suggestionEducationGap,
		suggestionExperienceGap,
		suggestionFewTechnical,
		suggestionFewSoftSkills,
		suggestionFewExperience,
	}, report.Improvements)
}

func TestGenerate_NoGapsStillChecksThresholds(t *testing.T) {
	g := NewImprovementGenerator()

	resume := keywords(
		[]string{"python", "aws", "docker", "kubernetes", "terraform"},
		[]string{"communication", "leadership", "teamwork"},
		nil,
		[]string{"developed", "managed", "years", "project", "delivered"},
	)
	job := keywords([]string{"python"}, nil, nil, nil)

	report := g.Generate(resume, job)

	assert.Empty(t, report.MissingKeywords)
	assert.Empty(t, report.Improvements)
	assert.Empty(t, report.SkillsNeeded)
}

func TestGenerate_ThresholdBoundaries(t *testing.T) {
	g := NewImprovementGenerator()

	// Four technical skills is below the threshold of five; three soft
	// skills and five experience items are at theirs.
	resume := keywords(
		[]string{"python", "aws", "docker", "kubernetes"},
		[]string{"communication", "leadership", "teamwork"},
		nil,
		[]string{"developed", "managed", "years", "project", "delivered"},
	)
	job := keywords(nil, nil, nil, nil)

	report := g.Generate(resume, job)

	assert.Equal(t, []string{suggestionFewTechnical}, report.Improvements)
}

func TestGenerate_ResultFieldsNeverNil(t *testing.T) {
	g := NewImprovementGenerator()

	report := g.Generate(keywords(nil, nil, nil, nil), keywords(nil, nil, nil, nil))

	assert.NotNil(t, report.MissingKeywords)
	assert.NotNil(t, report.Improvements)
	assert.NotNil(t, report.SkillsNeeded)
}

func TestTextSuggestions_BriefResume(t *testing.T) {
	g := NewImprovementGenerator()

	got := g.TextSuggestions("Short resume with 5 years of experience")

	assert.Contains(t, got, suggestionBriefResume)
	assert.Contains(t, got, suggestionQuantify)
}

func TestTextSuggestions_LengthyResume(t *testing.T) {
	g := NewImprovementGenerator()

	long := strings.Repeat("word ", 1200)
	got := g.TextSuggestions(long)

	assert.Contains(t, got, suggestionLengthyResume)
}

func TestTextSuggestions_QuantifiedResumeGetsNoQuantifySuggestion(t *testing.T) {
	g := NewImprovementGenerator()

	text := strings.Repeat("word ", 400) + "improved throughput by 40%, cut costs 25% over 3 years"
	got := g.TextSuggestions(text)

	assert.NotContains(t, got, suggestionQuantify)
	assert.NotContains(t, got, suggestionBriefResume)
	assert.NotContains(t, got, suggestionLengthyResume)
}
