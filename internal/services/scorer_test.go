package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NishantRathee12/resume-reviewer/internal/models"
)

func keywords(technical, soft, education, experience []string) models.CategorizedKeywords {
	ck := models.NewCategorizedKeywords()
	ck.Set(models.CategoryTechnicalSkills, technical)
	ck.Set(models.CategorySoftSkills, soft)
	ck.Set(models.CategoryEducation, education)
	ck.Set(models.CategoryExperience, experience)
	return ck
}

func TestScore_EmptyJobCategoriesScoreFull(t *testing.T) {
	s := NewScorer()

	scores := s.Score(keywords(nil, nil, nil, nil), keywords(nil, nil, nil, nil))

	assert.Equal(t, 100.0, scores.TechnicalSkills)
	assert.Equal(t, 100.0, scores.SoftSkills)
	assert.Equal(t, 100.0, scores.Education)
	assert.Equal(t, 100.0, scores.Experience)
	assert.Equal(t, 100.0, scores.OverallMatch)
}

func TestScore_PartialOverlap(t *testing.T) {
	s := NewScorer()

	resume := keywords([]string{"python", "docker"}, nil, nil, nil)
	job := keywords([]string{"python", "aws"}, nil, nil, nil)

	scores := s.Score(resume, job)

	assert.Equal(t, 50.0, scores.TechnicalSkills)
	// The three categories without job requirements contribute 100 each.
	assert.Equal(t, 87.5, scores.OverallMatch)
}

func TestScore_NoOverlapScoresZero(t *testing.T) {
	s := NewScorer()

	resume := keywords(nil, nil, []string{"bachelor in computer science"}, nil)
	job := keywords(nil, nil, []string{"master"}, nil)

	scores := s.Score(resume, job)

	assert.Equal(t, 0.0, scores.Education)
	assert.Equal(t, 75.0, scores.OverallMatch)
}

func TestScore_RoundsToTwoDecimals(t *testing.T) {
	s := NewScorer()

	resume := keywords([]string{"aws"}, nil, nil, nil)
	job := keywords([]string{"aws", "sql", "git"}, nil, nil, nil)

	scores := s.Score(resume, job)

	assert.Equal(t, 33.33, scores.TechnicalSkills)
	assert.Equal(t, 83.33, scores.OverallMatch)
}

func TestScore_OverallIsMeanOfAllFourCategories(t *testing.T) {
	s := NewScorer()

	resume := keywords(
		[]string{"python"},
		[]string{"communication"},
		nil,
		[]string{"experience"},
	)
	job := keywords(
		[]string{"python", "aws"},
		[]string{"communication"},
		[]string{"master"},
		[]string{"experience"},
	)

	scores := s.Score(resume, job)

	assert.Equal(t, 50.0, scores.TechnicalSkills)
	assert.Equal(t, 100.0, scores.SoftSkills)
	assert.Equal(t, 0.0, scores.Education)
	assert.Equal(t, 100.0, scores.Experience)
	assert.Equal(t, 62.5, scores.OverallMatch)
}

func TestScore_AlwaysWithinRange(t *testing.T) {
	s := NewScorer()

	cases := []struct {
		name   string
		resume models.CategorizedKeywords
		job    models.CategorizedKeywords
	}{
		{"both empty", keywords(nil, nil, nil, nil), keywords(nil, nil, nil, nil)},
		{"resume empty", keywords(nil, nil, nil, nil), keywords([]string{"aws"}, []string{"teamwork"}, []string{"master"}, []string{"years"})},
		{"full match", keywords([]string{"aws"}, nil, nil, nil), keywords([]string{"aws"}, nil, nil, nil)},
		{"resume superset", keywords([]string{"aws", "python", "sql"}, nil, nil, nil), keywords([]string{"aws"}, nil, nil, nil)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scores := s.Score(tc.resume, tc.job)
			for _, c := range models.Categories {
				got := scores.Get(c)
				assert.GreaterOrEqual(t, got, 0.0)
				assert.LessOrEqual(t, got, 100.0)
			}
			assert.GreaterOrEqual(t, scores.OverallMatch, 0.0)
			assert.LessOrEqual(t, scores.OverallMatch, 100.0)
		})
	}
}
