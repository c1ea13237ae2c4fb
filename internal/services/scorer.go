package services

import (
	"math"

	"github.com/NishantRathee12/resume-reviewer/internal/models"
)

// Scorer compares two categorized keyword sets and produces per-category
// match percentages plus an aggregate.
type Scorer interface {
	Score(resume, job models.CategorizedKeywords) models.MatchScores
}

type scorer struct{}

func NewScorer() Scorer {
	return &scorer{}
}

// Score computes, for each category, the share of the job's keywords found
// in the resume, as a percentage rounded to two decimals. A category with no
// job keywords scores 100. OverallMatch is the rounded mean of all four
// category scores; no category is ever skipped.
func (s *scorer) Score(resume, job models.CategorizedKeywords) models.MatchScores {
	var scores models.MatchScores
	var sum float64

	for _, category := range models.Categories {
		jobSet := job.Get(category)
		score := 100.0
		if len(jobSet) > 0 {
			matched := intersectionSize(resume.Get(category), jobSet)
			score = round2(100 * float64(matched) / float64(len(jobSet)))
		}
		scores.Set(category, score)
		sum += score
	}

	scores.OverallMatch = round2(sum / float64(len(models.Categories)))
	return scores
}

func intersectionSize(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, k := range a {
		set[k] = struct{}{}
	}
	n := 0
	for _, k := range b {
		if _, ok := set[k]; ok {
			n++
		}
	}
	return n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
