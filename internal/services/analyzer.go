package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/NishantRathee12/resume-reviewer/internal/models"
)

// Analyzer sequences categorization, scoring and improvement generation over
// one request and assembles the response payload.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText, jobDescription string) (*models.AnalysisResult, error)
}

type analyzer struct {
	categorizer Categorizer
	scorer      Scorer
	generator   ImprovementGenerator
	// Tagging is the CPU-bound stage; the semaphore bounds how many requests
	// run it at once.
	semaphore chan struct{}
}

func NewAnalyzer(
	categorizer Categorizer,
	scorer Scorer,
	generator ImprovementGenerator,
	concurrency int,
) Analyzer {
	if concurrency < 1 {
		concurrency = 1
	}
	return &analyzer{
		categorizer: categorizer,
		scorer:      scorer,
		generator:   generator,
		semaphore:   make(chan struct{}, concurrency),
	}
}

func (a *analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) (*models.AnalysisResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, models.NewValidationError("resume text is empty")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, models.NewValidationError("job description is empty")
	}

	analysisID := uuid.New()
	log.Printf("🔄 Starting analysis %s (resume: %d chars, job description: %d chars)\n",
		analysisID, len(resumeText), len(jobDescription))

	select {
	case a.semaphore <- struct{}{}:
		defer func() { <-a.semaphore }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	resumeKeywords, err := a.categorizer.Categorize(resumeText)
	if err != nil {
		return nil, &models.AnalysisError{Stage: "resume categorization", Err: err}
	}

	jobKeywords, err := a.categorizer.Categorize(jobDescription)
	if err != nil {
		return nil, &models.AnalysisError{Stage: "job description categorization", Err: err}
	}

	scores := a.scorer.Score(resumeKeywords, jobKeywords)
	report := a.generator.Generate(resumeKeywords, jobKeywords)
	improvements := append(report.Improvements, a.generator.TextSuggestions(resumeText)...)

	log.Printf("✅ Analysis %s completed: overall match %.2f%%\n", analysisID, scores.OverallMatch)

	return &models.AnalysisResult{
		OverallMatch:    scores.OverallMatch,
		TechnicalSkills: scores.TechnicalSkills,
		SoftSkills:      scores.SoftSkills,
		Education:       scores.Education,
		Experience:      scores.Experience,
		MatchedKeywords: resumeKeywords.Flatten(),
		MissingKeywords: report.MissingKeywords,
		Improvements:    improvements,
		SkillsNeeded:    report.SkillsNeeded,
	}, nil
}
