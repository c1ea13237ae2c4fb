package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/NishantRathee12/resume-reviewer/internal/models"
)

// ImprovementGenerator derives human-readable suggestions from the gap
// between resume and job keyword sets.
type ImprovementGenerator interface {
	Generate(resume, job models.CategorizedKeywords) models.ImprovementReport
	TextSuggestions(resumeText string) []string
}

type improvementGenerator struct{}

func NewImprovementGenerator() ImprovementGenerator {
	return &improvementGenerator{}
}

const (
	suggestionEducationGap  = "Consider pursuing the educational qualifications mentioned in the job description"
	suggestionExperienceGap = "Gain more hands-on experience in the areas mentioned in the job description"

	suggestionFewTechnical  = "Consider adding more technical skills to strengthen your profile"
	suggestionFewSoftSkills = "Include more soft skills to show you are a well-rounded candidate"
	suggestionFewExperience = "Add more details about your work experience and accomplishments"

	suggestionBriefResume   = "Your resume seems brief. Consider adding more details about your experiences."
	suggestionLengthyResume = "Your resume is quite lengthy. Consider making it more concise."
	suggestionQuantify      = "Add more quantifiable achievements (numbers, percentages) to strengthen your impact."
)

// Generate walks the categories in their stable order, collecting the job
// keywords absent from the resume and emitting a suggestion per non-empty
// gap, then appends threshold suggestions for thin resume sections.
// Duplicate suggestions are kept; the output order is part of the contract.
func (g *improvementGenerator) Generate(resume, job models.CategorizedKeywords) models.ImprovementReport {
	report := models.ImprovementReport{
		MissingKeywords: []string{},
		Improvements:    []string{},
		SkillsNeeded:    []string{},
	}

	for _, category := range models.Categories {
		missing := difference(job.Get(category), resume.Get(category))
		if len(missing) == 0 {
			continue
		}
		report.MissingKeywords = append(report.MissingKeywords, missing...)

		switch category {
		case models.CategoryTechnicalSkills:
			report.SkillsNeeded = append(report.SkillsNeeded, missing...)
			report.Improvements = append(report.Improvements, fmt.Sprintf(
				"Add experience with %s to your technical skills section",
				strings.Join(missing, ", ")))
		case models.CategorySoftSkills:
			report.Improvements = append(report.Improvements, fmt.Sprintf(
				"Highlight your %s abilities in your experience descriptions",
				strings.Join(missing, ", ")))
		case models.CategoryEducation:
			report.Improvements = append(report.Improvements, suggestionEducationGap)
		case models.CategoryExperience:
			report.Improvements = append(report.Improvements, suggestionExperienceGap)
		}
	}

	if len(resume.TechnicalSkills) < 5 {
		report.Improvements = append(report.Improvements, suggestionFewTechnical)
	}
	if len(resume.SoftSkills) < 3 {
		report.Improvements = append(report.Improvements, suggestionFewSoftSkills)
	}
	if len(resume.Experience) < 5 {
		report.Improvements = append(report.Improvements, suggestionFewExperience)
	}

	// Keywords are sets; only the suggestion list keeps order and duplicates.
	report.MissingKeywords = models.NormalizeSet(report.MissingKeywords)
	report.SkillsNeeded = models.NormalizeSet(report.SkillsNeeded)
	return report
}

var quantifiedRe = regexp.MustCompile(`\b\d+(?:\.\d+)?%?`)

// TextSuggestions inspects the raw resume text for length and measurable
// impact, independent of the keyword gap analysis.
func (g *improvementGenerator) TextSuggestions(resumeText string) []string {
	var suggestions []string

	wordCount := len(strings.Fields(resumeText))
	if wordCount < 300 {
		suggestions = append(suggestions, suggestionBriefResume)
	} else if wordCount > 1000 {
		suggestions = append(suggestions, suggestionLengthyResume)
	}

	if len(quantifiedRe.FindAllString(resumeText, -1)) < 3 {
		suggestions = append(suggestions, suggestionQuantify)
	}

	return suggestions
}

// difference returns the elements of a that are absent from b, preserving
// a's order.
func difference(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, k := range b {
		set[k] = struct{}{}
	}
	var out []string
	for _, k := range a {
		if _, ok := set[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}
