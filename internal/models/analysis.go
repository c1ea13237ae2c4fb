package models

import "sort"

// Category identifies one of the four keyword buckets. The set of categories
// is fixed; scoring always iterates all four.
type Category string

const (
	CategoryTechnicalSkills Category = "technicalSkills"
	CategorySoftSkills      Category = "softSkills"
	CategoryEducation       Category = "education"
	CategoryExperience      Category = "experience"
)

// Categories lists the four categories in their stable iteration order.
// Suggestion ordering depends on this order, so it must not change.
var Categories = []Category{
	CategoryTechnicalSkills,
	CategorySoftSkills,
	CategoryEducation,
	CategoryExperience,
}

// CategorizedKeywords holds the normalized keyword sets extracted from one
// text. Every field is always non-nil; entries are lowercase, trimmed,
// deduplicated and sorted.
type CategorizedKeywords struct {
	TechnicalSkills []string `json:"technicalSkills"`
	SoftSkills      []string `json:"softSkills"`
	Education       []string `json:"education"`
	Experience      []string `json:"experience"`
}

// NewCategorizedKeywords returns a value with all four sets present and empty.
func NewCategorizedKeywords() CategorizedKeywords {
	return CategorizedKeywords{
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		Education:       []string{},
		Experience:      []string{},
	}
}

// Get returns the keyword set for a category.
func (ck CategorizedKeywords) Get(c Category) []string {
	switch c {
	case CategoryTechnicalSkills:
		return ck.TechnicalSkills
	case CategorySoftSkills:
		return ck.SoftSkills
	case CategoryEducation:
		return ck.Education
	default:
		return ck.Experience
	}
}

// Set replaces the keyword set for a category with a deduplicated, sorted
// copy of keywords.
func (ck *CategorizedKeywords) Set(c Category, keywords []string) {
	normalized := NormalizeSet(keywords)
	switch c {
	case CategoryTechnicalSkills:
		ck.TechnicalSkills = normalized
	case CategorySoftSkills:
		ck.SoftSkills = normalized
	case CategoryEducation:
		ck.Education = normalized
	default:
		ck.Experience = normalized
	}
}

// Flatten returns the union of all four keyword sets, deduplicated and sorted.
func (ck CategorizedKeywords) Flatten() []string {
	var all []string
	for _, c := range Categories {
		all = append(all, ck.Get(c)...)
	}
	return NormalizeSet(all)
}

// NormalizeSet deduplicates and sorts keywords, dropping entries whose
// trimmed length is 2 or less. The result is never nil.
func NormalizeSet(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	result := []string{}
	for _, k := range keywords {
		if len(k) <= 2 {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}

// MatchScores maps each category to a match percentage in [0,100].
// OverallMatch is the rounded mean of the four category scores.
type MatchScores struct {
	TechnicalSkills float64 `json:"technicalSkills"`
	SoftSkills      float64 `json:"softSkills"`
	Education       float64 `json:"education"`
	Experience      float64 `json:"experience"`
	OverallMatch    float64 `json:"overallMatch"`
}

// Get returns the score for a category.
func (ms MatchScores) Get(c Category) float64 {
	switch c {
	case CategoryTechnicalSkills:
		return ms.TechnicalSkills
	case CategorySoftSkills:
		return ms.SoftSkills
	case CategoryEducation:
		return ms.Education
	default:
		return ms.Experience
	}
}

// Set stores the score for a category.
func (ms *MatchScores) Set(c Category, score float64) {
	switch c {
	case CategoryTechnicalSkills:
		ms.TechnicalSkills = score
	case CategorySoftSkills:
		ms.SoftSkills = score
	case CategoryEducation:
		ms.Education = score
	default:
		ms.Experience = score
	}
}

// ImprovementReport describes the gap between job requirements and resume
// content. Improvements is ordered (category order, then threshold checks)
// and may contain duplicates; MissingKeywords and SkillsNeeded are sets.
type ImprovementReport struct {
	MissingKeywords []string `json:"missingKeywords"`
	Improvements    []string `json:"improvements"`
	SkillsNeeded    []string `json:"skillsNeeded"`
}

// AnalysisResult is the full response payload for one analysis request.
type AnalysisResult struct {
	OverallMatch    float64  `json:"overallMatch"`
	TechnicalSkills float64  `json:"technicalSkills"`
	SoftSkills      float64  `json:"softSkills"`
	Education       float64  `json:"education"`
	Experience      float64  `json:"experience"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Improvements    []string `json:"improvements"`
	SkillsNeeded    []string `json:"skillsNeeded"`
}

// AnalyzeRequest carries the validated form fields of POST /analyze.
type AnalyzeRequest struct {
	JobDescription string `validate:"required"`
}
