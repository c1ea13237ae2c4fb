package services

import (
	"strings"
	"unicode"
)

// Indicator vocabularies for the categorizer. Matching is naive substring
// containment in either direction; these lists trade precision for recall,
// which is the intended behavior.

var technicalIndicators = []string{
	"python", "java", "javascript", "typescript", "golang", "ruby", "php",
	"c++", "c#", "scala", "kotlin", "swift", "rust",
	"sql", "nosql", "postgres", "postgresql", "mysql", "mongodb", "redis",
	"elasticsearch", "kafka", "rabbitmq", "spark", "hadoop",
	"aws", "azure", "gcp", "cloud", "docker", "kubernetes", "terraform",
	"jenkins", "ansible", "linux", "unix", "git", "ci/cd", "devops",
	"react", "angular", "vue", "node", "django", "flask", "spring",
	"html", "css", "rest", "graphql", "grpc", "api", "microservices",
	"machine learning", "deep learning", "data analysis", "data science",
	"tensorflow", "pytorch", "pandas", "numpy", "nlp",
	"tableau", "excel", "etl", "database", "testing", "automation",
	"agile", "scrum", "security", "networking", "backend", "frontend",
	"fullstack", "mobile", "android", "ios", "programming", "coding",
}

var softSkillIndicators = []string{
	"communication", "leadership", "teamwork", "collaboration",
	"adaptability", "creativity", "organization", "mentoring",
	"presentation", "negotiation", "flexibility", "initiative",
	"motivation", "empathy", "accountability", "reliability",
	"interpersonal", "multitasking", "prioritization",
}

// Multi-word soft skills rarely surface as single tokens, so the categorizer
// scans whole sentences for these.
var softSkillPhrases = []string{
	"time management", "problem solving", "critical thinking",
	"attention to detail", "decision making", "team player",
	"work ethic", "public speaking", "conflict resolution",
	"people management", "stakeholder management", "analytical thinking",
	"verbal communication", "written communication",
}

var experienceIndicators = []string{
	"experience", "years", "worked", "managed", "led", "developed",
	"designed", "implemented", "architected", "built", "delivered",
	"maintained", "deployed", "launched", "optimized", "migrated",
	"internship", "senior", "junior", "lead", "manager", "engineer",
	"developer", "analyst", "consultant", "architect", "specialist",
	"project", "product", "team", "career", "professional", "employment",
	"responsibilities", "achievements",
}

// Degree classes in fixed priority order. The first class whose variant set
// intersects a segment wins for that segment.
var degreeClasses = []string{"bachelor", "master", "doctorate", "diploma"}

var degreeBaseVocabulary = map[string][]string{
	"bachelor": {
		"bachelor", "bachelors", "b.tech", "b.e", "b.sc", "bsc",
		"b.com", "bca", "b.a", "bba", "undergraduate",
	},
	"master": {
		"master", "masters", "m.tech", "m.e", "m.sc", "msc",
		"m.com", "mca", "m.a", "mba", "postgraduate", "pgdm",
	},
	"doctorate": {
		"doctorate", "doctoral", "ph.d", "phd", "d.phil",
	},
	"diploma": {
		"diploma", "associate",
	},
}

// Field-of-study classes in fixed priority order; more specific classes come
// before classes their names contain ("computer science" before "science").
var fieldClasses = []string{
	"computer science", "data science", "information technology",
	"computer applications", "technology", "engineering", "mathematics",
	"commerce", "business administration", "science", "arts",
}

var fieldBaseVocabulary = map[string][]string{
	"computer science":        {"computer science", "comp sci", "cse"},
	"data science":            {"data science"},
	"information technology":  {"information technology"},
	"computer applications":   {"computer applications"},
	"technology":              {"technology", "tech"},
	"engineering":             {"engineering", "engg"},
	"mathematics":             {"mathematics", "maths", "math"},
	"commerce":                {"commerce"},
	"business administration": {"business administration", "business"},
	"science":                 {"science"},
	"arts":                    {"arts", "humanities"},
}

// Expanded vocabularies, built once at process start and read-only afterward.
var (
	degreeVocabulary = expandVocabulary(degreeBaseVocabulary)
	fieldVocabulary  = expandVocabulary(fieldBaseVocabulary)
)

func expandVocabulary(base map[string][]string) map[string][]string {
	expanded := make(map[string][]string, len(base))
	for class, variants := range base {
		expanded[class] = expandVariants(variants)
	}
	return expanded
}

// expandVariants grows a base list into all case, punctuation and spacing
// permutations seen in real resumes: "b.tech" also matches as "B.TECH",
// "B.Tech", "btech", "b tech" and "b t e c h". Variants shorter than three
// characters are dropped to avoid matching inside unrelated words.
func expandVariants(base []string) []string {
	seen := make(map[string]struct{})
	var out []string

	add := func(v string) {
		v = strings.TrimSpace(v)
		if len(v) < 3 {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	for _, b := range base {
		undotted := strings.ReplaceAll(b, ".", "")
		forms := []string{b, undotted}
		// Spaced permutations of very short abbreviations ("b.e" -> "b e")
		// would substring-match inside ordinary prose, so only longer
		// abbreviations get them.
		if len(undotted) >= 3 {
			forms = append(forms, strings.ReplaceAll(b, ".", " "))
		}
		if len(undotted) >= 3 && len(undotted) <= 5 && !strings.Contains(b, " ") {
			forms = append(forms, strings.Join(strings.Split(undotted, ""), " "))
		}
		for _, f := range forms {
			add(strings.ToLower(f))
			add(strings.ToUpper(f))
			add(titleCase(f))
		}
	}
	return out
}

// titleCase uppercases the first letter of every word, where a word starts
// after a space or a dot ("b.tech" -> "B.Tech").
func titleCase(s string) string {
	runes := []rune(strings.ToLower(s))
	boundary := true
	for i, r := range runes {
		if boundary {
			runes[i] = unicode.ToUpper(r)
		}
		boundary = r == ' ' || r == '.'
	}
	return string(runes)
}
