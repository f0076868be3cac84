package resume

import (
	"regexp"
	"sort"
	"strings"
)

// skillVocabulary is the fixed set of skills the parser can detect.
var skillVocabulary = []string{
	// Programming languages
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust",
	"Ruby", "PHP", "Swift", "Kotlin", "Scala", "R",

	// Frontend
	"React", "Vue.js", "Angular", "Next.js", "HTML", "CSS", "Sass", "Tailwind",
	"Redux", "jQuery", "Bootstrap", "Material UI",

	// Backend
	"Node.js", "Express", "Django", "Flask", "Spring Boot", "FastAPI",
	"GraphQL", "REST APIs", "Microservices",

	// Databases
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "Elasticsearch", "Firebase",
	"SQL", "NoSQL", "DynamoDB",

	// Cloud and DevOps
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Jenkins",
	"Terraform", "Linux", "Git", "GitHub Actions",

	// Data science and ML
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Pandas",
	"NumPy", "Scikit-learn", "Data Visualization", "NLP", "Computer Vision",
	"Data Science", "Statistics", "Tableau", "Power BI",

	// Mobile
	"React Native", "Flutter", "iOS", "Android", "Mobile UI",

	// Other
	"Agile", "Scrum", "Figma", "UI Design", "UX Research", "Prototyping",
	"Security", "Networking", "Penetration Testing", "Research",
}

var skillPatterns = buildPatterns(skillVocabulary)

var (
	jsAliasPattern = regexp.MustCompile(`(?i)\bjs\b`)
	tsAliasPattern = regexp.MustCompile(`(?i)\bts\b`)
)

type Parsed struct {
	Skills    []string `json:"skills"`
	RawText   string   `json:"-"`
	WordCount int      `json:"word_count"`
}

// Parse scans resume text for known skills. Word boundaries keep "Java" from
// matching inside "JavaScript". Display casing comes from the vocabulary, not
// the resume.
func Parse(text string) Parsed {
	detected := make([]string, 0, 16)
	have := make(map[string]struct{}, 16)

	for i, skill := range skillVocabulary {
		if skillPatterns[i].MatchString(text) {
			detected = append(detected, skill)
			have[skill] = struct{}{}
		}
	}

	// "JS" and "TS" are common shorthand on resumes.
	if _, ok := have["JavaScript"]; !ok && jsAliasPattern.MatchString(text) {
		detected = append(detected, "JavaScript")
	}
	if _, ok := have["TypeScript"]; !ok && tsAliasPattern.MatchString(text) {
		detected = append(detected, "TypeScript")
	}

	return Parsed{
		Skills:    detected,
		RawText:   text,
		WordCount: len(strings.Fields(text)),
	}
}

// KnownSkills returns the full vocabulary, sorted, for UI pickers.
func KnownSkills() []string {
	out := make([]string, len(skillVocabulary))
	copy(out, skillVocabulary)
	sort.Strings(out)
	return out
}

func buildPatterns(vocab []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(vocab))
	for i, skill := range vocab {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
	}
	return patterns
}
