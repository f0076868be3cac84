package dto

type ResumeParseResponse struct {
	Skills     []string `json:"skills"`
	SkillCount int      `json:"skill_count"`
	WordCount  int      `json:"word_count"`
}
