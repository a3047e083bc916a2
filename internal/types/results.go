package types

// CareerRecommendation represents one recommended career direction for a user.
type CareerRecommendation struct {
	JobTitle        string   `json:"job_title"`
	MatchPercentage float64  `json:"match_percentage"`
	RequiredSkills  []string `json:"required_skills"`
	SkillGaps       []string `json:"skill_gaps"`
	SalaryRange     string   `json:"salary_range"`
	CareerPath      []string `json:"career_path"`
	Reasoning       string   `json:"reasoning"`
}

// ResumeAnalysis represents resume review results.
type ResumeAnalysis struct {
	OverallScore           float64  `json:"overall_score"`
	Strengths              []string `json:"strengths"`
	Weaknesses             []string `json:"weaknesses"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
	KeywordOptimization    []string `json:"keyword_optimization"`
	FormattingFeedback     []string `json:"formatting_feedback"`
}

// JobMatch represents one matched job opportunity.
type JobMatch struct {
	JobTitle        string   `json:"job_title"`
	CompanyType     string   `json:"company_type"`
	MatchPercentage float64  `json:"match_percentage"`
	SalaryRange     string   `json:"salary_range"`
	Location        string   `json:"location"`
	Requirements    []string `json:"requirements"`
}

// SkillGapAnalysis represents the gap between current skills and a target role.
type SkillGapAnalysis struct {
	RelevantSkills []string `json:"relevant_skills"`
	MissingSkills  []string `json:"missing_skills"`
	LearningPath   []string `json:"learning_path"`
	Timeline       string   `json:"timeline"`
	Resources      []string `json:"resources"`
}

// InterviewFeedback represents mock interview evaluation results.
// Scores are on a 0-100 scale.
type InterviewFeedback struct {
	OverallPerformance      float64  `json:"overall_performance"`
	CommunicationSkills     float64  `json:"communication_skills"`
	TechnicalKnowledge      float64  `json:"technical_knowledge"`
	ProblemSolving          float64  `json:"problem_solving"`
	AreasForImprovement     []string `json:"areas_for_improvement"`
	SuggestedPracticeTopics []string `json:"suggested_practice_topics"`
}
