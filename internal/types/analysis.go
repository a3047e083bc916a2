package types

// AnalysisType identifies a coaching task handled by the model pipeline.
type AnalysisType string

// Coaching tasks. Each has its own prompt template, expected response shape,
// and demo response.
const (
	AnalysisCareerPath          AnalysisType = "career_path"
	AnalysisResumeReview        AnalysisType = "resume_review"
	AnalysisJobMatching         AnalysisType = "job_matching"
	AnalysisInterviewQuestions  AnalysisType = "interview_questions"
	AnalysisInterviewEvaluation AnalysisType = "interview_evaluation"
	AnalysisSkillGap            AnalysisType = "skill_gap"
	AnalysisChat                AnalysisType = "chat"
)
