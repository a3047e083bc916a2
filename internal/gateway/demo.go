package gateway

import "github.com/jonathan/career-coach/internal/types"

// Canned responses served when no model backend is configured or the backend
// fails. Shapes mirror what the interpreters expect from a real model.
var demoResponses = map[types.AnalysisType]string{
	types.AnalysisCareerPath: `[
  {
    "job_title": "Software Engineer",
    "match_percentage": 85,
    "required_skills": ["Python", "JavaScript", "Git"],
    "skill_gaps": ["React", "Docker"],
    "salary_range": "$70k-110k",
    "career_path": ["Junior Developer", "Software Engineer", "Senior Engineer"],
    "reasoning": "Strong foundation in programming languages with room for frontend and DevOps skills"
  },
  {
    "job_title": "Data Analyst",
    "match_percentage": 75,
    "required_skills": ["Python", "SQL", "Excel"],
    "skill_gaps": ["Tableau", "Statistics"],
    "salary_range": "$60k-90k",
    "career_path": ["Data Analyst", "Senior Data Analyst", "Data Scientist"],
    "reasoning": "Good analytical skills foundation, need to develop visualization and statistics"
  }
]`,
	types.AnalysisResumeReview: `{
  "overall_score": 75,
  "strengths": ["Clear technical skills section", "Relevant work experience", "Good formatting"],
  "weaknesses": ["Missing quantified achievements", "No leadership examples", "Lacks keywords"],
  "improvement_suggestions": ["Add metrics to achievements", "Include soft skills", "Optimize for ATS"],
  "keyword_optimization": ["Add cloud technologies", "Include frameworks", "Add certifications"],
  "formatting_feedback": ["Use consistent bullet points", "Add contact information", "Improve spacing"]
}`,
	types.AnalysisJobMatching: `[
  {
    "job_title": "Python Developer",
    "company_type": "Tech Startup",
    "match_percentage": 90,
    "salary_range": "$80k-120k",
    "location": "Remote",
    "requirements": ["Python", "FastAPI", "PostgreSQL"]
  },
  {
    "job_title": "Backend Engineer",
    "company_type": "Mid-size Company",
    "match_percentage": 85,
    "salary_range": "$75k-115k",
    "location": "Hybrid",
    "requirements": ["Python", "Django", "AWS"]
  }
]`,
	types.AnalysisInterviewQuestions: `[
  "Tell me about yourself and your background",
  "What interests you about this role?",
  "Describe a challenging project you worked on",
  "How do you handle debugging complex issues?",
  "Where do you see yourself in 5 years?"
]`,
	types.AnalysisInterviewEvaluation: `{
  "overall_performance": 78,
  "communication_skills": 82,
  "technical_knowledge": 74,
  "problem_solving": 80,
  "areas_for_improvement": ["Add more concrete examples", "Structure answers with situation and outcome"],
  "suggested_practice_topics": ["System design", "Behavioral questions"]
}`,
	types.AnalysisSkillGap: `{
  "relevant_skills": ["Python", "SQL"],
  "missing_skills": ["Machine Learning", "Statistics", "Pandas"],
  "learning_path": ["Learn statistics fundamentals", "Master pandas and numpy", "Practice ML algorithms", "Work on real projects"],
  "timeline": "4-6 months with consistent practice",
  "resources": ["Online courses", "Kaggle competitions", "Open source projects"]
}`,
	types.AnalysisChat: "I'm running without a model backend right now, so I can't give a tailored answer. " +
		"I can still help with career path analysis, resume review, job matching, mock interviews, and skill gap analysis.",
}

// DemoResponse returns the canned response for a task.
func DemoResponse(task types.AnalysisType) string {
	if resp, ok := demoResponses[task]; ok {
		return resp
	}
	return `{"message": "Demo response not available for this analysis type"}`
}
