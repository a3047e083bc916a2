package conversation

import "github.com/jonathan/career-coach/internal/intent"

// GreetingResponse introduces the coach on a user's first greeting.
const GreetingResponse = "Hi! I'm your AI Career Coach. I can help you with:\n\n" +
	"- Career path analysis and recommendations\n" +
	"- Resume review and improvement suggestions\n" +
	"- Job matching based on your preferences\n" +
	"- Mock interview practice\n" +
	"- Skill gap analysis\n\n" +
	"Just tell me what you'd like help with! For example, you can say " +
	"'I want career advice' or 'Can you review my resume?'"

var clarifyingQuestions = map[intent.Intent]string{
	intent.IntentCareerAnalysis: "I can help analyze career paths! To give you better recommendations, " +
		"could you tell me about your skills and experience? For example: " +
		"'I know Python, SQL, and have 2 years of data analysis experience'",
	intent.IntentResumeReview: "I'd be happy to review your resume! Just send it as text and " +
		"I'll analyze it for you. If you're targeting a specific role, let me know!",
	intent.IntentJobMatch: "I can help find job matches! What are your preferences in terms of:\n" +
		"- Location (remote/specific city)\n" +
		"- Industry\n" +
		"- Salary expectations\n" +
		"Just share what's important to you!",
	intent.IntentMockInterview: "Let's practice interviewing! What role would you like to prepare for? " +
		"For example: 'Software Engineer' or 'Data Scientist'",
	intent.IntentSkillGap: "I can help identify skills to develop! Could you tell me:\n" +
		"1. Your current skills\n" +
		"2. The role you're targeting\n" +
		"For example: 'I know Python and SQL, and want to become a Data Scientist'",
}

// ClarifyingQuestion returns the follow-up prompt for a detected task intent.
func ClarifyingQuestion(in intent.Intent) string {
	if q, ok := clarifyingQuestions[in]; ok {
		return q
	}
	return "Could you please be more specific about what you're looking for?"
}
