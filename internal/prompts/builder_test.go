package prompts

import (
	"testing"
	"time"

	"github.com/jonathan/career-coach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerAnalysisPrompt(t *testing.T) {
	profile := types.UserProfile{
		Skills:     []string{"Python", "SQL"},
		Experience: []string{"2 years software development"},
	}

	prompt := CareerAnalysis(profile)

	assert.Contains(t, prompt, "Python, SQL")
	assert.Contains(t, prompt, "2 years software development")
	// Empty optional fields render as an explicit placeholder, never a hole.
	assert.Contains(t, prompt, "Interests: Not specified")
	assert.Contains(t, prompt, "Career Goals: Not specified")
	assert.NotContains(t, prompt, "{{.")
}

func TestCareerAnalysisPromptEmptyProfile(t *testing.T) {
	prompt := CareerAnalysis(types.UserProfile{})
	assert.Contains(t, prompt, "Skills: Not specified")
	assert.NotContains(t, prompt, "{{.")
}

func TestResumeReviewPrompt(t *testing.T) {
	withRole := ResumeReview("My resume text", "Data Scientist")
	assert.Contains(t, withRole, "for a Data Scientist position")
	assert.Contains(t, withRole, "My resume text")

	withoutRole := ResumeReview("My resume text", "")
	assert.NotContains(t, withoutRole, "position")
}

func TestJobMatchingPromptRendersPreferencesAsJSON(t *testing.T) {
	prompt := JobMatching(
		types.UserProfile{Skills: []string{"Go"}},
		types.JobPreferences{RemoteOK: true, Industry: []string{"tech"}},
	)

	assert.Contains(t, prompt, `"remote_ok":true`)
	assert.Contains(t, prompt, `"tech"`)
}

func TestInterviewEvaluationPromptNumbersAnswers(t *testing.T) {
	prompt := InterviewEvaluation([]string{"first answer", "second answer"})
	assert.Contains(t, prompt, "Q1: first answer")
	assert.Contains(t, prompt, "Q2: second answer")
}

func TestInterviewQuestionsPrompt(t *testing.T) {
	prompt := InterviewQuestions("Backend Engineer", 8)
	assert.Contains(t, prompt, "8 interview questions")
	assert.Contains(t, prompt, "Backend Engineer")
}

func TestChatPrompt(t *testing.T) {
	history := []types.Turn{
		{Speaker: types.SpeakerUser, Text: "hi", Timestamp: time.Now()},
		{Speaker: types.SpeakerBot, Text: "hello!", Timestamp: time.Now()},
	}

	prompt := Chat(history, "what should I learn next?")
	assert.Contains(t, prompt, "user: hi")
	assert.Contains(t, prompt, "bot: hello!")
	assert.Contains(t, prompt, "what should I learn next?")

	empty := Chat(nil, "hello")
	assert.Contains(t, empty, "(no previous conversation)")
}

func TestSystemPromptsExistForAllTasks(t *testing.T) {
	for _, task := range []types.AnalysisType{
		types.AnalysisCareerPath,
		types.AnalysisResumeReview,
		types.AnalysisJobMatching,
		types.AnalysisInterviewQuestions,
		types.AnalysisInterviewEvaluation,
		types.AnalysisSkillGap,
		types.AnalysisChat,
	} {
		require.NotEmpty(t, System(task), "missing system prompt for %s", task)
	}
	assert.Empty(t, System(types.AnalysisType("bogus")))
}

func TestPromptIsPureStringConstruction(t *testing.T) {
	profile := types.UserProfile{Skills: []string{"Python"}}
	assert.Equal(t, CareerAnalysis(profile), CareerAnalysis(profile))
}
