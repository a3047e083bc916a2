package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

const coachingFile = "coaching.json"
const systemFile = "system.json"

var systemKeys = map[types.AnalysisType]string{
	types.AnalysisCareerPath:          "career-analysis",
	types.AnalysisResumeReview:        "resume-review",
	types.AnalysisJobMatching:         "job-matching",
	types.AnalysisInterviewQuestions:  "interview-questions",
	types.AnalysisInterviewEvaluation: "interview-evaluation",
	types.AnalysisSkillGap:            "skill-gap",
	types.AnalysisChat:                "chat",
}

// System returns the system instruction for a task, or "" for unknown tasks.
func System(task types.AnalysisType) string {
	key, ok := systemKeys[task]
	if !ok {
		return ""
	}
	return MustGet(systemFile, key)
}

// CareerAnalysis builds the career-path analysis prompt. Empty profile fields
// render as "Not specified" so the model always receives a complete template.
func CareerAnalysis(profile types.UserProfile) string {
	template := MustGet(coachingFile, "career-analysis")
	return Format(template, map[string]string{
		"Skills":      JoinOrNotSpecified(profile.Skills),
		"Experience":  JoinOrNotSpecified(profile.Experience),
		"Interests":   JoinOrNotSpecified(profile.Interests),
		"Education":   JoinOrNotSpecified(profile.Education),
		"CareerGoals": OrNotSpecified(profile.CareerGoals),
	})
}

// ResumeReview builds the resume review prompt. A non-empty target role adds
// role-focused context to the instruction.
func ResumeReview(resumeText, targetRole string) string {
	roleContext := ""
	if strings.TrimSpace(targetRole) != "" {
		roleContext = fmt.Sprintf(" for a %s position", targetRole)
	}
	template := MustGet(coachingFile, "resume-review")
	return Format(template, map[string]string{
		"RoleContext": roleContext,
		"ResumeText":  resumeText,
	})
}

// JobMatching builds the job matching prompt. Preferences are rendered as
// JSON so the model sees the full structured preference set.
func JobMatching(profile types.UserProfile, prefs types.JobPreferences) string {
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		prefsJSON = []byte("{}")
	}
	template := MustGet(coachingFile, "job-matching")
	return Format(template, map[string]string{
		"Skills":      JoinOrNotSpecified(profile.Skills),
		"Experience":  JoinOrNotSpecified(profile.Experience),
		"Preferences": string(prefsJSON),
	})
}

// InterviewQuestions builds the question-generation prompt for a role.
func InterviewQuestions(role string, count int) string {
	template := MustGet(coachingFile, "interview-questions")
	return Format(template, map[string]string{
		"QuestionCount": fmt.Sprintf("%d", count),
		"Role":          role,
	})
}

// InterviewEvaluation builds the evaluation prompt from recorded answers,
// numbering each as "Q<n>: <answer>".
func InterviewEvaluation(answers []string) string {
	var sb strings.Builder
	for i, answer := range answers {
		fmt.Fprintf(&sb, "Q%d: %s\n", i+1, answer)
	}
	template := MustGet(coachingFile, "interview-evaluation")
	return Format(template, map[string]string{
		"Answers": strings.TrimSuffix(sb.String(), "\n"),
	})
}

// SkillGap builds the skill-gap analysis prompt.
func SkillGap(currentSkills []string, targetRole string) string {
	template := MustGet(coachingFile, "skill-gap")
	return Format(template, map[string]string{
		"Skills":     JoinOrNotSpecified(currentSkills),
		"TargetRole": targetRole,
	})
}

// Chat builds the free-form conversation prompt from recent history.
func Chat(history []types.Turn, userMessage string) string {
	var sb strings.Builder
	for _, turn := range history {
		fmt.Fprintf(&sb, "%s: %s\n", turn.Speaker, turn.Text)
	}
	historyText := strings.TrimSuffix(sb.String(), "\n")
	if historyText == "" {
		historyText = "(no previous conversation)"
	}
	template := MustGet(coachingFile, "chat")
	return Format(template, map[string]string{
		"ConversationHistory": historyText,
		"UserMessage":         userMessage,
	})
}
