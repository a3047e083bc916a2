// Package parsing turns raw model text into typed results. Every interpreter
// degrades to a rule-based fallback instead of returning an error: a bad
// model response must never break the user-facing flow.
package parsing

import (
	"encoding/json"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/schemas"
	"github.com/jonathan/career-coach/internal/types"
)

// decode strips markdown fences, schema-checks the document for the task,
// and unmarshals into out. Returns a *ParseError on any failure.
func decode(task types.AnalysisType, text string, out any) error {
	cleaned := llm.CleanJSONBlock(text)

	if err := schemas.Validate(task, cleaned); err != nil {
		return &ParseError{Message: "response failed schema check", Cause: err}
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &ParseError{Message: "response is not valid JSON", Cause: err}
	}
	return nil
}

// CareerRecommendations parses a model response into recommendations.
// On failure it builds rule-based recommendations from the industry table
// and the user's skills; degraded reports which path was taken.
func CareerRecommendations(text string, profile types.UserProfile) (recs []types.CareerRecommendation, degraded bool) {
	var parsed []types.CareerRecommendation
	if err := decode(types.AnalysisCareerPath, text, &parsed); err != nil {
		return FallbackRecommendations(profile), true
	}
	return parsed, false
}

// ResumeAnalysis parses a resume review response, with a fixed placeholder
// analysis as fallback.
func ResumeAnalysis(text string) (analysis types.ResumeAnalysis, degraded bool) {
	var parsed types.ResumeAnalysis
	if err := decode(types.AnalysisResumeReview, text, &parsed); err != nil {
		return FallbackResumeAnalysis(), true
	}
	return parsed, false
}

// JobMatches parses a job matching response. Fallback is an empty list;
// there is no rule-based source of job openings.
func JobMatches(text string) (matches []types.JobMatch, degraded bool) {
	var parsed []types.JobMatch
	if err := decode(types.AnalysisJobMatching, text, &parsed); err != nil {
		return []types.JobMatch{}, true
	}
	return parsed, false
}

// InterviewQuestions parses a generated question list, with a fixed list as
// fallback so an interview can always start.
func InterviewQuestions(text string) (questions []string, degraded bool) {
	var parsed []string
	if err := decode(types.AnalysisInterviewQuestions, text, &parsed); err != nil || len(parsed) == 0 {
		return FallbackInterviewQuestions(), true
	}
	return parsed, false
}

// InterviewFeedback parses an interview evaluation response, with fixed
// middle-of-the-road scores as fallback.
func InterviewFeedback(text string) (feedback types.InterviewFeedback, degraded bool) {
	var parsed types.InterviewFeedback
	if err := decode(types.AnalysisInterviewEvaluation, text, &parsed); err != nil {
		return FallbackInterviewFeedback(), true
	}
	return parsed, false
}

// SkillGapAnalysis parses a skill gap response, with an empty analysis and a
// generic timeline as fallback.
func SkillGapAnalysis(text string) (analysis types.SkillGapAnalysis, degraded bool) {
	var parsed types.SkillGapAnalysis
	if err := decode(types.AnalysisSkillGap, text, &parsed); err != nil {
		return FallbackSkillGapAnalysis(), true
	}
	return parsed, false
}
