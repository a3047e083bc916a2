package parsing

import (
	"fmt"
	"sort"

	"github.com/jonathan/career-coach/internal/knowledge"
	"github.com/jonathan/career-coach/internal/types"
)

// FallbackRecommendations builds recommendations from the static industry
// table when the model response is unusable. Each industry with at least one
// matching skill contributes one recommendation scored by the fraction of the
// industry's skills the user already has. Top 3 by match, ties keeping table
// order.
func FallbackRecommendations(profile types.UserProfile) []types.CareerRecommendation {
	var recs []types.CareerRecommendation

	for _, ind := range knowledge.Industries {
		matches := ind.MatchingSkills(profile.Skills)
		if len(matches) == 0 {
			continue
		}

		role := ind.Roles[0]
		recs = append(recs, types.CareerRecommendation{
			JobTitle:        role,
			MatchPercentage: float64(len(matches)) / float64(len(ind.Skills)) * 100,
			RequiredSkills:  ind.Skills,
			SkillGaps:       ind.MissingSkills(profile.Skills),
			SalaryRange:     ind.Salaries.Mid,
			CareerPath:      []string{"Junior " + role, role, "Senior " + role},
			Reasoning:       fmt.Sprintf("Good match based on %d matching skills in %s", len(matches), ind.Name),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchPercentage > recs[j].MatchPercentage
	})

	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

// FallbackResumeAnalysis returns a generic mid-score review.
func FallbackResumeAnalysis() types.ResumeAnalysis {
	return types.ResumeAnalysis{
		OverallScore:           75,
		Strengths:              []string{"Clear structure", "Relevant experience"},
		Weaknesses:             []string{"Could use more metrics", "Missing key skills"},
		ImprovementSuggestions: []string{"Add quantifiable achievements", "Update skills section"},
		KeywordOptimization:    []string{"Add industry keywords", "Include technical skills"},
		FormattingFeedback:     []string{"Use consistent formatting", "Improve readability"},
	}
}

// FallbackInterviewQuestions returns a generic question set usable for any
// role.
func FallbackInterviewQuestions() []string {
	return []string{
		"Tell me about yourself and your background",
		"What interests you about this role?",
		"Describe a challenging project you worked on",
		"How do you handle debugging complex issues?",
		"Where do you see yourself in 5 years?",
	}
}

// FallbackInterviewFeedback returns neutral mid-range scores.
func FallbackInterviewFeedback() types.InterviewFeedback {
	return types.InterviewFeedback{
		OverallPerformance:      75,
		CommunicationSkills:     80,
		TechnicalKnowledge:      70,
		ProblemSolving:          75,
		AreasForImprovement:     []string{"Technical depth", "Specific examples"},
		SuggestedPracticeTopics: []string{"System design", "Behavioral questions"},
	}
}

// FallbackSkillGapAnalysis returns an empty analysis with a generic timeline.
func FallbackSkillGapAnalysis() types.SkillGapAnalysis {
	return types.SkillGapAnalysis{
		RelevantSkills: []string{},
		MissingSkills:  []string{},
		LearningPath:   []string{},
		Timeline:       "3-6 months",
		Resources:      []string{},
	}
}
