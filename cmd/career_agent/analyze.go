package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/observability"
	"github.com/jonathan/career-coach/internal/types"
)

var (
	analyzeSkills     string
	analyzeInterests  string
	analyzeExperience string
	analyzeGoals      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Recommend career directions for a skill profile",
	Long:  `Analyzes a set of skills, interests, and experience and recommends career directions with match percentages, skill gaps, and growth paths.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeSkills, "skills", "s", "", "Comma-separated list of skills (required)")
	analyzeCmd.Flags().StringVarP(&analyzeInterests, "interests", "i", "", "Comma-separated list of interests")
	analyzeCmd.Flags().StringVarP(&analyzeExperience, "experience", "e", "", "Comma-separated list of experience entries")
	analyzeCmd.Flags().StringVarP(&analyzeGoals, "goals", "g", "", "Career goals")
	_ = analyzeCmd.MarkFlagRequired("skills")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.close(ctx)

	profile := types.UserProfile{
		Skills:      splitList(analyzeSkills),
		Interests:   splitList(analyzeInterests),
		Experience:  splitList(analyzeExperience),
		CareerGoals: analyzeGoals,
	}

	result, err := app.agent.AnalyzeCareerPath(ctx, profile)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintRecommendations(result.Recommendations, string(result.Source))
	return nil
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
