package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/observability"
	"github.com/jonathan/career-coach/internal/validation"
)

var (
	gapSkills string
	gapRole   string
)

var skillGapCmd = &cobra.Command{
	Use:   "skillgap [\"<current skills> | <target role>\"]",
	Short: "Identify the skill gap to a target role",
	Long:  `Compares current skills against a target role and produces a learning path. Takes either --skills and --role flags or a single positional argument in the form "Python, SQL | Data Scientist".`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSkillGap,
}

func init() {
	skillGapCmd.Flags().StringVarP(&gapSkills, "skills", "s", "", "Comma-separated list of current skills")
	skillGapCmd.Flags().StringVarP(&gapRole, "role", "r", "", "Target role")
	rootCmd.AddCommand(skillGapCmd)
}

func runSkillGap(cmd *cobra.Command, args []string) error {
	skills := splitList(gapSkills)
	role := gapRole
	if len(args) == 1 {
		var err error
		skills, role, err = validation.ParseSkillGapInput(args[0])
		if err != nil {
			return err
		}
	}

	ctx := context.Background()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.close(ctx)

	result, err := app.agent.AnalyzeSkillGap(ctx, skills, role)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintSkillGap(result.TargetRole, result.Analysis, string(result.Source))
	return nil
}
