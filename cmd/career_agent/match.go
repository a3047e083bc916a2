package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/observability"
	"github.com/jonathan/career-coach/internal/types"
	"github.com/jonathan/career-coach/internal/validation"
)

var (
	matchSkills   string
	matchPrefs    string
	matchLocation string
	matchIndustry string
	matchSalary   string
	matchRemote   bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match jobs to a skill profile and preferences",
	Long:  `Finds job opportunities for a skill set. Preferences can be given as one free-text list, for example --prefs "Remote, 100k-140k, finance, New York", or through the individual flags.`,
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchSkills, "skills", "s", "", "Comma-separated list of skills (required)")
	matchCmd.Flags().StringVarP(&matchPrefs, "prefs", "p", "", "Free-text preference list, parsed into salary/remote/industry/location")
	matchCmd.Flags().StringVarP(&matchLocation, "location", "l", "", "Comma-separated preferred locations")
	matchCmd.Flags().StringVarP(&matchIndustry, "industry", "i", "", "Comma-separated preferred industries")
	matchCmd.Flags().StringVar(&matchSalary, "salary", "", "Desired salary range, for example 90k-130k")
	matchCmd.Flags().BoolVar(&matchRemote, "remote", false, "Include remote positions")
	_ = matchCmd.MarkFlagRequired("skills")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.close(ctx)

	profile := types.UserProfile{Skills: splitList(matchSkills)}
	prefs := validation.ParseJobPreferences(matchPrefs)
	prefs.Location = append(prefs.Location, splitList(matchLocation)...)
	prefs.Industry = append(prefs.Industry, splitList(matchIndustry)...)
	if matchSalary != "" {
		prefs.SalaryRange = matchSalary
	}
	if matchRemote {
		prefs.RemoteOK = true
	}

	result, err := app.agent.MatchJobs(ctx, profile, prefs)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintJobMatches(result.Matches, string(result.Source))
	return nil
}
