package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/observability"
)

var (
	reviewFile string
	reviewRole string
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review a resume",
	Long:  `Scores a resume and lists strengths, weaknesses, and improvement suggestions, optionally against a target role. Reads the resume from --file or from stdin.`,
	RunE:  runReview,
}

func init() {
	reviewCmd.Flags().StringVarP(&reviewFile, "file", "f", "", "Path to resume text file (defaults to stdin)")
	reviewCmd.Flags().StringVarP(&reviewRole, "role", "r", "", "Target role to review against")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, _ []string) error {
	var text []byte
	var err error
	if reviewFile != "" {
		text, err = os.ReadFile(reviewFile)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
	} else {
		text, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read resume from stdin: %w", err)
		}
	}

	ctx := context.Background()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.close(ctx)

	result, err := app.agent.ReviewResume(ctx, string(text), reviewRole)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintResumeAnalysis(result.Analysis, result.Warnings, string(result.Source))
	return nil
}
