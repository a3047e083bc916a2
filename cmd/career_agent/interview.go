package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/observability"
)

var (
	interviewRole string
	interviewUser string
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run an interactive mock interview",
	Long:  `Starts a mock interview for a target role and asks questions one at a time. Type "end" to stop early and get feedback on the answers given so far.`,
	RunE:  runInterview,
}

func init() {
	interviewCmd.Flags().StringVarP(&interviewRole, "role", "r", "", "Role to interview for (required)")
	interviewCmd.Flags().StringVarP(&interviewUser, "user", "u", "local", "User ID owning the session")
	_ = interviewCmd.MarkFlagRequired("role")
	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.close(ctx)

	start, err := app.agent.StartInterview(ctx, interviewUser, interviewRole)
	if err != nil {
		return err
	}

	fmt.Printf("Mock interview for %s, %d questions. Type \"end\" to finish early.\n\n", start.Role, start.TotalQuestions)
	fmt.Printf("Question 1/%d: %s\n", start.TotalQuestions, start.FirstQuestion)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)

	for scanner.Scan() {
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			continue
		}
		if strings.EqualFold(answer, "end") || strings.EqualFold(answer, "quit") {
			break
		}

		advance, err := app.agent.AdvanceInterview(ctx, interviewUser, answer)
		if err != nil {
			fmt.Printf("%v\n", err)
			continue
		}
		if advance.Completed {
			fmt.Println("\nAll questions answered.")
			break
		}
		fmt.Printf("\nQuestion %d/%d: %s\n", advance.QuestionNumber, advance.TotalQuestions, advance.NextQuestion)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}

	result, err := app.agent.EndInterview(ctx, interviewUser)
	if err != nil {
		return err
	}

	fmt.Println()
	observability.NewPrinter(os.Stdout).PrintInterviewFeedback(result.Feedback, result.QuestionsAnswered, string(result.Source))
	return nil
}
