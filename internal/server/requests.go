package server

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-coach/internal/types"
)

// ChatRequest is the request body for /chat.
type ChatRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// CareerAnalyzeRequest is the request body for /career/analyze.
type CareerAnalyzeRequest struct {
	Profile types.UserProfile `json:"profile"`
}

// ResumeReviewRequest is the request body for /resume/review.
type ResumeReviewRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	TargetRole string `json:"target_role,omitempty"`
}

// JobsMatchRequest is the request body for /jobs/match.
type JobsMatchRequest struct {
	Profile     types.UserProfile    `json:"profile"`
	Preferences types.JobPreferences `json:"preferences"`
}

// SkillGapRequest is the request body for /skills/gap.
type SkillGapRequest struct {
	Skills     []string `json:"skills" validate:"required,min=1"`
	TargetRole string   `json:"target_role" validate:"required"`
}

// InterviewStartRequest is the request body for /interview/start.
type InterviewStartRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

// InterviewAnswerRequest is the request body for /interview/answer.
type InterviewAnswerRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Answer string `json:"answer" validate:"required"`
}

// InterviewEndRequest is the request body for /interview/end.
type InterviewEndRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fieldName(fe)))
		case "min":
			parts = append(parts, fmt.Sprintf("%s needs at least %s entries", fieldName(fe), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fieldName(fe)))
		}
	}
	return strings.Join(parts, "; ")
}

func fieldName(fe validator.FieldError) string {
	return fe.Field()
}
