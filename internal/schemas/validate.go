// Package schemas validates model response shapes against embedded JSON
// Schemas before they are decoded into result types.
package schemas

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/career-coach/internal/types"
)

//go:embed *.schema.json
var schemaFS embed.FS

var schemaFiles = map[types.AnalysisType]string{
	types.AnalysisCareerPath:          "career_recommendations.schema.json",
	types.AnalysisResumeReview:        "resume_analysis.schema.json",
	types.AnalysisJobMatching:         "job_matches.schema.json",
	types.AnalysisInterviewQuestions:  "interview_questions.schema.json",
	types.AnalysisInterviewEvaluation: "interview_feedback.schema.json",
	types.AnalysisSkillGap:            "skill_gap.schema.json",
}

var (
	compiled     map[types.AnalysisType]*gojsonschema.Schema
	compileOnce  sync.Once
	compileError error
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

func compileAll() {
	compiled = make(map[types.AnalysisType]*gojsonschema.Schema, len(schemaFiles))
	for task, file := range schemaFiles {
		raw, err := schemaFS.ReadFile(file)
		if err != nil {
			compileError = fmt.Errorf("failed to read schema %s: %w", file, err)
			return
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			compileError = fmt.Errorf("failed to compile schema %s: %w", file, err)
			return
		}
		compiled[task] = schema
	}
}

// Validate checks jsonText against the task's schema. Tasks without a schema
// (free-form chat) pass through. Malformed JSON and shape mismatches both
// return a *ValidationError.
func Validate(task types.AnalysisType, jsonText string) error {
	compileOnce.Do(compileAll)
	if compileError != nil {
		return compileError
	}

	schema, ok := compiled[task]
	if !ok {
		return nil
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonText))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{
			Field:   "(root)",
			Message: fmt.Sprintf("invalid JSON document: %v", err),
		}}}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
