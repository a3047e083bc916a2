package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestSession(questions ...string) *InterviewSession {
	return &InterviewSession{
		SessionID: "interview_test",
		Role:      "Software Engineer",
		Questions: questions,
		State:     InterviewInProgress,
		StartTime: time.Now(),
	}
}

func TestInterviewSessionRecordAnswer(t *testing.T) {
	s := newTestSession("Q1", "Q2", "Q3")

	assert.Equal(t, "Q1", s.CurrentQuestion())

	s.RecordAnswer("answer one")
	assert.Equal(t, InterviewInProgress, s.State)
	assert.Equal(t, 1, s.CurrentQuestionIndex)
	assert.Equal(t, "Q2", s.CurrentQuestion())

	s.RecordAnswer("answer two")
	assert.Equal(t, "Q3", s.CurrentQuestion())

	// Answering the last question moves the session to awaiting_end and no
	// further question is exposed.
	s.RecordAnswer("answer three")
	assert.Equal(t, InterviewAwaitingEnd, s.State)
	assert.Equal(t, "", s.CurrentQuestion())
	assert.Len(t, s.Answers, 3)
}

func TestInterviewSessionSingleQuestion(t *testing.T) {
	s := newTestSession("Only question")
	s.RecordAnswer("only answer")
	assert.Equal(t, InterviewAwaitingEnd, s.State)
	assert.Equal(t, "", s.CurrentQuestion())
}
