package types

import "time"

// InterviewState tracks the lifecycle of a mock interview session.
type InterviewState string

const (
	// InterviewInProgress means questions remain to be answered.
	InterviewInProgress InterviewState = "in_progress"
	// InterviewAwaitingEnd means all questions are answered and the session
	// is waiting for an end call to produce feedback.
	InterviewAwaitingEnd InterviewState = "awaiting_end"
)

// InterviewSession is the mutable record tracking an in-progress mock
// interview for one user. A user has at most one session at a time; starting
// a new interview overwrites any unfinished one.
type InterviewSession struct {
	SessionID            string         `json:"session_id"`
	Role                 string         `json:"role"`
	Questions            []string       `json:"questions"`
	CurrentQuestionIndex int            `json:"current_question_index"`
	Answers              []string       `json:"answers"`
	State                InterviewState `json:"state"`
	StartTime            time.Time      `json:"start_time"`
}

// CurrentQuestion returns the question awaiting an answer, or "" when the
// session has moved past its last question.
func (s *InterviewSession) CurrentQuestion() string {
	if s.State != InterviewInProgress {
		return ""
	}
	if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.Questions) {
		return ""
	}
	return s.Questions[s.CurrentQuestionIndex]
}

// RecordAnswer appends an answer and advances the question index. When the
// last question has been answered the session transitions to awaiting_end.
func (s *InterviewSession) RecordAnswer(answer string) {
	s.Answers = append(s.Answers, answer)
	s.CurrentQuestionIndex++
	if s.CurrentQuestionIndex >= len(s.Questions) {
		s.State = InterviewAwaitingEnd
	}
}
