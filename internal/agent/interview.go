package agent

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/gateway"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/parsing"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/types"
	"github.com/jonathan/career-coach/internal/validation"
)

// requestedQuestions is how many questions we ask the model for; the actual
// count is capped at the configured maximum.
const requestedQuestions = 8

// InterviewStartResult describes a freshly started interview.
type InterviewStartResult struct {
	SessionID      string         `json:"session_id"`
	Role           string         `json:"role"`
	FirstQuestion  string         `json:"first_question"`
	TotalQuestions int            `json:"total_questions"`
	Source         gateway.Source `json:"source"`
}

// StartInterview begins a mock interview for a user. Any unfinished session
// for the same user is discarded.
func (a *Agent) StartInterview(ctx context.Context, userID, role string) (*InterviewStartResult, error) {
	if err := validation.TargetRole(role).Err(); err != nil {
		return nil, err
	}

	res := a.gw.Complete(ctx, types.AnalysisInterviewQuestions, llm.GenerateRequest{
		Prompt: prompts.InterviewQuestions(role, requestedQuestions),
		System: prompts.System(types.AnalysisInterviewQuestions),
	})

	questions, degraded := parsing.InterviewQuestions(res.Text)
	if len(questions) > a.maxQuestions {
		questions = questions[:a.maxQuestions]
	}

	session := &types.InterviewSession{
		SessionID: uuid.NewString(),
		Role:      role,
		Questions: questions,
		State:     types.InterviewInProgress,
		StartTime: time.Now(),
	}

	a.mu.Lock()
	if old, ok := a.sessions[userID]; ok {
		a.logger.Info("discarding unfinished interview session",
			zap.String("user_id", userID),
			zap.String("session_id", old.SessionID))
	}
	a.sessions[userID] = session
	a.persistSessionsBestEffort(ctx)
	a.mu.Unlock()

	a.logger.Info("interview started",
		zap.String("user_id", userID),
		zap.String("session_id", session.SessionID),
		zap.String("role", role),
		zap.Int("questions", len(questions)))

	return &InterviewStartResult{
		SessionID:      session.SessionID,
		Role:           role,
		FirstQuestion:  questions[0],
		TotalQuestions: len(questions),
		Source:         resolveSource(res.Source, degraded),
	}, nil
}

// InterviewAdvanceResult describes the state after recording one answer.
type InterviewAdvanceResult struct {
	NextQuestion   string `json:"next_question,omitempty"`
	QuestionNumber int    `json:"question_number"`
	TotalQuestions int    `json:"total_questions"`
	Completed      bool   `json:"completed"`
}

// AdvanceInterview records an answer to the current question. When the last
// question has been answered, Completed is set and the session waits for
// EndInterview.
func (a *Agent) AdvanceInterview(ctx context.Context, userID, answer string) (*InterviewAdvanceResult, error) {
	if err := validation.InterviewAnswers([]string{answer}).Err(); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	session, ok := a.sessions[userID]
	if !ok {
		return nil, &SessionStateError{Message: "no active interview session, start one first"}
	}
	if session.State != types.InterviewInProgress {
		return nil, &SessionStateError{Message: "all questions answered, end the interview to get feedback"}
	}

	session.RecordAnswer(answer)
	a.persistSessionsBestEffort(ctx)

	result := &InterviewAdvanceResult{
		TotalQuestions: len(session.Questions),
		Completed:      session.State == types.InterviewAwaitingEnd,
	}
	if result.Completed {
		result.QuestionNumber = len(session.Questions)
	} else {
		result.QuestionNumber = session.CurrentQuestionIndex + 1
		result.NextQuestion = session.CurrentQuestion()
	}
	return result, nil
}

// InterviewEndResult carries the final evaluation of a finished interview.
type InterviewEndResult struct {
	SessionID         string                  `json:"session_id"`
	Role              string                  `json:"role"`
	QuestionsAnswered int                     `json:"questions_answered"`
	Feedback          types.InterviewFeedback `json:"feedback"`
	Source            gateway.Source          `json:"source"`
}

// EndInterview evaluates the answers given so far and deletes the session.
// Ending early, before all questions are answered, is allowed as long as at
// least one answer exists.
func (a *Agent) EndInterview(ctx context.Context, userID string) (*InterviewEndResult, error) {
	a.mu.Lock()
	session, ok := a.sessions[userID]
	var answers []string
	if ok {
		answers = append([]string(nil), session.Answers...)
	}
	a.mu.Unlock()

	if !ok {
		return nil, &SessionStateError{Message: "no active interview session to end"}
	}
	if len(answers) == 0 {
		return nil, &validation.Error{Message: "cannot evaluate an interview with no answers"}
	}

	res := a.gw.Complete(ctx, types.AnalysisInterviewEvaluation, llm.GenerateRequest{
		Prompt: prompts.InterviewEvaluation(answers),
		System: prompts.System(types.AnalysisInterviewEvaluation),
	})
	feedback, degraded := parsing.InterviewFeedback(res.Text)

	a.mu.Lock()
	// The user may have started a fresh interview while the evaluation was
	// in flight; only the evaluated session is removed.
	if current, ok := a.sessions[userID]; ok && current.SessionID == session.SessionID {
		delete(a.sessions, userID)
		a.persistSessionsBestEffort(ctx)
	}
	a.mu.Unlock()

	a.logger.Info("interview ended",
		zap.String("user_id", userID),
		zap.String("session_id", session.SessionID),
		zap.Int("answers", len(answers)))

	return &InterviewEndResult{
		SessionID:         session.SessionID,
		Role:              session.Role,
		QuestionsAnswered: len(answers),
		Feedback:          feedback,
		Source:            resolveSource(res.Source, degraded),
	}, nil
}

// CurrentInterview returns a copy of the user's active session, or nil.
func (a *Agent) CurrentInterview(userID string) *types.InterviewSession {
	a.mu.Lock()
	defer a.mu.Unlock()

	session, ok := a.sessions[userID]
	if !ok {
		return nil
	}
	copied := *session
	return &copied
}

// persistSessionsBestEffort flushes sessions, logging instead of failing;
// an unwritable store must not break the interview flow. Callers hold a.mu.
func (a *Agent) persistSessionsBestEffort(ctx context.Context) {
	if err := a.persistSessionsLocked(ctx); err != nil {
		a.logger.Warn("failed to persist interview sessions", zap.Error(err))
	}
}

func (a *Agent) persistSessionsLocked(ctx context.Context) error {
	snapshot := make(map[string]*types.InterviewSession, len(a.sessions))
	for k, v := range a.sessions {
		snapshot[k] = v
	}
	return a.store.SaveSessions(ctx, snapshot)
}
