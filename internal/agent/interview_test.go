package agent

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/gateway"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/parsing"
	"github.com/jonathan/career-coach/internal/store"
	"github.com/jonathan/career-coach/internal/types"
	"github.com/jonathan/career-coach/internal/validation"
)

const answer = "I walked through the problem out loud and tested each assumption."

func TestInterviewFullFlow(t *testing.T) {
	a := newTestAgent(t, nil)
	ctx := context.Background()

	start, err := a.StartInterview(ctx, "user-1", "Backend Engineer")
	require.NoError(t, err)
	assert.NotEmpty(t, start.SessionID)
	assert.Equal(t, "Backend Engineer", start.Role)
	assert.Equal(t, 5, start.TotalQuestions)
	assert.Equal(t, "Tell me about yourself and your background", start.FirstQuestion)

	for i := 0; i < start.TotalQuestions-1; i++ {
		adv, err := a.AdvanceInterview(ctx, "user-1", answer)
		require.NoError(t, err)
		assert.False(t, adv.Completed)
		assert.NotEmpty(t, adv.NextQuestion)
		assert.Equal(t, i+2, adv.QuestionNumber)
	}

	adv, err := a.AdvanceInterview(ctx, "user-1", answer)
	require.NoError(t, err)
	assert.True(t, adv.Completed)
	assert.Empty(t, adv.NextQuestion)

	// Answering past the last question is a state error.
	_, err = a.AdvanceInterview(ctx, "user-1", answer)
	var serr *SessionStateError
	require.ErrorAs(t, err, &serr)

	end, err := a.EndInterview(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, start.SessionID, end.SessionID)
	assert.Equal(t, start.TotalQuestions, end.QuestionsAnswered)
	assert.NotZero(t, end.Feedback.OverallPerformance)

	// The session is gone.
	assert.Nil(t, a.CurrentInterview("user-1"))
	_, err = a.EndInterview(ctx, "user-1")
	require.ErrorAs(t, err, &serr)
}

func TestAdvanceWithoutSession(t *testing.T) {
	a := newTestAgent(t, nil)

	_, err := a.AdvanceInterview(context.Background(), "nobody", answer)

	var serr *SessionStateError
	require.ErrorAs(t, err, &serr)
}

func TestAdvanceRejectsEmptyAnswer(t *testing.T) {
	a := newTestAgent(t, nil)
	ctx := context.Background()

	_, err := a.StartInterview(ctx, "user-1", "SRE Lead")
	require.NoError(t, err)

	_, err = a.AdvanceInterview(ctx, "user-1", "   ")
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
}

func TestEndInterviewWithNoAnswers(t *testing.T) {
	a := newTestAgent(t, nil)
	ctx := context.Background()

	_, err := a.StartInterview(ctx, "user-1", "Product Manager")
	require.NoError(t, err)

	_, err = a.EndInterview(ctx, "user-1")
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)

	// The session survives a rejected end call.
	assert.NotNil(t, a.CurrentInterview("user-1"))
}

func TestEndInterviewEarlyWithSomeAnswers(t *testing.T) {
	a := newTestAgent(t, nil)
	ctx := context.Background()

	_, err := a.StartInterview(ctx, "user-1", "Data Engineer")
	require.NoError(t, err)
	_, err = a.AdvanceInterview(ctx, "user-1", answer)
	require.NoError(t, err)

	end, err := a.EndInterview(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, end.QuestionsAnswered)
}

func TestStartInterviewReplacesExistingSession(t *testing.T) {
	a := newTestAgent(t, nil)
	ctx := context.Background()

	first, err := a.StartInterview(ctx, "user-1", "Backend Engineer")
	require.NoError(t, err)
	_, err = a.AdvanceInterview(ctx, "user-1", answer)
	require.NoError(t, err)

	second, err := a.StartInterview(ctx, "user-1", "Frontend Engineer")
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)

	current := a.CurrentInterview("user-1")
	require.NotNil(t, current)
	assert.Equal(t, "Frontend Engineer", current.Role)
	assert.Empty(t, current.Answers)
}

func TestStartInterviewRejectsEmptyRole(t *testing.T) {
	a := newTestAgent(t, nil)

	_, err := a.StartInterview(context.Background(), "user-1", "")

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
}

func TestStartInterviewCapsQuestionCount(t *testing.T) {
	client := &scriptedClient{response: `["q1","q2","q3","q4","q5","q6","q7","q8","q9","q10","q11","q12"]`}
	gw := gateway.New(client, time.Second, nil)
	a, err := New(context.Background(), gw, store.NewMemoryStore(), 3, nil)
	require.NoError(t, err)

	start, err := a.StartInterview(context.Background(), "user-1", "Engineering Manager")
	require.NoError(t, err)
	assert.Equal(t, 3, start.TotalQuestions)
}

func TestSessionsPersistAcrossAgents(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	gw := gateway.New(nil, time.Second, nil)
	a, err := New(ctx, gw, st, 0, nil)
	require.NoError(t, err)

	start, err := a.StartInterview(ctx, "user-1", "Backend Engineer")
	require.NoError(t, err)
	_, err = a.AdvanceInterview(ctx, "user-1", answer)
	require.NoError(t, err)

	// A fresh agent over the same store restores the session.
	restored, err := New(ctx, gateway.New(nil, time.Second, nil), st, 0, nil)
	require.NoError(t, err)

	current := restored.CurrentInterview("user-1")
	require.NotNil(t, current)
	assert.Equal(t, start.SessionID, current.SessionID)
	require.Len(t, current.Answers, 1)

	adv, err := restored.AdvanceInterview(ctx, "user-1", answer)
	require.NoError(t, err)
	assert.Equal(t, 3, adv.QuestionNumber)
}

func TestInterviewSessionFields(t *testing.T) {
	a := newTestAgent(t, nil)
	ctx := context.Background()

	before := time.Now()
	_, err := a.StartInterview(ctx, "user-1", "SRE Lead")
	require.NoError(t, err)

	current := a.CurrentInterview("user-1")
	require.NotNil(t, current)
	assert.Equal(t, types.InterviewInProgress, current.State)
	assert.False(t, current.StartTime.Before(before))
	assert.Equal(t, 0, current.CurrentQuestionIndex)
	assert.Equal(t, parsing.FallbackInterviewQuestions(), current.Questions)
}

// gatedEvalClient answers question generation immediately but blocks the
// evaluation call until released, so tests can overlap other operations
// with a slow evaluation.
type gatedEvalClient struct {
	questions   string
	feedback    string
	evalStarted chan struct{}
	release     chan struct{}
}

func (c *gatedEvalClient) Generate(_ context.Context, req llm.GenerateRequest) (string, error) {
	if strings.Contains(req.Prompt, answer) {
		close(c.evalStarted)
		<-c.release
		return c.feedback, nil
	}
	return c.questions, nil
}

func (c *gatedEvalClient) Available(context.Context) bool { return true }
func (c *gatedEvalClient) Name() string                   { return "gated" }
func (c *gatedEvalClient) Close() error                   { return nil }

func TestEndInterviewKeepsReplacementSession(t *testing.T) {
	client := &gatedEvalClient{
		questions:   `["Q1", "Q2"]`,
		feedback:    `{"overall_performance": 90}`,
		evalStarted: make(chan struct{}),
		release:     make(chan struct{}),
	}
	a := newTestAgent(t, client)
	ctx := context.Background()

	_, err := a.StartInterview(ctx, "user-1", "Backend Engineer")
	require.NoError(t, err)
	_, err = a.AdvanceInterview(ctx, "user-1", answer)
	require.NoError(t, err)

	var endResult *InterviewEndResult
	var endErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		endResult, endErr = a.EndInterview(ctx, "user-1")
	}()

	// Start a fresh interview while the evaluation is still in flight.
	<-client.evalStarted
	replacement, err := a.StartInterview(ctx, "user-1", "Data Engineer")
	require.NoError(t, err)

	close(client.release)
	<-done
	require.NoError(t, endErr)
	assert.Equal(t, 1, endResult.QuestionsAnswered)

	current := a.CurrentInterview("user-1")
	require.NotNil(t, current, "the freshly started session should survive the overlapping end")
	assert.Equal(t, replacement.SessionID, current.SessionID)
}
