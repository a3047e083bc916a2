package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/agent"
	"github.com/jonathan/career-coach/internal/conversation"
	"github.com/jonathan/career-coach/internal/gateway"
	"github.com/jonathan/career-coach/internal/store"
)

// newTestServer builds a server over a demo-mode agent and an in-memory
// store.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	ctx := context.Background()
	st := store.NewMemoryStore()

	a, err := agent.New(ctx, gateway.New(nil, time.Second, nil), st, 0, nil)
	require.NoError(t, err)
	conv, err := conversation.NewHandler(ctx, a, st, nil)
	require.NoError(t, err)

	s := New(Config{Addr: ":0"}, a, conv, nil)
	t.Cleanup(func() {
		_ = s.Shutdown(context.Background())
	})
	return s
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "demo", body["provider"])
	assert.Equal(t, true, body["model_available"])
}

func TestChat(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/chat", ChatRequest{
		UserID:  "user-1",
		Message: "hello",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, conversation.GreetingResponse, body["reply"])
	assert.Equal(t, "greeting", body["intent"])
}

func TestChatRequiresUserID(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/chat", ChatRequest{Message: "hello"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "user_id is required")
}

func TestMalformedBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCareerAnalyze(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/career/analyze", map[string]any{
		"profile": map[string]any{"skills": []string{"Python", "SQL"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, string(gateway.SourceDemo), body["source"])
	assert.NotEmpty(t, body["recommendations"])
}

func TestCareerAnalyzeRejectsEmptySkills(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/career/analyze", map[string]any{
		"profile": map[string]any{"skills": []string{}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResumeReview(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/resume/review", ResumeReviewRequest{
		ResumeText: strings.Repeat("Led a team shipping production services. ", 5),
		TargetRole: "Software Engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, string(gateway.SourceDemo), body["source"])
	assert.Contains(t, body, "analysis")
}

func TestResumeReviewRejectsShortResume(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/resume/review", ResumeReviewRequest{
		ResumeText: "too short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSkillGap(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/skills/gap", SkillGapRequest{
		Skills:     []string{"Python", "SQL"},
		TargetRole: "Data Scientist",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Data Scientist", body["target_role"])
}

func TestJobsMatch(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/jobs/match", map[string]any{
		"profile":     map[string]any{"skills": []string{"Go"}},
		"preferences": map[string]any{"location": []string{"Remote"}, "remote_ok": true},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["matches"])
}

func TestInterviewFlow(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/interview/start", InterviewStartRequest{
		UserID: "user-1",
		Role:   "Backend Engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	start := decodeBody(t, rec)
	assert.NotEmpty(t, start["session_id"])
	assert.NotEmpty(t, start["first_question"])

	rec = doJSON(t, s, http.MethodGet, "/interview/user-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/interview/answer", InterviewAnswerRequest{
		UserID: "user-1",
		Answer: "I would start by clarifying the requirements with the team.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/interview/end", InterviewEndRequest{UserID: "user-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	end := decodeBody(t, rec)
	assert.Equal(t, float64(1), end["questions_answered"])
	assert.Contains(t, end, "feedback")
}

func TestInterviewAnswerWithoutSession(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/interview/answer", InterviewAnswerRequest{
		UserID: "user-1",
		Answer: "An answer given before any interview was started here.",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInterviewStatusWithoutSession(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/interview/user-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
