// Package agent orchestrates the coaching operations: it validates input,
// builds prompts, calls the model gateway, and interprets responses into
// typed results. Transports (CLI, HTTP) sit on top of this package.
package agent

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/gateway"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/parsing"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/store"
	"github.com/jonathan/career-coach/internal/types"
	"github.com/jonathan/career-coach/internal/validation"
)

// DefaultMaxQuestions caps how many questions one interview may carry.
const DefaultMaxQuestions = 10

// Agent is the orchestration layer. Interview sessions are held in memory,
// one per user, and flushed to the store after every mutation.
type Agent struct {
	gw           *gateway.Gateway
	store        store.Store
	logger       *zap.Logger
	maxQuestions int

	mu       sync.Mutex
	sessions map[string]*types.InterviewSession
}

// New creates an agent and restores interview sessions from the store.
func New(ctx context.Context, gw *gateway.Gateway, st store.Store, maxQuestions int, logger *zap.Logger) (*Agent, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxQuestions <= 0 {
		maxQuestions = DefaultMaxQuestions
	}

	sessions, err := st.LoadSessions(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("agent initialized",
		zap.String("provider", gw.Provider()),
		zap.Int("restored_sessions", len(sessions)))

	return &Agent{
		gw:           gw,
		store:        st,
		logger:       logger,
		maxQuestions: maxQuestions,
		sessions:     sessions,
	}, nil
}

// CareerPathResult carries career recommendations and their provenance.
type CareerPathResult struct {
	Recommendations []types.CareerRecommendation `json:"recommendations"`
	Source          gateway.Source               `json:"source"`
}

// AnalyzeCareerPath recommends career directions for a profile. The profile
// must carry at least one skill.
func (a *Agent) AnalyzeCareerPath(ctx context.Context, profile types.UserProfile) (*CareerPathResult, error) {
	if err := validation.Skills(profile.Skills).Err(); err != nil {
		return nil, err
	}

	a.logger.Info("analyzing career path", zap.Int("skills", len(profile.Skills)))

	res := a.gw.Complete(ctx, types.AnalysisCareerPath, llm.GenerateRequest{
		Prompt: prompts.CareerAnalysis(profile),
		System: prompts.System(types.AnalysisCareerPath),
	})

	recs, degraded := parsing.CareerRecommendations(res.Text, profile)
	return &CareerPathResult{
		Recommendations: recs,
		Source:          resolveSource(res.Source, degraded),
	}, nil
}

// ResumeReviewResult carries a resume analysis and its provenance.
type ResumeReviewResult struct {
	Analysis types.ResumeAnalysis `json:"analysis"`
	Warnings []string             `json:"warnings,omitempty"`
	Source   gateway.Source       `json:"source"`
}

// ReviewResume scores a resume, optionally against a target role. Validation
// warnings are passed through so callers can surface them alongside the
// review.
func (a *Agent) ReviewResume(ctx context.Context, resumeText, targetRole string) (*ResumeReviewResult, error) {
	check := validation.ResumeText(resumeText)
	if err := check.Err(); err != nil {
		return nil, err
	}
	if targetRole != "" {
		if err := validation.TargetRole(targetRole).Err(); err != nil {
			return nil, err
		}
	}

	a.logger.Info("reviewing resume",
		zap.Int("length", len(resumeText)),
		zap.String("target_role", targetRole))

	res := a.gw.Complete(ctx, types.AnalysisResumeReview, llm.GenerateRequest{
		Prompt: prompts.ResumeReview(resumeText, targetRole),
		System: prompts.System(types.AnalysisResumeReview),
	})

	analysis, degraded := parsing.ResumeAnalysis(res.Text)
	return &ResumeReviewResult{
		Analysis: analysis,
		Warnings: check.Warnings,
		Source:   resolveSource(res.Source, degraded),
	}, nil
}

// JobMatchResult carries matched jobs and their provenance.
type JobMatchResult struct {
	Matches []types.JobMatch `json:"matches"`
	Source  gateway.Source   `json:"source"`
}

// MatchJobs finds job opportunities for a profile and preference set.
func (a *Agent) MatchJobs(ctx context.Context, profile types.UserProfile, prefs types.JobPreferences) (*JobMatchResult, error) {
	if err := validation.Skills(profile.Skills).Err(); err != nil {
		return nil, err
	}
	if err := validation.JobPreferences(prefs).Err(); err != nil {
		return nil, err
	}

	a.logger.Info("matching jobs", zap.Int("skills", len(profile.Skills)))

	res := a.gw.Complete(ctx, types.AnalysisJobMatching, llm.GenerateRequest{
		Prompt: prompts.JobMatching(profile, prefs),
		System: prompts.System(types.AnalysisJobMatching),
	})

	matches, degraded := parsing.JobMatches(res.Text)
	return &JobMatchResult{
		Matches: matches,
		Source:  resolveSource(res.Source, degraded),
	}, nil
}

// SkillGapResult carries a skill gap analysis and its provenance.
type SkillGapResult struct {
	TargetRole string                 `json:"target_role"`
	Analysis   types.SkillGapAnalysis `json:"analysis"`
	Source     gateway.Source         `json:"source"`
}

// AnalyzeSkillGap compares current skills against a target role.
func (a *Agent) AnalyzeSkillGap(ctx context.Context, currentSkills []string, targetRole string) (*SkillGapResult, error) {
	if err := validation.Skills(currentSkills).Err(); err != nil {
		return nil, err
	}
	if err := validation.TargetRole(targetRole).Err(); err != nil {
		return nil, err
	}

	a.logger.Info("analyzing skill gap",
		zap.Int("skills", len(currentSkills)),
		zap.String("target_role", targetRole))

	res := a.gw.Complete(ctx, types.AnalysisSkillGap, llm.GenerateRequest{
		Prompt: prompts.SkillGap(currentSkills, targetRole),
		System: prompts.System(types.AnalysisSkillGap),
	})

	analysis, degraded := parsing.SkillGapAnalysis(res.Text)
	return &SkillGapResult{
		TargetRole: targetRole,
		Analysis:   analysis,
		Source:     resolveSource(res.Source, degraded),
	}, nil
}

// ChatResult carries a free-form reply and its provenance.
type ChatResult struct {
	Reply  string         `json:"reply"`
	Source gateway.Source `json:"source"`
}

// ChatResponse produces a free-form coaching reply given recent history.
func (a *Agent) ChatResponse(ctx context.Context, message string, history []types.Turn) *ChatResult {
	res := a.gw.Complete(ctx, types.AnalysisChat, llm.GenerateRequest{
		Prompt: prompts.Chat(history, message),
		System: prompts.System(types.AnalysisChat),
	})
	return &ChatResult{Reply: res.Text, Source: res.Source}
}

// Healthy reports whether the configured backend is reachable.
func (a *Agent) Healthy(ctx context.Context) bool {
	return a.gw.Available(ctx)
}

// Provider names the active model backend.
func (a *Agent) Provider() string { return a.gw.Provider() }

// Close flushes sessions and releases the gateway.
func (a *Agent) Close(ctx context.Context) error {
	a.mu.Lock()
	err := a.persistSessionsLocked(ctx)
	a.mu.Unlock()

	if cerr := a.gw.Close(); err == nil {
		err = cerr
	}
	return err
}

// resolveSource downgrades the gateway source to fallback when the response
// could not be parsed.
func resolveSource(src gateway.Source, degraded bool) gateway.Source {
	if degraded {
		return gateway.SourceFallback
	}
	return src
}
