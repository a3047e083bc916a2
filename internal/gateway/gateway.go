// Package gateway routes generation requests to the configured model backend
// and degrades to canned responses when the backend is unavailable. Callers
// never see a backend error; degradation is reported through Result.Source.
package gateway

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/types"
)

// Source records where a response came from.
type Source string

const (
	// SourceModel marks text produced by a live model backend.
	SourceModel Source = "model"
	// SourceDemo marks a canned response served without a backend call.
	SourceDemo Source = "demo"
	// SourceFallback marks results rebuilt by rule-based fallbacks after an
	// unparseable model response. Set by callers, never by the gateway.
	SourceFallback Source = "fallback"
)

// DefaultTimeout bounds a single backend call.
const DefaultTimeout = 120 * time.Second

// Result is a raw text response plus its provenance.
type Result struct {
	Text   string
	Source Source
}

// Gateway wraps one model client. A nil client means demo mode.
type Gateway struct {
	client  llm.Client
	timeout time.Duration
	logger  *zap.Logger
}

// New creates a gateway over client. client may be nil for demo mode.
func New(client llm.Client, timeout time.Duration, logger *zap.Logger) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{client: client, timeout: timeout, logger: logger}
}

// Complete runs one generation for task. It never returns an error: when no
// backend is configured, or the call fails or times out, the task's demo
// response is returned instead and Source reports the degradation.
func (g *Gateway) Complete(ctx context.Context, task types.AnalysisType, req llm.GenerateRequest) Result {
	if g.client == nil {
		g.logger.Debug("no model backend configured, serving demo response",
			zap.String("task", string(task)))
		return Result{Text: DemoResponse(task), Source: SourceDemo}
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.client.Generate(callCtx, req)
	if err != nil {
		g.logger.Warn("model call failed, serving demo response",
			zap.String("task", string(task)),
			zap.String("provider", g.client.Name()),
			zap.Error(err))
		return Result{Text: DemoResponse(task), Source: SourceDemo}
	}

	return Result{Text: text, Source: SourceModel}
}

// Available reports whether the backend is reachable. Demo mode is always
// available.
func (g *Gateway) Available(ctx context.Context) bool {
	if g.client == nil {
		return true
	}
	return g.client.Available(ctx)
}

// Provider names the active backend for diagnostics.
func (g *Gateway) Provider() string {
	if g.client == nil {
		return string(llm.ProviderDemo)
	}
	return g.client.Name()
}

// Close releases the underlying client.
func (g *Gateway) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
