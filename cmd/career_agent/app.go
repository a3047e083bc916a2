package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/agent"
	"github.com/jonathan/career-coach/internal/config"
	"github.com/jonathan/career-coach/internal/conversation"
	"github.com/jonathan/career-coach/internal/gateway"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/logging"
	"github.com/jonathan/career-coach/internal/store"
)

// app bundles the wired components behind every subcommand.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	store  store.Store
	agent  *agent.Agent
	conv   *conversation.Handler
}

// loadConfig resolves configuration with precedence defaults < file < env.
func loadConfig() (config.Config, error) {
	base := config.Defaults()
	if configPath != "" {
		fileCfg, err := config.LoadFile(configPath)
		if err != nil {
			return config.Config{}, err
		}
		base = fileCfg.Merge(base)
	}

	cfg := config.EnvOverlay(base)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newApp wires the store, model gateway, agent, and conversation handler.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, "production")
	if err != nil {
		return nil, err
	}

	var st store.Store
	if cfg.DatabaseURL != "" {
		st, err = store.NewPostgresStore(ctx, cfg.DatabaseURL)
	} else {
		st, err = store.NewFileStore(cfg.DataDir, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	client, err := llm.NewClient(ctx, cfg.LLMConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	gw := gateway.New(client, cfg.RequestTimeout(), logger)

	a, err := agent.New(ctx, gw, st, cfg.MaxInterviewQuestions, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize agent: %w", err)
	}

	conv, err := conversation.NewHandler(ctx, a, st, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize conversation handler: %w", err)
	}

	logger.Info("model backend",
		zap.String("provider", a.Provider()),
		zap.Bool("available", a.Healthy(ctx)))

	return &app{cfg: cfg, logger: logger, store: st, agent: a, conv: conv}, nil
}

// close flushes state and releases every component.
func (a *app) close(ctx context.Context) {
	if err := a.conv.SaveAll(ctx); err != nil {
		a.logger.Warn("failed to save conversation contexts", zap.Error(err))
	}
	if err := a.agent.Close(ctx); err != nil {
		a.logger.Warn("failed to close agent", zap.Error(err))
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close store", zap.Error(err))
	}
	_ = a.logger.Sync()
}
