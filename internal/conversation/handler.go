// Package conversation drives the free-form chat flow: greeting new users,
// steering recognized task intents toward clarifying questions, and passing
// everything else to the model for a contextual reply. Per-user state is
// serialized so concurrent messages from one user apply in order.
package conversation

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/agent"
	"github.com/jonathan/career-coach/internal/intent"
	"github.com/jonathan/career-coach/internal/store"
	"github.com/jonathan/career-coach/internal/types"
	"github.com/jonathan/career-coach/internal/validation"
)

// TaskIntentThreshold is the classifier confidence above which a message is
// treated as a task request rather than chat.
const TaskIntentThreshold = 0.4

// autosaveEvery flushes contexts after this many recorded turns per user.
const autosaveEvery = 10

// recentTurnsForChat bounds how much history the chat prompt carries.
const recentTurnsForChat = 10

// Handler owns the per-user conversation contexts.
type Handler struct {
	agent      *agent.Agent
	store      store.Store
	classifier intent.Classifier
	logger     *zap.Logger
	now        func() time.Time

	mu       sync.Mutex
	contexts map[string]*types.ConversationContext
	userMu   map[string]*sync.Mutex
}

// NewHandler restores conversation contexts from the store.
func NewHandler(ctx context.Context, a *agent.Agent, st store.Store, logger *zap.Logger) (*Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	contexts, err := st.LoadContexts(ctx)
	if err != nil {
		return nil, err
	}

	return &Handler{
		agent:      a,
		store:      st,
		classifier: intent.NewPatternClassifier(),
		logger:     logger,
		now:        time.Now,
		contexts:   contexts,
		userMu:     map[string]*sync.Mutex{},
	}, nil
}

// Reply carries the bot's answer to one message.
type Reply struct {
	Text   string        `json:"text"`
	Intent intent.Intent `json:"intent"`
}

// HandleMessage processes one user message and returns the reply. Messages
// from the same user are handled strictly in arrival order. Context data is
// only touched under h.mu so snapshots taken for persistence stay coherent
// while other users' messages are in flight.
func (h *Handler) HandleMessage(ctx context.Context, userID, message string) *Reply {
	message = validation.SanitizeInput(message)

	userLock := h.lockUser(userID)
	userLock.Lock()
	defer userLock.Unlock()

	h.mu.Lock()
	cc, ok := h.contexts[userID]
	if !ok {
		cc = types.NewConversationContext()
		h.contexts[userID] = cc
	}

	cc.AppendTurn(types.SpeakerUser, message, h.now())

	// Skills mentioned anywhere accumulate into the user's context.
	skills := intent.ExtractSkills(message)
	if len(skills) > 0 {
		cc.AddSkills(skills)
	}

	state := cc.State
	history := append([]types.Turn(nil), cc.RecentHistory(recentTurnsForChat)...)
	h.mu.Unlock()

	if len(skills) > 0 {
		h.logger.Debug("extracted skills from message",
			zap.String("user_id", userID),
			zap.Strings("skills", skills))
	}

	detected, confidence := h.classifier.Classify(message)

	greetingReply := detected == intent.IntentGreeting && state == types.StateInitial

	var text string
	switch {
	case greetingReply:
		text = GreetingResponse
	case detected.IsTask() && confidence > TaskIntentThreshold:
		text = ClarifyingQuestion(detected)
	default:
		text = h.agent.ChatResponse(ctx, message, history).Reply
	}

	h.mu.Lock()
	if greetingReply {
		cc.State = types.StateEngaged
	}
	cc.AppendTurn(types.SpeakerBot, text, h.now())
	turns := len(cc.History)
	h.mu.Unlock()

	if turns%autosaveEvery == 0 {
		h.autosave(ctx)
	}

	return &Reply{Text: text, Intent: detected}
}

// Context returns a snapshot of the user's conversation context, or nil.
func (h *Handler) Context(userID string) *types.ConversationContext {
	h.mu.Lock()
	defer h.mu.Unlock()

	cc, ok := h.contexts[userID]
	if !ok {
		return nil
	}
	return cc.Clone()
}

// SaveAll flushes every context to the store. The snapshot deep-copies each
// context so the store can serialize it while other users' messages mutate
// the live state. Called on shutdown and by autosave.
func (h *Handler) SaveAll(ctx context.Context) error {
	h.mu.Lock()
	snapshot := make(map[string]*types.ConversationContext, len(h.contexts))
	for k, v := range h.contexts {
		snapshot[k] = v.Clone()
	}
	h.mu.Unlock()

	return h.store.SaveContexts(ctx, snapshot)
}

func (h *Handler) autosave(ctx context.Context) {
	if err := h.SaveAll(ctx); err != nil {
		h.logger.Warn("autosave failed", zap.Error(err))
	}
}

func (h *Handler) lockUser(userID string) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()

	lock, ok := h.userMu[userID]
	if !ok {
		lock = &sync.Mutex{}
		h.userMu[userID] = lock
	}
	return lock
}
