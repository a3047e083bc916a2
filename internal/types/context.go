package types

import "time"

// Conversation states. A context starts in StateInitial and moves to
// StateEngaged after the first greeting exchange.
const (
	StateInitial = "initial"
	StateEngaged = "engaged"
)

// Speaker identifies who produced a conversation turn.
const (
	SpeakerUser = "user"
	SpeakerBot  = "bot"
)

// Turn is one entry in a conversation history log.
type Turn struct {
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// MaxHistoryTurns caps the per-user history log. The log is append-only;
// once the cap is reached the oldest turns are dropped.
const MaxHistoryTurns = 200

// ConversationContext is the accumulated per-user conversation state.
type ConversationContext struct {
	State   string   `json:"state"`
	History []Turn   `json:"history"`
	Skills  []string `json:"skills"`
}

// NewConversationContext returns a context in the initial state.
func NewConversationContext() *ConversationContext {
	return &ConversationContext{State: StateInitial}
}

// AppendTurn records a turn, evicting the oldest entries beyond MaxHistoryTurns.
func (c *ConversationContext) AppendTurn(speaker, text string, at time.Time) {
	c.History = append(c.History, Turn{Speaker: speaker, Text: text, Timestamp: at})
	if len(c.History) > MaxHistoryTurns {
		c.History = c.History[len(c.History)-MaxHistoryTurns:]
	}
}

// Clone returns a deep copy sharing no slices with the original.
func (c *ConversationContext) Clone() *ConversationContext {
	copied := *c
	copied.History = append([]Turn(nil), c.History...)
	copied.Skills = append([]string(nil), c.Skills...)
	return &copied
}

// AddSkills appends newly observed skills, keeping first-seen order and
// dropping exact duplicates.
func (c *ConversationContext) AddSkills(skills []string) {
	c.Skills = appendUnique(c.Skills, skills)
}

// RecentHistory returns up to n most recent turns.
func (c *ConversationContext) RecentHistory(n int) []Turn {
	if n <= 0 || len(c.History) == 0 {
		return nil
	}
	if len(c.History) <= n {
		return c.History
	}
	return c.History[len(c.History)-n:]
}
