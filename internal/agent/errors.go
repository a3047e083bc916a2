package agent

import "fmt"

// SessionStateError signals an interview operation performed in the wrong
// session state, such as answering without an active interview.
type SessionStateError struct {
	Message string
}

func (e *SessionStateError) Error() string {
	return fmt.Sprintf("session state error: %s", e.Message)
}
