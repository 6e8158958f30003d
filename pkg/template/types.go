package template

import (
	"context"
	"fmt"

	"github.com/killallgit/loom/pkg/chat"
)

// Func is a named template function. Given an input string it produces the
// directive describing the chat invocation to perform.
type Func func(ctx context.Context, input string) (*Directive, error)

// Directive is the structured output of a template function, consumed by
// the execution engine.
type Directive struct {
	// Request is the chat invocation to perform. Forwarded to the
	// dispatcher verbatim.
	Request chat.Request

	// NextTemplate optionally names a template to run next, fed this
	// directive's chat output as its input.
	NextTemplate string

	// Reset optionally lists context-state categories to clear before the
	// chat invocation.
	Reset []ResetKind

	// ActiveTools optionally narrows the enabled tool set to exactly these
	// names for the duration of this invocation frame.
	ActiveTools []string
}

// ResetKind identifies a category of conversation/context state that a
// directive can ask to clear.
type ResetKind string

const (
	ResetConversation ResetKind = "conversation"
	ResetContext      ResetKind = "context"
	ResetScratch      ResetKind = "scratch"
)

// ParseResetKind validates a reset kind name
func ParseResetKind(s string) (ResetKind, error) {
	switch ResetKind(s) {
	case ResetConversation, ResetContext, ResetScratch:
		return ResetKind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResetKind, s)
}

// String returns the kind's name
func (k ResetKind) String() string {
	return string(k)
}
