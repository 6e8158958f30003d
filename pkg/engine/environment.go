package engine

import (
	"fmt"
	"sync"

	"github.com/killallgit/loom/pkg/template"
	"github.com/killallgit/loom/pkg/tools"
)

// ToolContext is the shared enabled-tool set of one session. Narrowing and
// restoration go through SetEnabled/replace; reads return copies so
// callers never alias the internal slice.
type ToolContext struct {
	mu      sync.Mutex
	catalog *tools.Registry
	enabled []string
}

// NewToolContext creates a tool context validating against the given
// catalog, with the given initially-enabled names. Unknown initial names
// are rejected.
func NewToolContext(catalog *tools.Registry, enabled []string) (*ToolContext, error) {
	tc := &ToolContext{catalog: catalog}
	if err := tc.SetEnabled(enabled); err != nil {
		return nil, err
	}
	return tc, nil
}

// Enabled returns a copy of the currently-enabled tool names in order
func (tc *ToolContext) Enabled() []string {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	out := make([]string, len(tc.enabled))
	copy(out, tc.enabled)
	return out
}

// SetEnabled replaces the enabled set with exactly the given names,
// rejecting names absent from the catalog before any change is made.
func (tc *ToolContext) SetEnabled(names []string) error {
	for _, name := range names {
		if !tc.catalog.IsRegistered(name) {
			return fmt.Errorf("%w: %s", ErrUnknownTool, name)
		}
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.enabled = append([]string(nil), names...)
	return nil
}

// replace restores a previously-captured enabled set. The snapshot came
// from Enabled so its names have already been validated.
func (tc *ToolContext) replace(names []string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.enabled = append([]string(nil), names...)
}

// Session is one logical agent environment: the shared tool context plus
// resettable conversation/context state. At most one chain should be
// in flight per session; concurrent chains against distinct sessions are
// independent.
type Session struct {
	Tools *ToolContext

	mu     sync.Mutex
	resets map[template.ResetKind]int
}

// NewSession creates a session around a tool context
func NewSession(tc *ToolContext) *Session {
	return &Session{
		Tools:  tc,
		resets: make(map[template.ResetKind]int),
	}
}

// Reset clears the given categories of context state. Fire-and-forget
// from the engine's perspective.
func (s *Session) Reset(kinds []template.ResetKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, kind := range kinds {
		s.resets[kind]++
	}
}

// ResetCount reports how many times a category has been cleared in this
// session. Observable for tests and diagnostics.
func (s *Session) ResetCount(kind template.ResetKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.resets[kind]
}
