package engine

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/killallgit/loom/pkg/chat"
	"github.com/killallgit/loom/pkg/logger"
	"github.com/killallgit/loom/pkg/template"
)

// Engine executes named templates end-to-end: resolve, produce a
// directive, apply its side effects, dispatch the chat call, and follow
// the chain of nextTemplate links with bounded recursion.
//
// Failures propagate as errors; the Result chain only ever describes work
// that completed. Tool-state restoration is guaranteed on every exit path
// of each frame.
type Engine struct {
	registry   *template.Registry
	dispatcher chat.Dispatcher
	session    *Session
	notifier   Notifier
}

// Option configures an Engine
type Option func(*Engine)

// WithNotifier overrides the default log-backed notice sink
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// New creates an engine over a registry, a chat dispatcher and a session
func New(registry *template.Registry, dispatcher chat.Dispatcher, session *Session, opts ...Option) *Engine {
	e := &Engine{
		registry:   registry,
		dispatcher: dispatcher,
		session:    session,
		notifier:   logNotifier{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunTemplate executes the named template with the given input, following
// any chained templates. The returned Result links one record per
// completed invocation.
func (e *Engine) RunTemplate(ctx context.Context, name, input string) (*Result, error) {
	runID := uuid.NewString()
	logger.Debug("Starting template run %s: template=%s", runID, name)

	result, err := e.run(ctx, name, input, nil)
	if err != nil {
		logger.Error("Template run %s failed: %v", runID, err)
		return nil, err
	}

	logger.Debug("Template run %s complete: chain_length=%d", runID, len(result.Chain()))
	return result, nil
}

// run executes one invocation frame. visited holds the names already
// executed earlier in this chain; the current name is appended before
// recursing.
func (e *Engine) run(ctx context.Context, name, input string, visited []string) (*Result, error) {
	if name == "" {
		return nil, ErrMissingTemplateName
	}

	fn, ok := e.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	e.notifier.Notice("Running template %q", name)
	start := time.Now()

	directive, err := fn(ctx, input)
	if err != nil {
		// Template-authoring errors are meaningful diagnostics, pass
		// them through with the frame named
		return nil, fmt.Errorf("template %q: %w", name, err)
	}
	if directive == nil {
		return nil, fmt.Errorf("template %q returned no directive", name)
	}

	// Reset is applied before dispatch, never after
	if len(directive.Reset) > 0 {
		e.notifier.Notice("Resetting context: %s", joinKinds(directive.Reset))
		e.session.Reset(directive.Reset)
	}

	// Tool narrowing is a scoped acquisition: whatever set was enabled
	// before the swap is restored on every exit path of this frame,
	// including the chained recursion below.
	if len(directive.ActiveTools) > 0 {
		originalTools := e.session.Tools.Enabled()
		if err := e.session.Tools.SetEnabled(directive.ActiveTools); err != nil {
			return nil, fmt.Errorf("template %q: %w", name, err)
		}
		e.notifier.Notice("Active tools: %s", strings.Join(directive.ActiveTools, ", "))

		defer func() {
			e.session.Tools.replace(originalTools)
			e.notifier.Notice("Restored tools: %s", strings.Join(originalTools, ", "))
		}()
	}

	output, response, err := e.dispatcher.Dispatch(ctx, directive.Request)
	if err != nil {
		return nil, fmt.Errorf("template %q: dispatch: %w", name, err)
	}

	result := &Result{
		OK:       true,
		Template: name,
		Output:   output,
		Response: response,
		Duration: time.Since(start),
	}

	if directive.NextTemplate != "" {
		chain := append(visited, name)
		if slices.Contains(chain, directive.NextTemplate) {
			return nil, fmt.Errorf("%w: %s -> %s",
				ErrCircularTemplate, strings.Join(chain, " -> "), directive.NextTemplate)
		}

		next, err := e.run(ctx, directive.NextTemplate, output, chain)
		if err != nil {
			return nil, err
		}
		result.Next = next
	}

	return result, nil
}

func joinKinds(kinds []template.ResetKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
