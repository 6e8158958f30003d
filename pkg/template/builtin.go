package template

import (
	"context"
	"fmt"

	"github.com/killallgit/loom/pkg/chat"
)

// Built-in templates. These serve as both practical chains and
// self-documenting examples of directive construction.

// RegisterBuiltins registers the built-in templates into a registry. The
// model name is stamped into every directive's request.
func RegisterBuiltins(r *Registry, model string) {
	r.Register("summarize", func(ctx context.Context, input string) (*Directive, error) {
		return &Directive{
			Request: chat.Request{
				Model: model,
				Messages: []chat.Message{
					chat.NewSystemMessage("You summarize text. Respond with the summary only."),
					chat.NewUserMessage(fmt.Sprintf("Summarize the following:\n\n%s", input)),
				},
			},
		}, nil
	})

	// refine produces a first draft and chains into polish with that
	// draft as input
	r.Register("refine", func(ctx context.Context, input string) (*Directive, error) {
		return &Directive{
			Request: chat.Request{
				Model: model,
				Messages: []chat.Message{
					chat.NewSystemMessage("You improve prose. Rewrite the text for clarity, keeping its meaning."),
					chat.NewUserMessage(input),
				},
			},
			NextTemplate: "polish",
		}, nil
	})

	r.Register("polish", func(ctx context.Context, input string) (*Directive, error) {
		return &Directive{
			Request: chat.Request{
				Model: model,
				Messages: []chat.Message{
					chat.NewSystemMessage("You are a copy editor. Fix grammar and tighten wording. Respond with the final text only."),
					chat.NewUserMessage(input),
				},
			},
		}, nil
	})

	// plan narrows the tool set to read-only tools and starts from a
	// clean context, then chains into execute
	r.Register("plan", func(ctx context.Context, input string) (*Directive, error) {
		return &Directive{
			Request: chat.Request{
				Model: model,
				Messages: []chat.Message{
					chat.NewSystemMessage("You are a planner. Produce a short numbered plan for the task. Do not execute anything."),
					chat.NewUserMessage(input),
				},
			},
			Reset:        []ResetKind{ResetConversation, ResetScratch},
			ActiveTools:  []string{"file_read", "ripgrep"},
			NextTemplate: "execute",
		}, nil
	})

	r.Register("execute", func(ctx context.Context, input string) (*Directive, error) {
		return &Directive{
			Request: chat.Request{
				Model: model,
				Messages: []chat.Message{
					chat.NewSystemMessage("You carry out the given plan step by step and report what was done."),
					chat.NewUserMessage(fmt.Sprintf("Plan:\n%s", input)),
				},
			},
			ActiveTools: []string{"bash", "file_read", "file_write"},
		}, nil
	})
}
