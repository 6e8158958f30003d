package engine

import (
	"time"

	"github.com/killallgit/loom/pkg/chat"
)

// Result records one completed template invocation. Next links the result
// of a chained invocation, mirroring the nextTemplate links actually
// followed.
type Result struct {
	OK       bool           `json:"ok"`
	Template string         `json:"template"`
	Output   string         `json:"output,omitempty"`
	Response *chat.Response `json:"response,omitempty"`
	Error    string         `json:"error,omitempty"`
	Duration time.Duration  `json:"duration"`
	Next     *Result        `json:"next_template_result,omitempty"`
}

// FailureResult shapes an engine error as a result record, for adapters
// that render failures instead of propagating them.
func FailureResult(templateName string, err error) *Result {
	return &Result{
		OK:       false,
		Template: templateName,
		Error:    err.Error(),
	}
}

// Chain flattens the result chain into a slice, head first
func (r *Result) Chain() []*Result {
	var out []*Result
	for cur := r; cur != nil; cur = cur.Next {
		out = append(out, cur)
	}
	return out
}

// Final returns the last result in the chain
func (r *Result) Final() *Result {
	cur := r
	for cur.Next != nil {
		cur = cur.Next
	}
	return cur
}
