package chat

import (
	"context"
	"time"
)

// Request describes a single chat invocation. The execution engine treats
// it as opaque and forwards it to the Dispatcher verbatim.
type Request struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// Response is the full reply from the chat backend.
type Response struct {
	Model           string    `json:"model"`
	CreatedAt       time.Time `json:"created_at"`
	Message         Message   `json:"message"`
	Done            bool      `json:"done"`
	PromptEvalCount int       `json:"prompt_eval_count,omitempty"`
	EvalCount       int       `json:"eval_count,omitempty"`
}

// Dispatcher sends a chat request to the backing model and returns the
// assistant's text output alongside the full response.
type Dispatcher interface {
	Dispatch(ctx context.Context, req Request) (string, *Response, error)
}
