package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/killallgit/loom/pkg/logger"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaDispatcher implements Dispatcher using LangChain Go's Ollama provider
type OllamaDispatcher struct {
	llm   llms.Model
	model string
}

// NewOllamaDispatcher creates a dispatcher backed by a local Ollama server
func NewOllamaDispatcher(baseURL, model string) (*OllamaDispatcher, error) {
	var opts []ollama.Option

	if baseURL != "" {
		opts = append(opts, ollama.WithServerURL(baseURL))
	}

	if model != "" {
		opts = append(opts, ollama.WithModel(model))
	}

	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}

	return &OllamaDispatcher{
		llm:   llm,
		model: model,
	}, nil
}

// NewDispatcherWithModel wraps an existing LangChain model. Used by tests
// and by callers that configure the model themselves.
func NewDispatcherWithModel(llm llms.Model, model string) *OllamaDispatcher {
	return &OllamaDispatcher{llm: llm, model: model}
}

// Dispatch implements the Dispatcher interface
func (d *OllamaDispatcher) Dispatch(ctx context.Context, req Request) (string, *Response, error) {
	messages := make([]llms.MessageContent, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messageType := llms.ChatMessageTypeHuman
		switch msg.Role {
		case RoleSystem:
			messageType = llms.ChatMessageTypeSystem
		case RoleAssistant:
			messageType = llms.ChatMessageTypeAI
		case RoleUser:
			messageType = llms.ChatMessageTypeHuman
		case RoleTool:
			messageType = llms.ChatMessageTypeTool
		}
		messages = append(messages, llms.TextParts(messageType, msg.Content))
	}

	var opts []llms.CallOption
	if req.Model != "" {
		opts = append(opts, llms.WithModel(req.Model))
	}

	response, err := d.llm.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", nil, fmt.Errorf("content generation failed: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", nil, fmt.Errorf("no response choices returned")
	}

	choice := response.Choices[0]

	promptTokens, evalTokens := tokenCounts(choice.GenerationInfo)
	logger.Debug("Chat dispatch complete: model=%s prompt_tokens=%d eval_tokens=%d",
		modelName(req.Model, d.model), promptTokens, evalTokens)

	resp := &Response{
		Model:           modelName(req.Model, d.model),
		CreatedAt:       time.Now(),
		Message:         NewAssistantMessage(choice.Content),
		Done:            true,
		PromptEvalCount: promptTokens,
		EvalCount:       evalTokens,
	}

	return choice.Content, resp, nil
}

// tokenCounts extracts token usage from a choice's generation info when the
// provider reports it
func tokenCounts(info map[string]any) (int, int) {
	prompt, _ := info["PromptTokens"].(int)
	eval, _ := info["CompletionTokens"].(int)
	return prompt, eval
}

func modelName(requested, fallback string) string {
	if requested != "" {
		return requested
	}
	return fallback
}
