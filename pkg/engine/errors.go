package engine

import "errors"

var (
	// ErrMissingTemplateName reports a runTemplate call without a name
	ErrMissingTemplateName = errors.New("missing template name")

	// ErrTemplateNotFound reports a name absent from the registry
	ErrTemplateNotFound = errors.New("template not found")

	// ErrCircularTemplate reports a nextTemplate that would re-enter a
	// name already executed in the current chain
	ErrCircularTemplate = errors.New("circular template reference")

	// ErrUnknownTool reports an activeTools name absent from the session's
	// tool catalog
	ErrUnknownTool = errors.New("unknown tool")
)
