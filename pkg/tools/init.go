package tools

import "github.com/tmc/langchaingo/tools"

// RegisterBuiltins registers the standard tool catalog into a registry
func RegisterBuiltins(r *Registry) {
	r.Register("bash", func() tools.Tool { return NewBashTool() })
	r.Register("file_read", func() tools.Tool { return NewFileReadTool() })
	r.Register("file_write", func() tools.Tool { return NewFileWriteTool() })
	r.Register("git", func() tools.Tool { return NewGitTool() })
	r.Register("ripgrep", func() tools.Tool { return NewRipgrepTool() })
	r.Register("webfetch", func() tools.Tool { return NewWebFetchTool() })
}

// NewBuiltinRegistry creates a registry pre-populated with the standard catalog
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}
