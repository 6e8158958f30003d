package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileReadTool reads file contents
type FileReadTool struct{}

// NewFileReadTool creates a new file read tool
func NewFileReadTool() *FileReadTool {
	return &FileReadTool{}
}

// Name returns the tool name
func (t *FileReadTool) Name() string {
	return "file_read"
}

// Description returns the tool description
func (t *FileReadTool) Description() string {
	return "Read file contents. Input: file path"
}

// Call executes the file read operation
func (t *FileReadTool) Call(ctx context.Context, input string) (string, error) {
	path := strings.TrimSpace(input)
	if path == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(content), nil
}

// FileWriteTool writes file contents. Input format: "<path>\n<content>"
type FileWriteTool struct{}

// NewFileWriteTool creates a new file write tool
func NewFileWriteTool() *FileWriteTool {
	return &FileWriteTool{}
}

// Name returns the tool name
func (t *FileWriteTool) Name() string {
	return "file_write"
}

// Description returns the tool description
func (t *FileWriteTool) Description() string {
	return "Write content to a file. Input: file path on the first line, content on the following lines"
}

// Call executes the file write operation
func (t *FileWriteTool) Call(ctx context.Context, input string) (string, error) {
	path, content, found := strings.Cut(input, "\n")
	if !found {
		return "", fmt.Errorf("input must contain a path line followed by content")
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return fmt.Sprintf("wrote %d bytes to %s", len(content), path), nil
}
