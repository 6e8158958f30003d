package tools

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// BashTool executes shell commands
type BashTool struct {
	timeout time.Duration
}

// NewBashTool creates a new bash tool
func NewBashTool() *BashTool {
	return &BashTool{timeout: 30 * time.Second}
}

// Name returns the tool name
func (t *BashTool) Name() string {
	return "bash"
}

// Description returns the tool description
func (t *BashTool) Description() string {
	return "Execute bash shell commands. Input: bash command (e.g., 'ls -la', 'wc -l file.txt')"
}

// Call executes the bash command
func (t *BashTool) Call(ctx context.Context, input string) (string, error) {
	command := strings.TrimSpace(input)
	if command == "" {
		return "", fmt.Errorf("bash command cannot be empty")
	}

	cmdCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	// sh -c so pipes and redirects work
	cmd := exec.CommandContext(cmdCtx, "sh", "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := stdout.String()
	if stderr.Len() > 0 {
		output += stderr.String()
	}

	if err != nil {
		return output, fmt.Errorf("command failed: %w", err)
	}

	return output, nil
}
