package tools

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// commandTool wraps an external binary as a tool. The input string is
// passed as arguments after the fixed base arguments.
type commandTool struct {
	name        string
	description string
	binary      string
	baseArgs    []string
	timeout     time.Duration
}

func (t *commandTool) Name() string {
	return t.name
}

func (t *commandTool) Description() string {
	return t.description
}

func (t *commandTool) Call(ctx context.Context, input string) (string, error) {
	args := append([]string{}, t.baseArgs...)
	if trimmed := strings.TrimSpace(input); trimmed != "" {
		args = append(args, strings.Fields(trimmed)...)
	}

	cmdCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, t.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String() + stderr.String(), fmt.Errorf("%s failed: %w", t.name, err)
	}

	return stdout.String(), nil
}

// NewGitTool creates a tool that runs git subcommands
func NewGitTool() *commandTool {
	return &commandTool{
		name:        "git",
		description: "Run git commands in the current repository. Input: git arguments (e.g., 'status', 'log --oneline -5')",
		binary:      "git",
		timeout:     30 * time.Second,
	}
}

// NewRipgrepTool creates a tool that searches file contents with ripgrep
func NewRipgrepTool() *commandTool {
	return &commandTool{
		name:        "ripgrep",
		description: "Search file contents for a pattern. Input: ripgrep arguments (e.g., 'TODO pkg/')",
		binary:      "rg",
		baseArgs:    []string{"--no-heading", "--line-number"},
		timeout:     30 * time.Second,
	}
}
