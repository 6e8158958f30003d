package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/killallgit/loom/pkg/chat"
	"github.com/killallgit/loom/pkg/config"
	"github.com/killallgit/loom/pkg/engine"
	"github.com/killallgit/loom/pkg/template"
	"github.com/killallgit/loom/pkg/tools"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	noticeStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

var runCmd = &cobra.Command{
	Use:   "run <template> [input]",
	Short: "Execute a named template chain",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		input := ""
		if len(args) > 1 {
			input = args[1]
		}

		eng, err := buildEngine()
		if err != nil {
			return err
		}

		result, err := eng.RunTemplate(cmd.Context(), name, input)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Template run failed: %v", err)))
			return err
		}

		for _, r := range result.Chain() {
			fmt.Println(headerStyle.Render(fmt.Sprintf("── %s (%s)", r.Template, r.Duration.Round(time.Millisecond))))
			fmt.Println(strings.TrimSpace(r.Output))
			fmt.Println()
		}
		return nil
	},
}

// buildEngine wires the registry, tool catalog, session and dispatcher
// from configuration. This is the whole adapter layer; the engine's
// semantics live in pkg/engine.
func buildEngine() (*engine.Engine, error) {
	settings := config.Get()

	registry := template.NewRegistry()
	template.RegisterBuiltins(registry, settings.Ollama.Model)

	catalog := tools.NewBuiltinRegistry()
	toolCtx, err := engine.NewToolContext(catalog, settings.Tools.Enabled)
	if err != nil {
		return nil, fmt.Errorf("invalid tools.enabled config: %w", err)
	}
	session := engine.NewSession(toolCtx)

	dispatcher, err := chat.NewOllamaDispatcher(settings.Ollama.URL, settings.Ollama.Model)
	if err != nil {
		return nil, err
	}

	notifier := engine.NotifierFunc(func(format string, args ...any) {
		fmt.Fprintln(os.Stderr, noticeStyle.Render(fmt.Sprintf(format, args...)))
	})

	return engine.New(registry, dispatcher, session, engine.WithNotifier(notifier)), nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
