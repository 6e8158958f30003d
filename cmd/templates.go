package cmd

import (
	"fmt"

	"github.com/killallgit/loom/pkg/config"
	"github.com/killallgit/loom/pkg/template"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List registered templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Get()

		registry := template.NewRegistry()
		template.RegisterBuiltins(registry, settings.Ollama.Model)

		for _, name := range registry.List() {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
