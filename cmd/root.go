package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/loom/pkg/config"
	"github.com/killallgit/loom/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "loom",
	Short: "Run chained prompt templates against a local model",
	Long: `loom executes named prompt templates. A template turns an input string
into a chat request, optionally narrowing the enabled tool set, resetting
context state, and chaining into a next template fed the prior output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Load(cfgFile); err != nil {
			return err
		}
		if err := logger.Init(); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		return nil
	},
}

func Execute() {
	defer logger.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is .loom/settings.yaml)")

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().StringP("model", "m", "", "model to use for chat requests")
	viper.BindPFlag("ollama.model", rootCmd.PersistentFlags().Lookup("model"))
}
