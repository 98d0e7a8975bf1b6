package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "should",
	Short: "AI-judged assertions. Describe the expectation, let the model check it.",
	Long: `should wraps a function under test, captures what it prints and logs,
and asks a language model whether the observed behavior satisfies a
natural-language expectation. The model answers PASS or FAIL with a reason.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitUsageError)
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
