package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/should/packages/core/config"
	"github.com/abdul-hamid-achik/should/packages/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent verdicts from the history database",
	RunE:  historyCommand,
}

var (
	historyLimitFlag int
	historyPathFlag  string
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", 20, "Number of verdicts to show")
	historyCmd.Flags().StringVar(&historyPathFlag, "db", "", "Path to the history database (default: from config)")
}

func historyCommand(cmd *cobra.Command, _ []string) error {
	path := historyPathFlag
	if path == "" {
		cfg, err := config.LoadConfig(configFlag)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		path = cfg.HistoryPath
	}
	if path == "" {
		return fmt.Errorf("no history database configured")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("no history at %s; run `should demo` first", path)
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(historyLimitFlag)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no recorded verdicts")
		return nil
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for _, e := range entries {
		symbol := green("✓")
		if e.Status != "passed" {
			symbol = red("✗")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-24s %-8s %5dms  %s\n",
			symbol, e.Name, e.Status, e.DurationMs, e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		if e.Reason != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", e.Reason)
		}
	}

	return nil
}
