package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/should/packages/core/config"
	"github.com/abdul-hamid-achik/should/packages/core/env"
	"github.com/abdul-hamid-achik/should/packages/core/runner"
	"github.com/abdul-hamid-achik/should/packages/demo"
	"github.com/abdul-hamid-achik/should/packages/history"
	"github.com/abdul-hamid-achik/should/packages/judge"
	"github.com/abdul-hamid-achik/should/packages/output"
	"github.com/abdul-hamid-achik/should/packages/should"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the demonstration suite against the configured judge",
	Long: `Run the built-in demonstration suite: a user registration flow with a
deliberate bug, discount calculations, and a grading function. Each check
is judged by the configured backend against its natural-language
expectation.

Examples:
  should demo
  should demo --offline
  should demo --config should.yaml --env-file .env
  should demo --output json
  should demo --watch`,
	RunE: demoCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for config watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	configFlag    string
	envFileFlag   string
	offlineFlag   bool
	verboseFlag   bool
	noColorFlag   bool
	outputFlag    string
	watchFlag     bool
	noHistoryFlag bool
)

func init() {
	demoCmd.Flags().StringVar(&configFlag, "config", getEnvString("SHOULD_CONFIG", ""), "Path to config file (env: SHOULD_CONFIG)")
	demoCmd.Flags().StringVar(&envFileFlag, "env-file", getEnvString("SHOULD_ENV_FILE", ""), "Path to .env file with backend credentials (env: SHOULD_ENV_FILE)")
	demoCmd.Flags().BoolVar(&offlineFlag, "offline", false, "Use a stub judge that always answers PASS (no backend calls)")
	demoCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show conditions and return values per check")
	demoCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("SHOULD_NO_COLOR", false), "Disable colored output (env: SHOULD_NO_COLOR)")
	demoCmd.Flags().StringVarP(&outputFlag, "output", "o", "console", "Output format: console, json")
	demoCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Re-run the suite when the config file changes")
	demoCmd.Flags().BoolVar(&noHistoryFlag, "no-history", false, "Skip recording verdicts to the history database")
}

func demoCommand(cmd *cobra.Command, _ []string) error {
	if envFileFlag != "" {
		if _, err := env.LoadAndExportDotEnv(envFileFlag); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	formatter := output.NewConsoleFormatter(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithVerbose(verboseFlag),
		output.WithNoColor(noColorFlag),
	)

	runOnce := func() (*runner.Summary, error) {
		cfg, err := config.LoadConfig(configFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}

		var client judge.Client
		if offlineFlag {
			client = &judge.StubClient{Response: "PASS"}
		} else {
			client, err = cfg.Client()
			if err != nil {
				return nil, err
			}
		}
		should.Use(client)

		summary := runner.Run(cmd.Context(), demo.Suite())

		if !noHistoryFlag && cfg.HistoryPath != "" {
			if err := recordHistory(cfg.HistoryPath, summary); err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
		}

		switch strings.ToLower(outputFlag) {
		case "json":
			if err := output.NewJSONFormatter(cmd.OutOrStdout()).FormatSummary(summary); err != nil {
				return nil, err
			}
		default:
			formatter.FormatSummary(summary)
		}

		return summary, nil
	}

	summary, err := runOnce()
	if err != nil {
		formatter.FormatError(err)
		os.Exit(ExitConfigError)
	}

	if !watchFlag {
		if summary.Failed > 0 || summary.Errored > 0 {
			os.Exit(ExitCheckFailure)
		}
		return nil
	}

	return watchAndRerun(cmd, runOnce)
}

// watchAndRerun re-runs the suite whenever the config file changes,
// which makes tuning the judge model or prompt settings interactive.
func watchAndRerun(cmd *cobra.Command, runOnce func() (*runner.Summary, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watchPath := configFlag
	if watchPath == "" {
		watchPath = findConfigFile(".")
	}
	if watchPath == "" {
		return fmt.Errorf("no config file to watch; pass --config or create %s", config.ConfigFilenames[0])
	}
	if err := watcher.Add(filepath.Dir(watchPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", watchPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes... (press Ctrl+C to stop)\n", watchPath)

	var debounceTimer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) && filepath.Base(event.Name) == filepath.Base(watchPath) {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
					fmt.Fprintf(cmd.OutOrStdout(), "\nConfig changed: %s\nRe-running suite...\n", event.Name)
					if _, err := runOnce(); err != nil {
						fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					}
				})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-cmd.Context().Done():
			return nil
		}
	}
}

func recordHistory(path string, summary *runner.Summary) error {
	store, err := history.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	if err := store.RecordSummary(summary); err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

func findConfigFile(dir string) string {
	for _, filename := range config.ConfigFilenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return defaultVal
	}
}
