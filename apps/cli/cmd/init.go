package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/should/packages/core/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	RunE:  initCommand,
}

const starterConfig = `# should configuration
# Backend: openai (any OpenAI-compatible endpoint), http, or stub.
backend: openai

# Uncomment for a compatible endpoint, e.g. DashScope or a local Ollama:
# baseUrl: https://dashscope.aliyuncs.com/compatible-mode/v1
# baseUrl: http://localhost:11434/v1

model: gpt-4o-mini
apiKey: ${OPENAI_API_KEY}

# timeout: 30000       # per judge call, milliseconds
# rateLimit: 2         # judge calls per second
# temperature: 0

historyPath: .should_history.db
`

func initCommand(cmd *cobra.Command, _ []string) error {
	path := config.ConfigFilenames[0]
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	fmt.Fprintln(cmd.OutOrStdout(), "Set OPENAI_API_KEY (or edit apiKey) and run: should demo")
	return nil
}
