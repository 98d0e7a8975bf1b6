package config

// DefaultConfig returns the baseline configuration: the OpenAI backend
// with the key taken from the environment, and history kept next to the
// working directory.
func DefaultConfig() *Config {
	return &Config{
		Backend:     "openai",
		Model:       "gpt-4o-mini",
		APIKey:      "${OPENAI_API_KEY}",
		Timeout:     30000,
		HistoryPath: ".should_history.db",
	}
}
