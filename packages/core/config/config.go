package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/should/packages/core/env"
	"github.com/abdul-hamid-achik/should/packages/judge"
)

// Config describes the judgment backend and CLI behavior.
type Config struct {
	Backend      string  `yaml:"backend"`                // openai, http, stub
	BaseURL      string  `yaml:"baseUrl,omitempty"`      // OpenAI-compatible endpoint override
	Model        string  `yaml:"model,omitempty"`
	APIKey       string  `yaml:"apiKey,omitempty"`       // supports ${VAR} references
	Temperature  float32 `yaml:"temperature,omitempty"`
	Timeout      int     `yaml:"timeout,omitempty"`      // milliseconds
	RateLimit    float64 `yaml:"rateLimit,omitempty"`    // judge calls per second
	URL          string  `yaml:"url,omitempty"`          // http backend endpoint
	ResponsePath string  `yaml:"responsePath,omitempty"` // gjson path of the response text
	StubResponse string  `yaml:"stubResponse,omitempty"` // canned verdict for the stub backend

	HistoryPath string `yaml:"historyPath,omitempty"`
	NoColor     *bool  `yaml:"noColor,omitempty"`
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	if c.NoColor == nil {
		return false
	}
	return *c.NoColor
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".should.yaml",
	".should.yml",
	"should.yaml",
	"should.yml",
}

// LoadConfig loads configuration from the specified path or searches the
// current directory for one of ConfigFilenames, falling back to defaults.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}
	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// Client builds the judgment client this config describes. ${VAR}
// references in the API key resolve from the environment.
func (c *Config) Client() (judge.Client, error) {
	switch c.Backend {
	case "openai", "":
		apiKey := env.Resolve(c.APIKey)
		if apiKey == "" {
			return nil, fmt.Errorf("openai backend requires apiKey (set it in the config or via ${VAR})")
		}

		opts := []judge.OpenAIOption{}
		if c.BaseURL != "" {
			opts = append(opts, judge.WithBaseURL(c.BaseURL))
		}
		if c.Model != "" {
			opts = append(opts, judge.WithModel(c.Model))
		}
		if c.Temperature > 0 {
			opts = append(opts, judge.WithTemperature(c.Temperature))
		}
		if c.Timeout > 0 {
			opts = append(opts, judge.WithTimeout(time.Duration(c.Timeout)*time.Millisecond))
		}
		if c.RateLimit > 0 {
			opts = append(opts, judge.WithRateLimit(c.RateLimit))
		}
		return judge.NewOpenAIClient(apiKey, opts...), nil

	case "http":
		if c.URL == "" {
			return nil, fmt.Errorf("http backend requires url")
		}

		opts := []judge.HTTPOption{}
		if c.ResponsePath != "" {
			opts = append(opts, judge.WithResponsePath(c.ResponsePath))
		}
		if c.Model != "" {
			opts = append(opts, judge.WithBodyField("model", c.Model))
		}
		if c.Timeout > 0 {
			opts = append(opts, judge.WithHTTPTimeout(time.Duration(c.Timeout)*time.Millisecond))
		}
		if key := env.Resolve(c.APIKey); key != "" {
			opts = append(opts, judge.WithHeader("Authorization", "Bearer "+key))
		}
		return judge.NewHTTPClient(c.URL, opts...), nil

	case "stub":
		response := c.StubResponse
		if response == "" {
			response = "PASS"
		}
		return &judge.StubClient{Response: response}, nil

	default:
		return nil, fmt.Errorf("unknown backend %q (expected openai, http or stub)", c.Backend)
	}
}
