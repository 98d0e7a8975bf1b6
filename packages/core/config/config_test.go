package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abdul-hamid-achik/should/packages/judge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, ".should.yaml", `
backend: openai
baseUrl: https://dashscope.aliyuncs.com/compatible-mode/v1
model: qwen-plus
apiKey: ${DASHSCOPE_API_KEY}
temperature: 0.1
timeout: 15000
rateLimit: 2
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Backend)
	assert.Equal(t, "qwen-plus", cfg.Model)
	assert.Equal(t, "${DASHSCOPE_API_KEY}", cfg.APIKey)
	assert.Equal(t, 15000, cfg.Timeout)
	assert.Equal(t, 2.0, cfg.RateLimit)
	// defaults survive partial configs
	assert.Equal(t, ".should_history.db", cfg.HistoryPath)
}

func TestLoadConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := FindAndLoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, ".should.yaml", "backend: [unclosed")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Client_OpenAIRequiresKey(t *testing.T) {
	cfg := &Config{Backend: "openai", APIKey: "${SHOULD_TEST_UNSET_KEY}"}
	_, err := cfg.Client()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apiKey")
}

func TestConfig_Client_OpenAIResolvesKey(t *testing.T) {
	t.Setenv("SHOULD_TEST_KEY", "sk-from-env")
	cfg := &Config{Backend: "openai", APIKey: "${SHOULD_TEST_KEY}"}

	client, err := cfg.Client()
	require.NoError(t, err)
	assert.IsType(t, &judge.OpenAIClient{}, client)
}

func TestConfig_Client_HTTP(t *testing.T) {
	cfg := &Config{Backend: "http", URL: "http://localhost:11434/api/generate", Model: "llama3"}

	client, err := cfg.Client()
	require.NoError(t, err)
	assert.IsType(t, &judge.HTTPClient{}, client)
}

func TestConfig_Client_HTTPRequiresURL(t *testing.T) {
	cfg := &Config{Backend: "http"}
	_, err := cfg.Client()
	assert.Error(t, err)
}

func TestConfig_Client_Stub(t *testing.T) {
	cfg := &Config{Backend: "stub", StubResponse: "FAIL: canned"}

	client, err := cfg.Client()
	require.NoError(t, err)

	stub, ok := client.(*judge.StubClient)
	require.True(t, ok)
	assert.Equal(t, "FAIL: canned", stub.Response)
}

func TestConfig_Client_UnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "carrier-pigeon"}
	_, err := cfg.Client()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}
