package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// Empty values are treated as unset by the loader.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// clearedEnv blanks every variable the loader reads so the host environment
// cannot leak into a test.
func clearedEnv() map[string]string {
	return map[string]string{
		"OPENAI_API_KEY":                   "",
		"GEMINI_API_KEY":                   "",
		"STUDYNOTES_SERVER_PORT":           "",
		"STUDYNOTES_SERVER_LOG_LEVEL":      "",
		"STUDYNOTES_SERVER_MAX_BODY_BYTES": "",
		"STUDYNOTES_LLM_PROVIDER":          "",
		"STUDYNOTES_LLM_OPENAI_API_KEY":    "",
		"STUDYNOTES_LLM_GEMINI_API_KEY":    "",
		"STUDYNOTES_LLM_MODEL_NAME":        "",
		"STUDYNOTES_LLM_REQUEST_TIMEOUT":   "",
	}
}

// TestLoadDefaults verifies that Load succeeds with no environment at all and
// applies the documented defaults.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, clearedEnv())

	cfg, err := Load()

	require.NoError(t, err, "Load() should not fail without an API key")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.OpenAIBaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.ModelName)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 500, cfg.LLM.MaxTokens)
	assert.Equal(t, time.Duration(0), cfg.LLM.RequestTimeout)
	assert.Empty(t, cfg.LLM.OpenAIAPIKey)
	assert.Empty(t, cfg.LLM.APIKey())
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	env := clearedEnv()
	env["STUDYNOTES_SERVER_PORT"] = "9090"
	env["STUDYNOTES_SERVER_LOG_LEVEL"] = "debug"
	env["STUDYNOTES_LLM_MODEL_NAME"] = "gpt-4o"
	env["STUDYNOTES_LLM_REQUEST_TIMEOUT"] = "30s"
	env["OPENAI_API_KEY"] = "sk-test-key"
	setupEnv(t, env)

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "gpt-4o", cfg.LLM.ModelName)
	assert.Equal(t, 30*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, "sk-test-key", cfg.LLM.OpenAIAPIKey)
	assert.Equal(t, "sk-test-key", cfg.LLM.APIKey())
}

func TestLoadPrefixedKeyTakesPrecedence(t *testing.T) {
	env := clearedEnv()
	env["STUDYNOTES_LLM_OPENAI_API_KEY"] = "sk-prefixed"
	env["OPENAI_API_KEY"] = "sk-plain"
	setupEnv(t, env)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "sk-prefixed", cfg.LLM.OpenAIAPIKey)
}

func TestLoadGeminiProvider(t *testing.T) {
	env := clearedEnv()
	env["STUDYNOTES_LLM_PROVIDER"] = "gemini"
	env["GEMINI_API_KEY"] = "gemini-key"
	env["OPENAI_API_KEY"] = "sk-unused"
	setupEnv(t, env)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "gemini-key", cfg.LLM.APIKey())
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"STUDYNOTES_SERVER_PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"STUDYNOTES_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Unknown provider",
			envVars: map[string]string{"STUDYNOTES_LLM_PROVIDER": "anthropic"},
		},
		{
			name:    "Non-positive body limit",
			envVars: map[string]string{"STUDYNOTES_SERVER_MAX_BODY_BYTES": "0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := clearedEnv()
			for k, v := range tc.envVars {
				env[k] = v
			}
			setupEnv(t, env)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
