package config

import "time"

// Provider names accepted by LLMConfig.Provider.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"   validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gte=0"`
}

// LLMConfig contains all LLM integration related settings.
//
// API keys are deliberately optional at load time: a missing key is reported
// per request by the generation endpoint instead of preventing startup.
type LLMConfig struct {
	Provider           string        `mapstructure:"provider"             validate:"required,oneof=openai gemini"`
	OpenAIAPIKey       string        `mapstructure:"openai_api_key"`
	OpenAIBaseURL      string        `mapstructure:"openai_base_url"      validate:"required,url"`
	ModelName          string        `mapstructure:"model_name"           validate:"required"`
	GeminiAPIKey       string        `mapstructure:"gemini_api_key"`
	GeminiModelName    string        `mapstructure:"gemini_model_name"    validate:"required"`
	Temperature        float32       `mapstructure:"temperature"          validate:"gte=0,lte=2"`
	MaxTokens          int           `mapstructure:"max_tokens"           validate:"gt=0"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"      validate:"gte=0"`
	PromptTemplatePath string        `mapstructure:"prompt_template_path" validate:"omitempty,file"`
}

// APIKey returns the credential of the selected provider.
func (c LLMConfig) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}
