// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/code-optimizer/internal/logger"
)

// Supported language model providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// DefaultModels maps each provider to the model used when none is configured.
var DefaultModels = map[string]string{
	ProviderOpenAI: "gpt-4o-mini",
	ProviderGemini: "gemini-2.5-flash",
	ProviderOllama: "gemma3:latest",
}

// Config holds the application's configuration values.
type Config struct {
	Server  ServerConfig
	Logging logger.Config
	AI      AIConfig
	GitHub  GitHubConfig
}

// ServerConfig configures the inbound HTTP surface.
type ServerConfig struct {
	Port              string
	AllowedOrigin     string
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

// AIConfig selects and configures the language model backend.
type AIConfig struct {
	LLMProvider    string
	GeneratorModel string
	Temperature    float64
	Timeout        time.Duration
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	GeminiAPIKey   string
	OllamaHost     string
}

// GitHubConfig holds the remote code store credentials. Either Token or the
// App triple (AppID, InstallationID, PrivateKeyPath) may be set; neither is required
// at startup.
type GitHubConfig struct {
	Token          string
	AppID          int64
	InstallationID int64
	PrivateKeyPath string
	APIBaseURL     string
	Timeout        time.Duration
}

// HasAppCredentials reports whether GitHub App installation auth is configured.
func (c GitHubConfig) HasAppCredentials() bool {
	return c.AppID != 0 && c.InstallationID != 0 && c.PrivateKeyPath != ""
}

// HasCredentials reports whether any GitHub credential is configured.
func (c GitHubConfig) HasCredentials() bool {
	return c.Token != "" || c.HasAppCredentials()
}

// Validate checks the AI settings for values the service cannot run with.
func (c AIConfig) Validate() error {
	if _, ok := DefaultModels[c.LLMProvider]; !ok {
		return fmt.Errorf("unsupported LLM provider: %s", c.LLMProvider)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2, got %v", c.Temperature)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return nil
}

// APIKey returns the credential for the configured provider and whether the
// provider requires one. Ollama runs without a key.
func (c AIConfig) APIKey() (key string, required bool) {
	switch c.LLMProvider {
	case ProviderOpenAI:
		return c.OpenAIAPIKey, true
	case ProviderGemini:
		return c.GeminiAPIKey, true
	default:
		return "", false
	}
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates the result. Missing credentials are not
// an error here; they are reported per request.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}

	return Load(v)
}

// Load builds a Config from an already populated viper instance.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	provider := strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER")))
	model := v.GetString("GENERATOR_MODEL_NAME")
	if model == "" {
		model = DefaultModels[provider]
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:              v.GetString("SERVER_PORT"),
			AllowedOrigin:     v.GetString("CORS_ALLOWED_ORIGIN"),
			RequestTimeout:    v.GetDuration("SERVER_REQUEST_TIMEOUT"),
			ShutdownTimeout:   v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			ReadHeaderTimeout: 10 * time.Second,
		},
		Logging: logger.Config{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
			Output: strings.ToLower(v.GetString("LOG_OUTPUT")),
		},
		AI: AIConfig{
			LLMProvider:    provider,
			GeneratorModel: model,
			Temperature:    v.GetFloat64("LLM_TEMPERATURE"),
			Timeout:        v.GetDuration("LLM_TIMEOUT"),
			OpenAIAPIKey:   v.GetString("OPENAI_API_KEY"),
			OpenAIBaseURL:  strings.TrimSuffix(v.GetString("OPENAI_BASE_URL"), "/"),
			GeminiAPIKey:   v.GetString("GEMINI_API_KEY"),
			OllamaHost:     v.GetString("OLLAMA_HOST"),
		},
		GitHub: GitHubConfig{
			Token:          v.GetString("GITHUB_TOKEN"),
			AppID:          v.GetInt64("GITHUB_APP_ID"),
			InstallationID: v.GetInt64("GITHUB_INSTALLATION_ID"),
			PrivateKeyPath: v.GetString("GITHUB_PRIVATE_KEY_PATH"),
			APIBaseURL:     v.GetString("GITHUB_API_URL"),
			Timeout:        v.GetDuration("GITHUB_TIMEOUT"),
		},
	}

	if err := cfg.AI.Validate(); err != nil {
		return nil, err
	}
	if cfg.GitHub.Timeout <= 0 {
		return nil, fmt.Errorf("GITHUB_TIMEOUT must be positive, got %s", cfg.GitHub.Timeout)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_REQUEST_TIMEOUT", 5*time.Minute)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("LLM_PROVIDER", ProviderOpenAI)
	v.SetDefault("LLM_TEMPERATURE", 0.1)
	v.SetDefault("LLM_TIMEOUT", 2*time.Minute)
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	v.SetDefault("GITHUB_TIMEOUT", 30*time.Second)
}
