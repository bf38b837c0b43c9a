package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.AllowedOrigin)
	assert.Equal(t, ProviderOpenAI, cfg.AI.LLMProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.GeneratorModel)
	assert.InDelta(t, 0.1, cfg.AI.Temperature, 1e-9)
	assert.Equal(t, 2*time.Minute, cfg.AI.Timeout)
	assert.Equal(t, 30*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.GitHub.HasCredentials())
}

func TestLoad_MissingCredentialsDoNotFail(t *testing.T) {
	v := viper.New()
	v.Set("LLM_PROVIDER", "gemini")

	cfg, err := Load(v)
	require.NoError(t, err)

	key, required := cfg.AI.APIKey()
	assert.Empty(t, key)
	assert.True(t, required)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.GeneratorModel)
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("LLM_PROVIDER", "Ollama")
	v.Set("GENERATOR_MODEL_NAME", "qwen2.5-coder")
	v.Set("LLM_TIMEOUT", "45s")
	v.Set("GITHUB_TOKEN", "ghp_test")
	v.Set("OPENAI_BASE_URL", "http://localhost:9999/v1/")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, ProviderOllama, cfg.AI.LLMProvider)
	assert.Equal(t, "qwen2.5-coder", cfg.AI.GeneratorModel)
	assert.Equal(t, 45*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "http://localhost:9999/v1", cfg.AI.OpenAIBaseURL)
	assert.True(t, cfg.GitHub.HasCredentials())

	_, required := cfg.AI.APIKey()
	assert.False(t, required)
}

func TestAIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  AIConfig
		wantErr bool
	}{
		{
			name:    "Valid config",
			config:  AIConfig{LLMProvider: ProviderOpenAI, Temperature: 0.1, Timeout: time.Minute},
			wantErr: false,
		},
		{
			name:    "Unknown provider",
			config:  AIConfig{LLMProvider: "anthropic", Temperature: 0.1, Timeout: time.Minute},
			wantErr: true,
		},
		{
			name:    "Temperature out of range",
			config:  AIConfig{LLMProvider: ProviderGemini, Temperature: 3, Timeout: time.Minute},
			wantErr: true,
		},
		{
			name:    "Zero timeout",
			config:  AIConfig{LLMProvider: ProviderOllama, Temperature: 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("AIConfig.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGitHubConfig_HasAppCredentials(t *testing.T) {
	assert.False(t, GitHubConfig{AppID: 1}.HasAppCredentials())
	assert.True(t, GitHubConfig{AppID: 1, InstallationID: 2, PrivateKeyPath: "key.pem"}.HasAppCredentials())
	assert.True(t, GitHubConfig{AppID: 1, InstallationID: 2, PrivateKeyPath: "key.pem"}.HasCredentials())
}
