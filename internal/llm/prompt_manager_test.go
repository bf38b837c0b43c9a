package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptManager_RenderReviewPrompts(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	system, err := pm.Render(ReviewSystemPrompt, DefaultProvider, nil)
	require.NoError(t, err)
	for _, dimension := range []string{"Correctness", "Time & Space Complexity", "Security", "Error Handling", "Readability", "Maintainability", "Performance", "Best Practices"} {
		assert.Contains(t, system, dimension)
	}
	assert.Contains(t, system, `"optimizedCode"`)

	user, err := pm.Render(ReviewUserPrompt, DefaultProvider, ReviewPromptData{
		Language: "Python",
		Code:     "print('<b>&')",
	})
	require.NoError(t, err)
	assert.Equal(t, "Review the following Python code and provide a structured analysis:\n\n```Python\nprint('<b>&')\n```", user)
}

func TestPromptManager_ProviderFallback(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	defaultSystem, err := pm.Render(ReviewSystemPrompt, DefaultProvider, nil)
	require.NoError(t, err)

	ollamaSystem, err := pm.Render(ReviewSystemPrompt, "ollama", nil)
	require.NoError(t, err)
	assert.NotEqual(t, defaultSystem, ollamaSystem)
	assert.Contains(t, ollamaSystem, defaultSystem)

	geminiSystem, err := pm.Render(ReviewSystemPrompt, "gemini", nil)
	require.NoError(t, err)
	assert.Equal(t, defaultSystem, geminiSystem)

	_, err = pm.Render("unknown", DefaultProvider, nil)
	assert.Error(t, err)
}

func TestSplitPromptName(t *testing.T) {
	tests := []struct {
		fileName     string
		wantKey      PromptKey
		wantProvider ModelProvider
		wantErr      bool
	}{
		{fileName: "review_system_default.prompt", wantKey: ReviewSystemPrompt, wantProvider: DefaultProvider},
		{fileName: "review_user_ollama.prompt", wantKey: ReviewUserPrompt, wantProvider: "ollama"},
		{fileName: "review.prompt", wantErr: true},
		{fileName: "_default.prompt", wantErr: true},
		{fileName: "review_.prompt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			key, provider, err := splitPromptName(tt.fileName)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantProvider, provider)
		})
	}
}
