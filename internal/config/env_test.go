package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAPIKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "  sk-1234567890abcdef1234567890abcdef \n")
	t.Setenv("GEMINI_API_KEY", "")

	keys := GetAPIKeys()
	assert.Equal(t, "sk-1234567890abcdef1234567890abcdef", keys.OpenAI)
	assert.Empty(t, keys.Gemini)
	assert.Equal(t, []string{"openai"}, keys.Available())
	assert.Equal(t, keys.OpenAI, keys.For(ProviderOpenAI))
	assert.Empty(t, keys.For(ProviderGemini))
	assert.Empty(t, keys.For("unknown"))
}

func TestAPIKeys_Validate(t *testing.T) {
	testCases := []struct {
		name          string
		openaiKey     string
		geminiKey     string
		expectError   bool
		errorContains string
	}{
		{
			name:        "no keys",
			expectError: false,
		},
		{
			name:        "valid OpenAI key",
			openaiKey:   "sk-1234567890abcdef1234567890abcdef",
			expectError: false,
		},
		{
			name:        "valid Gemini key",
			geminiKey:   "AIzaTest-1234567890abcdef1234567890",
			expectError: false,
		},
		{
			name:        "both valid keys",
			openaiKey:   "sk-1234567890abcdef1234567890abcdef",
			geminiKey:   "AIzaTest-1234567890abcdef1234567890",
			expectError: false,
		},
		{
			name:          "invalid OpenAI key format",
			openaiKey:     "invalid-key",
			expectError:   true,
			errorContains: "invalid OPENAI_API_KEY format",
		},
		{
			name:          "OpenAI key too short",
			openaiKey:     "sk-short",
			expectError:   true,
			errorContains: "too short",
		},
		{
			name:          "invalid Gemini key format",
			geminiKey:     "invalid-gemini-key-1234567890abcdef",
			expectError:   true,
			errorContains: "invalid GEMINI_API_KEY format",
		},
		{
			name:          "Gemini key too short",
			geminiKey:     "AIzaShort",
			expectError:   true,
			errorContains: "too short",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			keys := &APIKeys{OpenAI: tc.openaiKey, Gemini: tc.geminiKey}
			err := keys.Validate()

			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TALKSCRIPT_TEST_VALUE=from-dotenv\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("TALKSCRIPT_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("TALKSCRIPT_TEST_VALUE"))

	path, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", path)
	assert.Equal(t, "from-dotenv", os.Getenv("TALKSCRIPT_TEST_VALUE"))
}

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()
	require.NoError(t, err)
	assert.NotEmpty(t, root)

	// Verify go.mod exists in the found root
	_, err = os.Stat(filepath.Join(root, "go.mod"))
	assert.NoError(t, err, "go.mod should exist in project root")
}
