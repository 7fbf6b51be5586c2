package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI string
	Gemini string
}

// envPaths are probed in order; the first existing file wins.
var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads environment variables from the first .env file found,
// falling back to the .env next to go.mod. A missing file is not an error:
// variables may be set system-wide. It returns the path that was loaded, or
// "" if none was found.
func LoadEnv() (string, error) {
	candidates := envPaths
	if root, err := GetProjectRoot(); err == nil {
		candidates = append(append([]string(nil), envPaths...), filepath.Join(root, ".env"))
	}

	for _, envPath := range candidates {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// GetAPIKeys reads API keys from environment variables. Empty keys are
// allowed here; whether a key is required is decided per request.
func GetAPIKeys() *APIKeys {
	return &APIKeys{
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Gemini: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}
}

// Validate performs basic format checks on the keys that are present.
func (k *APIKeys) Validate() error {
	if k.OpenAI != "" {
		if !strings.HasPrefix(k.OpenAI, "sk-") {
			return fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(k.OpenAI) < 20 {
			return fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	}

	if k.Gemini != "" {
		if !strings.HasPrefix(k.Gemini, "AIza") {
			return fmt.Errorf("invalid GEMINI_API_KEY format: must start with 'AIza'")
		}
		if len(k.Gemini) < 30 {
			return fmt.Errorf("invalid GEMINI_API_KEY format: too short")
		}
	}

	return nil
}

// Available lists the providers with a configured key.
func (k *APIKeys) Available() []string {
	var available []string
	if k.OpenAI != "" {
		available = append(available, "openai")
	}
	if k.Gemini != "" {
		available = append(available, "gemini")
	}
	return available
}

// For returns the key for the given provider kind.
func (k *APIKeys) For(kind string) string {
	switch kind {
	case ProviderOpenAI:
		return k.OpenAI
	case ProviderGemini:
		return k.Gemini
	default:
		return ""
	}
}

// GetProjectRoot finds the project root directory by looking for go.mod
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}
