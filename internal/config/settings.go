package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"talkscript/internal/app/script"
)

// Provider kinds understood by the server.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// DefaultSettingsPath is probed when no explicit settings file is given.
const DefaultSettingsPath = "config/talkscript.yaml"

// Settings is the complete runtime configuration of the service.
type Settings struct {
	Server   ServerSettings   `yaml:"server"`
	Provider ProviderSettings `yaml:"provider"`
	Script   ScriptSettings   `yaml:"script"`
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Host           string        `yaml:"host"`
	Port           string        `yaml:"port" validate:"required,numeric"`
	Environment    string        `yaml:"environment" validate:"oneof=development production"`
	ReadTimeout    time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout   time.Duration `yaml:"write_timeout" validate:"gte=0"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" validate:"gte=0"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes" validate:"gt=0"`
	AllowOrigins   []string      `yaml:"allow_origins"`
}

// ProviderSettings selects and configures the external AI provider.
type ProviderSettings struct {
	Kind     string         `yaml:"kind" validate:"oneof=openai gemini"`
	Language string         `yaml:"language" validate:"required"`
	OpenAI   OpenAISettings `yaml:"openai"`
	Gemini   GeminiSettings `yaml:"gemini"`
}

// OpenAISettings configures the OpenAI-compatible provider.
type OpenAISettings struct {
	TranscriptionModel string `yaml:"transcription_model" validate:"required"`
	ChatModel          string `yaml:"chat_model" validate:"required"`
	BaseURL            string `yaml:"base_url" validate:"omitempty,url"`
}

// GeminiSettings configures the Gemini provider.
type GeminiSettings struct {
	Model   string `yaml:"model" validate:"required"`
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
}

// ScriptSettings holds the generation policy: prompt and output labels.
type ScriptSettings struct {
	SystemPrompt string `yaml:"system_prompt" validate:"required"`
	SummaryLabel string `yaml:"summary_label" validate:"required"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Server: ServerSettings{
			Host:           "",
			Port:           "8080",
			Environment:    "development",
			ReadTimeout:    60 * time.Second,
			WriteTimeout:   5 * time.Minute,
			IdleTimeout:    2 * time.Minute,
			MaxUploadBytes: 25 << 20,
			AllowOrigins:   []string{"*"},
		},
		Provider: ProviderSettings{
			Kind:     ProviderOpenAI,
			Language: "ja",
			OpenAI: OpenAISettings{
				TranscriptionModel: "whisper-1",
				ChatModel:          "gpt-4o-mini",
			},
			Gemini: GeminiSettings{
				Model: "gemini-2.0-flash",
			},
		},
		Script: ScriptSettings{
			SystemPrompt: script.DefaultSystemPrompt,
			SummaryLabel: script.DefaultSummaryLabel,
		},
	}
}

// LoadSettings builds the effective settings: defaults, then the YAML file
// (explicit path, or DefaultSettingsPath if it exists), then environment
// overrides. The result is validated before it is returned.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path == "" {
		if _, err := os.Stat(DefaultSettingsPath); err == nil {
			path = DefaultSettingsPath
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
		}
	}

	settings.expandEnvironmentVariables()
	if err := settings.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

// Validate checks the settings against their struct tags.
func (s *Settings) Validate() error {
	return validator.New().Struct(s)
}

// Address returns the listen address.
func (s *ServerSettings) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func (s *Settings) expandEnvironmentVariables() {
	s.Provider.OpenAI.BaseURL = os.ExpandEnv(s.Provider.OpenAI.BaseURL)
	s.Provider.Gemini.BaseURL = os.ExpandEnv(s.Provider.Gemini.BaseURL)
}

// applyEnvOverrides lets TALKSCRIPT_* variables replace file values. The model
// overrides are per provider: OpenAI has separate transcription and chat
// models, Gemini uses one model for both.
func (s *Settings) applyEnvOverrides() error {
	overrides := map[string]*string{
		"TALKSCRIPT_HOST":                &s.Server.Host,
		"TALKSCRIPT_PORT":                &s.Server.Port,
		"TALKSCRIPT_ENV":                 &s.Server.Environment,
		"TALKSCRIPT_PROVIDER":            &s.Provider.Kind,
		"TALKSCRIPT_LANGUAGE":            &s.Provider.Language,
		"TALKSCRIPT_CHAT_MODEL":          &s.Provider.OpenAI.ChatModel,
		"TALKSCRIPT_TRANSCRIPTION_MODEL": &s.Provider.OpenAI.TranscriptionModel,
		"TALKSCRIPT_GEMINI_MODEL":        &s.Provider.Gemini.Model,
		"OPENAI_BASE_URL":                &s.Provider.OpenAI.BaseURL,
	}
	for name, target := range overrides {
		if value, ok := os.LookupEnv(name); ok && value != "" {
			*target = value
		}
	}

	if promptFile := os.Getenv("TALKSCRIPT_SYSTEM_PROMPT_FILE"); promptFile != "" {
		data, err := os.ReadFile(promptFile)
		if err != nil {
			return fmt.Errorf("failed to read system prompt file: %w", err)
		}
		s.Script.SystemPrompt = string(data)
	}

	if raw := os.Getenv("TALKSCRIPT_MAX_UPLOAD_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TALKSCRIPT_MAX_UPLOAD_BYTES: %w", err)
		}
		s.Server.MaxUploadBytes = n
	}

	return nil
}
