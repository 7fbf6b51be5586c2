package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"talkscript/internal/app/api/provider"
)

// MockProvider is a testify mock of provider.Provider.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Transcribe(ctx context.Context, audio provider.Audio, language string) (string, error) {
	args := m.Called(ctx, audio, language)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) GenerateJSON(ctx context.Context, systemPrompt, userText string) (string, error) {
	args := m.Called(ctx, systemPrompt, userText)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

// ProviderCall records one call made to a StubProvider.
type ProviderCall struct {
	Operation string
	Filename  string
	Language  string
	Text      string
	Timestamp time.Time
	Error     error
}

// StubProvider is a configurable provider.Provider for tests that need
// realistic behavior without expectations: per-file responses and errors,
// latency that honors context cancellation, and call tracking.
type StubProvider struct {
	mu sync.Mutex

	Unconfigured     bool
	DefaultLatency   time.Duration
	DefaultResponse  string
	GenerateResponse string
	GenerateError    error
	ErrorMap         map[string]error
	ResponseMap      map[string]string
	LatencyMap       map[string]time.Duration
	CallHistory      []ProviderCall
}

// NewStubProvider creates a StubProvider with sensible defaults
func NewStubProvider() *StubProvider {
	return &StubProvider{
		DefaultResponse:  SampleTranscription,
		GenerateResponse: SampleScriptJSON,
		ErrorMap:         make(map[string]error),
		ResponseMap:      make(map[string]string),
		LatencyMap:       make(map[string]time.Duration),
	}
}

func (s *StubProvider) Name() string { return "stub" }

func (s *StubProvider) Configured() bool { return !s.Unconfigured }

// Transcribe implements provider.Transcriber.
func (s *StubProvider) Transcribe(ctx context.Context, audio provider.Audio, language string) (string, error) {
	s.mu.Lock()
	latency, ok := s.LatencyMap[audio.Filename]
	if !ok {
		latency = s.DefaultLatency
	}
	err := s.ErrorMap[audio.Filename]
	response, ok := s.ResponseMap[audio.Filename]
	if !ok {
		response = s.DefaultResponse
	}
	s.mu.Unlock()

	if waitErr := wait(ctx, latency); waitErr != nil {
		err = waitErr
	}
	s.track(ProviderCall{
		Operation: provider.OperationTranscribe,
		Filename:  audio.Filename,
		Language:  language,
		Timestamp: time.Now(),
		Error:     err,
	})
	if err != nil {
		return "", err
	}
	return response, nil
}

// GenerateJSON implements provider.JSONGenerator.
func (s *StubProvider) GenerateJSON(ctx context.Context, systemPrompt, userText string) (string, error) {
	s.mu.Lock()
	latency := s.DefaultLatency
	response, err := s.GenerateResponse, s.GenerateError
	s.mu.Unlock()

	if waitErr := wait(ctx, latency); waitErr != nil {
		err = waitErr
	}
	s.track(ProviderCall{
		Operation: provider.OperationGenerate,
		Text:      userText,
		Timestamp: time.Now(),
		Error:     err,
	})
	if err != nil {
		return "", err
	}
	return response, nil
}

// Calls returns a copy of the recorded calls.
func (s *StubProvider) Calls() []ProviderCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ProviderCall(nil), s.CallHistory...)
}

func (s *StubProvider) track(call ProviderCall) {
	s.mu.Lock()
	s.CallHistory = append(s.CallHistory, call)
	s.mu.Unlock()
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
