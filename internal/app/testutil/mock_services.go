package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"talkscript/internal/api/dto"
	"talkscript/internal/app/api/provider"
	"talkscript/internal/app/script"
)

// MockServices contains all mock services for testing
type MockServices struct {
	TranscriptionService *MockTranscriptionService
	ScriptService        *MockScriptService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		TranscriptionService: NewMockTranscriptionService(t),
		ScriptService:        NewMockScriptService(t),
	}
}

// AssertExpectations asserts expectations on every mock.
func (ms *MockServices) AssertExpectations(t *testing.T) {
	ms.TranscriptionService.AssertExpectations(t)
	ms.ScriptService.AssertExpectations(t)
}

// MockTranscriptionService is a mock implementation of TranscriptionService
type MockTranscriptionService struct {
	mock.Mock
}

func NewMockTranscriptionService(t *testing.T) *MockTranscriptionService {
	m := &MockTranscriptionService{}
	m.Test(t)
	return m
}

func (m *MockTranscriptionService) Ready() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTranscriptionService) Transcribe(ctx context.Context, audio provider.Audio) (*dto.TranscriptionResponse, error) {
	args := m.Called(ctx, audio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptionResponse), args.Error(1)
}

// MockScriptService is a mock implementation of ScriptService
type MockScriptService struct {
	mock.Mock
}

func NewMockScriptService(t *testing.T) *MockScriptService {
	m := &MockScriptService{}
	m.Test(t)
	return m
}

func (m *MockScriptService) Ready() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockScriptService) GenerateScript(ctx context.Context, text string) (*script.Document, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*script.Document), args.Error(1)
}
