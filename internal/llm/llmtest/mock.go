// Package llmtest provides an llm.Client double for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/jonathan/proposal-studio/internal/llm"
)

// MockClient is a function-field implementation of llm.Client that records every request.
type MockClient struct {
	GenerateContentFunc func(ctx context.Context, req llm.Request) (string, error)
	GenerateJSONFunc    func(ctx context.Context, req llm.Request) (string, error)
	CloseFunc           func() error

	mu       sync.Mutex
	requests []llm.Request
}

// GenerateContent records req and delegates to GenerateContentFunc.
func (m *MockClient) GenerateContent(ctx context.Context, req llm.Request) (string, error) {
	m.record(req)
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, req)
	}
	return "", nil
}

// GenerateJSON records req and delegates to GenerateJSONFunc.
func (m *MockClient) GenerateJSON(ctx context.Context, req llm.Request) (string, error) {
	m.record(req)
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, req)
	}
	return "{}", nil
}

func (m *MockClient) GetModel(_ llm.ModelTier) string {
	return "mock-model"
}

func (m *MockClient) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Requests returns the requests seen so far.
func (m *MockClient) Requests() []llm.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]llm.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Calls returns how many generation calls were made.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *MockClient) record(req llm.Request) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
}

// Text returns a MockClient whose free-text calls answer with text.
func Text(text string) *MockClient {
	return &MockClient{
		GenerateContentFunc: func(context.Context, llm.Request) (string, error) { return text, nil },
	}
}

// JSON returns a MockClient whose JSON calls answer with body.
func JSON(body string) *MockClient {
	return &MockClient{
		GenerateJSONFunc: func(context.Context, llm.Request) (string, error) { return body, nil },
	}
}

// Failing returns a MockClient whose calls all fail with err.
func Failing(err error) *MockClient {
	return &MockClient{
		GenerateContentFunc: func(context.Context, llm.Request) (string, error) { return "", err },
		GenerateJSONFunc:    func(context.Context, llm.Request) (string, error) { return "", err },
	}
}
