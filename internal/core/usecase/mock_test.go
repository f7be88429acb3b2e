package usecase

import (
	"context"

	"github.com/agenthands/usecase-agent/internal/llm"
)

type MockLLMClient struct {
	Response llm.Response
	Err      error
	Prompts  []string
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (llm.Response, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return llm.Response{}, m.Err
	}
	return m.Response, nil
}
