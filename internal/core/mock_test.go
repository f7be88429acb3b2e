package core

import (
	"context"

	"github.com/agenthands/usecase-agent/internal/core/model"
	"github.com/agenthands/usecase-agent/internal/llm"
	"github.com/agenthands/usecase-agent/internal/search"
)

type MockSearch struct {
	Response search.Response
	Err      error
	Keys     []string
	Subjects []string
}

func (m *MockSearch) Search(ctx context.Context, subject string) (search.Response, error) {
	m.Subjects = append(m.Subjects, subject)
	if m.Err != nil {
		return search.Response{}, m.Err
	}
	return m.Response, nil
}

type MockLLM struct {
	Response llm.Response
	Err      error
	Prompts  []string
	Closed   bool
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (llm.Response, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return llm.Response{}, m.Err
	}
	return m.Response, nil
}

func (m *MockLLM) Close() error {
	m.Closed = true
	return nil
}

type MockRecorder struct {
	Runs []*model.Run
	Err  error
}

func (m *MockRecorder) RecordRun(ctx context.Context, run *model.Run) error {
	m.Runs = append(m.Runs, run)
	return m.Err
}
