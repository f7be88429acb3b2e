package model

import (
	"time"

	"github.com/agenthands/usecase-agent/internal/llm"
	"github.com/agenthands/usecase-agent/internal/search"
)

// Run is everything one pipeline invocation produced.
type Run struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`

	// SearchError is set when the search phase failed; nothing after it ran.
	SearchError string `json:"search_error,omitempty"`

	Organic    []search.OrganicResult `json:"organic,omitempty"`
	HasOrganic bool                   `json:"has_organic"`
	Links      []string               `json:"links"`

	Generation *llm.Response `json:"generation,omitempty"`
	UseCases   []UseCase     `json:"use_cases,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// Failed reports whether the search phase short-circuited the run.
func (r *Run) Failed() bool {
	return r.SearchError != ""
}

// UseCaseText is the resolved generation text, empty when nothing ran.
func (r *Run) UseCaseText() string {
	if r.Generation == nil {
		return ""
	}
	return r.Generation.Text()
}
