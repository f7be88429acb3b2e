package llm

import (
	"context"
	"fmt"
)

// ResponseKind tags how a provider answered.
type ResponseKind int

const (
	// TextResponse carries the model's text content.
	TextResponse ResponseKind = iota
	// RawResponse carries a string rendering of a provider reply that had no
	// text content.
	RawResponse
)

func (k ResponseKind) String() string {
	switch k {
	case TextResponse:
		return "text"
	case RawResponse:
		return "raw"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind as "text" or "raw".
func (k ResponseKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ResponseKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "text":
		*k = TextResponse
	case "raw":
		*k = RawResponse
	default:
		return fmt.Errorf("unknown response kind %q", b)
	}
	return nil
}

// Response is the result of a single generation call.
type Response struct {
	Kind    ResponseKind `json:"kind"`
	Content string       `json:"content,omitempty"`
	Raw     string       `json:"raw,omitempty"`
}

func NewTextResponse(content string) Response {
	return Response{Kind: TextResponse, Content: content}
}

func NewRawResponse(raw string) Response {
	return Response{Kind: RawResponse, Raw: raw}
}

// Text resolves the response to the string shown to users.
func (r Response) Text() string {
	if r.Kind == RawResponse {
		return r.Raw
	}
	return r.Content
}

type LLMClient interface {
	Generate(ctx context.Context, prompt string) (Response, error)
}
