// Package usecase prompts a language model for AI use cases and splits the
// answer into display blocks.
package usecase

import (
	"context"
	"fmt"

	"github.com/agenthands/usecase-agent/internal/llm"
)

// NoReference stands in for the reference link when none was extracted.
const NoReference = "N/A"

const promptTemplate = `
Generate use cases for leveraging AI and Generative AI technologies in the given industry or for the company %s.
Format the output as follows:

Use Case [Number]: [Title]
Objective/Use Case: [Brief description of the objective or use case]
AI Application: [Description of how AI will be applied in this use case]
Cross-Functional Benefit:
- [Department/Function 1]: [Benefit description]
- [Department/Function 2]: [Benefit description]
Reference Links:
- Kaggle/GitHub/Hugging Face Dataset: %s

Search the Reference link in Kaggle, GitHub, or Hugging Face.
`

type Generator struct {
	LLM llm.LLMClient
}

func NewGenerator(llmClient llm.LLMClient) *Generator {
	return &Generator{LLM: llmClient}
}

// BuildPrompt embeds the subject and the first link, or NoReference.
func BuildPrompt(subject string, links []string) string {
	ref := NoReference
	if len(links) > 0 {
		ref = links[0]
	}
	return fmt.Sprintf(promptTemplate, subject, ref)
}

// Generate makes exactly one model call. Errors are returned as-is.
func (g *Generator) Generate(ctx context.Context, subject string, links []string) (llm.Response, error) {
	return g.LLM.Generate(ctx, BuildPrompt(subject, links))
}
