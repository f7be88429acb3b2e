package usecase

import (
	"regexp"
	"strings"

	"github.com/agenthands/usecase-agent/internal/core/model"
)

const (
	sectionSeparator = "\n\n"

	objectiveLabel = "Objective/Use Case:"
	aiAppLabel     = "AI Application:"
	benefitLabel   = "Cross-Functional Benefit:"
)

// caseHeader matches "Use Case" only where it starts a line, so the
// "Objective/Use Case:" label does not open a new block. Markdown heading
// and bold markers in front of it are tolerated.
var caseHeader = regexp.MustCompile(`(?m)^[ \t#*]*Use Case`)

// ParseUseCases splits generated text into use cases. Each block after a
// "Use Case" header is split on blank lines; blocks with fewer than four
// sections fall back to locating the three labels, and are dropped if that
// fails too. The model is free to ignore the requested layout, so this never
// errors and may return nothing.
func ParseUseCases(text string) []model.UseCase {
	blocks := caseHeader.Split(text, -1)
	if len(blocks) < 2 {
		return nil
	}

	var cases []model.UseCase
	for _, block := range blocks[1:] {
		if uc, ok := parseSections(block); ok {
			cases = append(cases, uc)
			continue
		}
		if uc, ok := parseLabels(block); ok {
			cases = append(cases, uc)
		}
	}
	return cases
}

func parseSections(block string) (model.UseCase, bool) {
	parts := strings.Split(block, sectionSeparator)
	if len(parts) < 4 {
		return model.UseCase{}, false
	}
	return model.UseCase{
		Title:         cleanTitle(parts[0]),
		Objective:     stripLabel(parts[1], objectiveLabel),
		AIApplication: stripLabel(parts[2], aiAppLabel),
		Benefits:      stripLabel(parts[3], benefitLabel),
	}, true
}

// parseLabels handles blocks where the sections sit on consecutive lines.
func parseLabels(block string) (model.UseCase, bool) {
	obj := strings.Index(block, objectiveLabel)
	app := strings.Index(block, aiAppLabel)
	ben := strings.Index(block, benefitLabel)
	if obj < 0 || app < obj || ben < app {
		return model.UseCase{}, false
	}

	benefits := block[ben+len(benefitLabel):]
	// Reference links and anything after belong to no display section.
	if i := strings.Index(benefits, "Reference Links:"); i >= 0 {
		benefits = benefits[:i]
	}

	return model.UseCase{
		Title:         cleanTitle(block[:obj]),
		Objective:     trimMarkup(block[obj+len(objectiveLabel) : app]),
		AIApplication: trimMarkup(block[app+len(aiAppLabel) : ben]),
		Benefits:      trimMarkup(benefits),
	}, true
}

// markup is trimmed from both ends of every field, covering bold and heading
// markers around labels and headers.
const markup = " \t\r\n*#"

func trimMarkup(s string) string {
	return strings.Trim(s, markup)
}

// cleanTitle also drops bold markers inside the header, as in
// "**Use Case 1:** Fraud Detection".
func cleanTitle(s string) string {
	return trimMarkup(strings.ReplaceAll(s, "**", ""))
}

func stripLabel(s, label string) string {
	return trimMarkup(strings.TrimPrefix(trimMarkup(s), label))
}
