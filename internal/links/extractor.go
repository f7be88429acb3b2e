// Package links finds dataset and code-hosting references in free text.
package links

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Pattern matches kaggle.com, github.com and huggingface.co URLs. Scheme and
// "www." are optional; the path is the following run of non-space characters.
// The first submatch is the host.
var Pattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?(kaggle\.com|github\.com|huggingface\.co)/\S+`)

var linkHost = regexp.MustCompile("^" + Pattern.String())

// Domain returns the host of a link accepted by Pattern, or "" when link
// does not start with one.
func Domain(link string) string {
	m := linkHost.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return m[1]
}

// Extract returns every match in texts, in input order and left to right
// within each string. Duplicates are kept.
func Extract(texts []string) []string {
	out := []string{}
	for _, t := range texts {
		out = append(out, Pattern.FindAllString(t, -1)...)
	}
	return out
}

// SaveToFile writes one link per line, replacing any previous content.
func SaveToFile(path string, links []string) error {
	var b strings.Builder
	for _, l := range links {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing links to %s: %w", path, err)
	}
	return nil
}
