package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chatBody = `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Use Case 1: Vision QA\n\nObjective/Use Case: Inspect parts.\n\nAI Application: Defect detection.\n\nCross-Functional Benefit:\n- Quality: fewer returns."},"finish_reason":"stop"}]}`

// setupEnv points the search and chat clients at fakes and returns the links
// file path.
func setupEnv(t *testing.T, searchStatus int) string {
	t.Helper()

	serper := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if searchStatus != http.StatusOK {
			w.WriteHeader(searchStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"organic":[{"title":"Acme","link":"https://github.com/acme/vision","snippet":"robots"}]}`))
	}))
	t.Cleanup(serper.Close)

	chat := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatBody))
	}))
	t.Cleanup(chat.Close)

	file := filepath.Join(t.TempDir(), "links.txt")
	t.Setenv("SEARCH_BASE_URL", serper.URL)
	t.Setenv("SEARCH_API_KEY", "search-key")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_BASE_URL", chat.URL)
	t.Setenv("LLM_API_KEY", "llm-key")
	t.Setenv("LINKS_FILE", file)
	t.Setenv("MEMGRAPH_URI", "")
	t.Setenv("LOG_LEVEL", "error")
	return file
}

func runGenerate(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	base := []string{"generate", "--config", filepath.Join(t.TempDir(), "missing.toml")}
	rootCmd.SetArgs(append(base, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerate_PrintsRun(t *testing.T) {
	file := setupEnv(t, http.StatusOK)

	out, err := runGenerate(t, "--subject", "Acme", "--json=false")
	require.NoError(t, err)

	assert.Contains(t, out, "Industry Research Output:")
	assert.Contains(t, out, "### Acme\nrobots")
	assert.Contains(t, out, "- https://github.com/acme/vision")
	assert.Contains(t, out, "#### 1: Vision QA")
	assert.Contains(t, out, "### Objective/Use Case:\nInspect parts.")

	saved, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(saved), "https://github.com/acme/vision\n")
}

func TestGenerate_JSON(t *testing.T) {
	setupEnv(t, http.StatusOK)

	out, err := runGenerate(t, "--subject", "Acme", "--json=true")
	require.NoError(t, err)

	var run map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &run))
	assert.Equal(t, "Acme", run["subject"])
	assert.Equal(t, "text", run["generation"].(map[string]any)["kind"])
}

func TestGenerate_SearchFailure(t *testing.T) {
	setupEnv(t, http.StatusForbidden)

	out, err := runGenerate(t, "--subject", "Acme", "--json=false")
	require.Error(t, err)

	assert.Contains(t, out, "Unauthorized access: 403 Forbidden.")
	assert.NotContains(t, out, "Generated Use Cases:")
}
