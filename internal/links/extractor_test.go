package links

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  []string
	}{
		{
			name:  "order within a string",
			texts: []string{"see https://github.com/a/b and https://kaggle.com/c/d"},
			want:  []string{"https://github.com/a/b", "https://kaggle.com/c/d"},
		},
		{
			name: "order across strings",
			texts: []string{
				"Hugging Face Model Hub: https://huggingface.co/models",
				"nothing here",
				"GitHub Repository: https://github.com/user/repo",
			},
			want: []string{"https://huggingface.co/models", "https://github.com/user/repo"},
		},
		{
			name:  "missing scheme still matches",
			texts: []string{"mirror at www.kaggle.com/datasets/x and github.com/y/z"},
			want:  []string{"www.kaggle.com/datasets/x", "github.com/y/z"},
		},
		{
			name:  "duplicates are kept",
			texts: []string{"https://github.com/a/b", "https://github.com/a/b"},
			want:  []string{"https://github.com/a/b", "https://github.com/a/b"},
		},
		{
			name:  "other domains ignored",
			texts: []string{"https://gitlab.com/a/b https://example.com/x https://kaggle.org/y"},
			want:  []string{},
		},
		{
			name:  "domain without path",
			texts: []string{"visit https://github.com today"},
			want:  []string{},
		},
		{
			name:  "no input",
			texts: nil,
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.texts))
		})
	}
}

func TestExtract_CountMatchesPerString(t *testing.T) {
	texts := []string{
		"https://kaggle.com/a https://kaggle.com/b https://huggingface.co/c",
		"",
		"http://www.github.com/d",
	}

	got := Extract(texts)
	assert.Len(t, got, 4)
	assert.Equal(t, "http://www.github.com/d", got[3])
}

func TestSaveToFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extracted_links.txt")
	links := []string{"https://github.com/a/b", "https://kaggle.com/c/d"}

	require.NoError(t, SaveToFile(path, links))
	require.NoError(t, SaveToFile(path, links))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/a/b\nhttps://kaggle.com/c/d\n", string(data))
}

func TestSaveToFile_EmptyTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extracted_links.txt")
	require.NoError(t, SaveToFile(path, []string{"https://github.com/a/b"}))
	require.NoError(t, SaveToFile(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSaveToFile_BadPath(t *testing.T) {
	err := SaveToFile(filepath.Join(t.TempDir(), "missing", "links.txt"), []string{"x"})
	assert.Error(t, err)
}

func TestDomain(t *testing.T) {
	assert.Equal(t, "huggingface.co", Domain("huggingface.co/models"))
	assert.Equal(t, "github.com", Domain("https://www.github.com/a/b"))
	assert.Equal(t, "kaggle.com", Domain("kaggle.com/datasets/x"))
	assert.Equal(t, "", Domain("https://example.com"))

	// Only the host counts, not domains mentioned in the path.
	assert.Equal(t, "github.com", Domain("https://github.com/x/kaggle.com-mirror"))
	assert.Equal(t, "", Domain("https://example.com/github.com/x"))
}
