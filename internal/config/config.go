package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultPort        = "8080"
	DefaultSearchURL   = "https://google.serper.dev"
	DefaultProvider    = "groq"
	DefaultModel       = "mixtral-8x7b-32768"
	DefaultTemperature = 0.5
	DefaultLinksFile   = "extracted_links.txt"
	DefaultSubject     = "ABC Health Solutions"
)

// DefaultSeeds are scanned for reference links ahead of the search results.
var DefaultSeeds = []string{
	"Kaggle Dataset for Predictive Maintenance: https://www.kaggle.com/datasets/shivamb/machine-predictive-maintenance-classification",
	"GitHub Repository for Data Analysis: https://github.com/user/repo",
	"Hugging Face Model Hub: https://huggingface.co/models",
}

type ServerConfig struct {
	Port           string `toml:"port"`
	DefaultSubject string `toml:"default_subject"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type SearchConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	// TimeoutSeconds bounds a single search call; 0 disables the timeout.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

func (s SearchConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

type LLMConfig struct {
	Provider    string  `toml:"provider"`
	Model       string  `toml:"model"`
	APIKey      string  `toml:"api_key"`
	BaseURL     string  `toml:"base_url"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
}

type LinksConfig struct {
	File  string   `toml:"file"`
	Seeds []string `toml:"seeds"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
	Search   SearchConfig   `toml:"search"`
	LLM      LLMConfig      `toml:"llm"`
	Links    LinksConfig    `toml:"links"`
	Memgraph MemgraphConfig `toml:"memgraph"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: DefaultPort, DefaultSubject: DefaultSubject},
		Log:    LogConfig{Level: "info", Format: "text"},
		Search: SearchConfig{BaseURL: DefaultSearchURL, TimeoutSeconds: 30},
		LLM: LLMConfig{
			Provider:    DefaultProvider,
			Model:       DefaultModel,
			Temperature: DefaultTemperature,
			MaxTokens:   1024,
		},
		Links: LinksConfig{
			File:  DefaultLinksFile,
			Seeds: append([]string(nil), DefaultSeeds...),
		},
	}
}

// Load reads a TOML file on top of Default. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the file
// does not exist. Env overrides are applied in both cases.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides file values with environment variables when set.
func (c *Config) ApplyEnv() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString("PORT", &c.Server.Port)
	setString("LOG_LEVEL", &c.Log.Level)
	setString("LOG_FORMAT", &c.Log.Format)
	setString("SEARCH_API_KEY", &c.Search.APIKey)
	setString("SEARCH_BASE_URL", &c.Search.BaseURL)
	setString("LLM_PROVIDER", &c.LLM.Provider)
	setString("LLM_MODEL", &c.LLM.Model)
	setString("LLM_API_KEY", &c.LLM.APIKey)
	setString("LLM_BASE_URL", &c.LLM.BaseURL)
	setString("LINKS_FILE", &c.Links.File)
	setString("MEMGRAPH_URI", &c.Memgraph.URI)
	setString("MEMGRAPH_USER", &c.Memgraph.User)
	setString("MEMGRAPH_PASSWORD", &c.Memgraph.Password)

	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid LLM_TEMPERATURE %q: %w", v, err)
		}
		c.LLM.Temperature = t
	}

	return nil
}
