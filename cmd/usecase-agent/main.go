// Command usecase-agent researches a company or industry and asks a language
// model for AI use cases, either from a web form or the command line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/usecase-agent/internal/config"
	"github.com/agenthands/usecase-agent/internal/core"
	"github.com/agenthands/usecase-agent/internal/driver"
	"github.com/agenthands/usecase-agent/internal/logger"
	"github.com/agenthands/usecase-agent/internal/search"
)

var rootCmd = &cobra.Command{
	Use:   "usecase-agent",
	Short: "Industry research and AI use case generator",
	Long: `usecase-agent searches the web for a company or industry, collects
Kaggle, GitHub and Hugging Face reference links, and asks a language model
for structured AI use cases.

Run "serve" for the web form or "generate" for a single run.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: $CONFIG_PATH or config/config.toml)")
}

// app holds everything a subcommand needs; close releases the graph driver.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	pipeline *core.Pipeline
	recorder *driver.Recorder
	close    func()
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config/config.toml"
	}
	return config.LoadOrDefault(path)
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	a := &app{cfg: cfg, log: log, close: func() { _ = log.Sync() }}

	var recorder core.RunRecorder
	if cfg.Memgraph.URI != "" {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, log)
		if err != nil {
			// The run graph is an audit trail; the pipeline works without it.
			log.Warn("memgraph unavailable, runs will not be recorded", zap.Error(err))
		} else {
			_ = d.BuildIndices(ctx)
			a.recorder = driver.NewRecorder(d)
			recorder = a.recorder
			a.close = func() {
				_ = d.Close(context.Background())
				_ = log.Sync()
			}
		}
	}

	searchClient := search.NewClient(cfg.Search.APIKey,
		search.WithBaseURL(cfg.Search.BaseURL),
		search.WithTimeout(cfg.Search.Timeout()),
	)

	log.Info("configuration loaded",
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("llm_model", cfg.LLM.Model),
		zap.Float64("temperature", cfg.LLM.Temperature),
		zap.String("search_key", logger.MaskKey(cfg.Search.APIKey)),
		zap.String("links_file", cfg.Links.File),
	)

	a.pipeline = core.NewPipeline(cfg, searchClient, recorder, log)
	return a, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using environment")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
