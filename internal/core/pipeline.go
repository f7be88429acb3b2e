package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agenthands/usecase-agent/internal/config"
	"github.com/agenthands/usecase-agent/internal/core/model"
	"github.com/agenthands/usecase-agent/internal/core/usecase"
	"github.com/agenthands/usecase-agent/internal/links"
	"github.com/agenthands/usecase-agent/internal/llm"
	"github.com/agenthands/usecase-agent/internal/metrics"
	"github.com/agenthands/usecase-agent/internal/search"
)

// ErrEmptySubject is returned before any network call when no subject is given.
var ErrEmptySubject = errors.New("subject is empty")

type SearchClient interface {
	Search(ctx context.Context, subject string) (search.Response, error)
}

type RunRecorder interface {
	RecordRun(ctx context.Context, run *model.Run) error
}

// Input is everything the caller supplies for one run. Blank keys fall back
// to the configured ones.
type Input struct {
	Subject      string `json:"subject" form:"subject"`
	SearchAPIKey string `json:"search_api_key" form:"search_api_key"`
	LLMAPIKey    string `json:"llm_api_key" form:"llm_api_key"`
}

type Pipeline struct {
	NewSearch func(apiKey string) SearchClient
	NewLLM    func(ctx context.Context, apiKey string) (llm.LLMClient, error)
	Recorder  RunRecorder

	Seeds     []string
	LinksFile string

	Logger        *zap.Logger
	Now           func() time.Time
	UUIDGenerator func() string
}

// NewPipeline wires the production search and LLM clients from cfg.
// recorder may be nil.
func NewPipeline(cfg *config.Config, searchClient *search.Client, recorder RunRecorder, log *zap.Logger) *Pipeline {
	llmCfg := cfg.LLM
	searchKey := cfg.Search.APIKey

	return &Pipeline{
		NewSearch: func(apiKey string) SearchClient {
			if apiKey == "" {
				apiKey = searchKey
			}
			return searchClient.WithAPIKey(apiKey)
		},
		NewLLM: func(ctx context.Context, apiKey string) (llm.LLMClient, error) {
			c := llmCfg
			if apiKey != "" {
				c.APIKey = apiKey
			}
			return llm.NewClient(ctx, c)
		},
		Recorder:      recorder,
		Seeds:         cfg.Links.Seeds,
		LinksFile:     cfg.Links.File,
		Logger:        log,
		Now:           time.Now,
		UUIDGenerator: func() string { return uuid.New().String() },
	}
}

// Run searches, extracts and saves links, then generates use cases.
//
// A search failure is not an error: the run comes back with SearchError set
// and nothing else attempted. A generation failure is returned to the caller
// together with the partial run.
func (p *Pipeline) Run(ctx context.Context, in Input) (*model.Run, error) {
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return nil, ErrEmptySubject
	}

	run := &model.Run{
		ID:        p.UUIDGenerator(),
		Subject:   subject,
		CreatedAt: p.Now().UTC(),
		Links:     []string{},
	}
	log := p.Logger.With(zap.String("run_id", run.ID), zap.String("subject", subject))

	metrics.RunsActive.Inc()
	defer metrics.RunsActive.Dec()

	// 1. Research the subject
	start := time.Now()
	resp, err := p.NewSearch(in.SearchAPIKey).Search(ctx, subject)
	metrics.StageDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())
	if err != nil {
		run.SearchError = searchErrorMessage(err)
		metrics.RunsTotal.WithLabelValues(metrics.OutcomeSearchFailed).Inc()
		log.Warn("industry research failed", zap.Error(err))
		return run, nil
	}
	run.Organic, run.HasOrganic = resp.Organic()
	log.Info("industry research completed", zap.Int("organic", len(run.Organic)))

	// 2. Extract reference links from the seeds and the results
	texts := append(append([]string{}, p.Seeds...), search.Texts(run.Organic)...)
	run.Links = links.Extract(texts)
	for _, l := range run.Links {
		metrics.LinksExtracted.WithLabelValues(links.Domain(l)).Inc()
	}

	if p.LinksFile != "" {
		if err := links.SaveToFile(p.LinksFile, run.Links); err != nil {
			log.Warn("saving extracted links failed", zap.Error(err))
			run.Warnings = append(run.Warnings, err.Error())
		}
	}
	log.Info("reference links extracted", zap.Int("links", len(run.Links)), zap.String("file", p.LinksFile))

	if p.Recorder != nil {
		if err := p.Recorder.RecordRun(ctx, run); err != nil {
			log.Warn("recording run failed", zap.Error(err))
		}
	}

	// 3. Generate use cases
	client, err := p.NewLLM(ctx, in.LLMAPIKey)
	if err != nil {
		metrics.RunsTotal.WithLabelValues(metrics.OutcomeGenerationFailed).Inc()
		return run, fmt.Errorf("creating llm client: %w", err)
	}
	if c, ok := client.(io.Closer); ok {
		defer c.Close()
	}

	start = time.Now()
	gen, err := usecase.NewGenerator(client).Generate(ctx, subject, run.Links)
	metrics.StageDuration.WithLabelValues("generate").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RunsTotal.WithLabelValues(metrics.OutcomeGenerationFailed).Inc()
		log.Error("use case generation failed", zap.Error(err))
		return run, fmt.Errorf("generating use cases: %w", err)
	}
	run.Generation = &gen
	run.UseCases = usecase.ParseUseCases(gen.Text())
	metrics.RunsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()

	log.Info("use cases generated",
		zap.Stringer("kind", gen.Kind),
		zap.Int("use_cases", len(run.UseCases)),
	)
	return run, nil
}

func searchErrorMessage(err error) string {
	var authErr *search.AuthorizationError
	if errors.As(err, &authErr) {
		return "Error during industry research: Unauthorized access: 403 Forbidden."
	}
	return fmt.Sprintf("Error during industry research: %v", err)
}
