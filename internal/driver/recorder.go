package driver

import (
	"context"
	"fmt"

	"github.com/agenthands/usecase-agent/internal/core/model"
	"github.com/agenthands/usecase-agent/internal/links"
)

// Recorder keeps an audit graph of runs and the links they referenced.
// Nothing in the pipeline reads it back.
type Recorder struct {
	Driver GraphDriver
}

func NewRecorder(d GraphDriver) *Recorder {
	return &Recorder{Driver: d}
}

func (r *Recorder) RecordRun(ctx context.Context, run *model.Run) error {
	params := map[string]interface{}{
		"uuid":          run.ID,
		"subject":       run.Subject,
		"created_at":    run.CreatedAt,
		"organic_count": len(run.Organic),
		"link_count":    len(run.Links),
	}
	if _, err := r.Driver.ExecuteQuery(ctx, SaveRunQuery, params); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	for i, url := range run.Links {
		_, err := r.Driver.ExecuteQuery(ctx, SaveRunLinkQuery, map[string]interface{}{
			"run_uuid": run.ID,
			"url":      url,
			"domain":   links.Domain(url),
			"position": i,
		})
		if err != nil {
			return fmt.Errorf("failed to save link %s: %w", url, err)
		}
	}
	return nil
}

// SubjectLinks lists every distinct link recorded for subject.
func (r *Recorder) SubjectLinks(ctx context.Context, subject string) ([]string, error) {
	res, err := r.Driver.ExecuteQuery(ctx, GetSubjectLinksQuery, map[string]interface{}{"subject": subject})
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, rec := range res.Records {
		url, _ := rec.Get("url")
		if s, ok := url.(string); ok {
			urls = append(urls, s)
		}
	}
	return urls, nil
}
