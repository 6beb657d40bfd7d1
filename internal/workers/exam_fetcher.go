// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-bluebook/internal/config"
	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/models"
	"golang.org/x/sync/errgroup"
)

// ExamFetcher downloads both modules of every exam in a listing with at most
// FetchConcurrency requests in flight.
type ExamFetcher struct {
	source      ExamSource
	concurrency int

	mu      sync.Mutex
	results []models.ExamFetch

	logger *logger.Logger
}

func NewExamFetcher(source ExamSource, cfg config.Workers, logger *logger.Logger) *ExamFetcher {
	concurrency := cfg.FetchConcurrency
	if concurrency < 1 {
		concurrency = config.DefaultFetchConcurrency
	}
	return &ExamFetcher{source: source, concurrency: concurrency, logger: logger}
}

// Run lists the resources and fetches all of them. Results are available
// through [ExamFetcher.Results] afterwards.
func (f *ExamFetcher) Run(ctx context.Context) error {
	index, err := f.source.ListResources(ctx)
	if err != nil {
		return fmt.Errorf("list resources: %w", err)
	}

	results, err := f.Fetch(ctx, index)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.results = results
	f.mu.Unlock()
	return nil
}

// Results returns what the last Run produced.
func (f *ExamFetcher) Results() []models.ExamFetch {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.results)
}

// Fetch fetches every module of index. A failed module is reported in its
// ExamFetch.Err and does not stop the others. The returned slice is ordered
// by category name, then descriptor position, then module.
//
// The error is non-nil only when ctx ends before all fetches finished.
func (f *ExamFetcher) Fetch(ctx context.Context, index models.ResourceIndex) ([]models.ExamFetch, error) {
	jobs := planFetches(index)
	results := make([]models.ExamFetch, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := f.source.FetchResource(gctx, job.Module, job.label)
			out := job.ExamFetch
			if err != nil {
				f.logger.Warn().Err(err).
					Str("category", job.Category).
					Str("module", job.Module).
					Msg("exam fetch failed")
				out.Err = err.Error()
			} else {
				out.Result = &res
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch exams: %w", err)
	}

	f.logger.Info().Int("exams", len(results)).Msg("exam fetch finished")
	return results, nil
}

type fetchJob struct {
	models.ExamFetch
	label string
}

func planFetches(index models.ResourceIndex) []fetchJob {
	categories := make([]string, 0, len(index))
	for category := range index {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	var jobs []fetchJob
	for _, category := range categories {
		for i, d := range index[category] {
			for _, module := range d.ModuleIDs() {
				jobs = append(jobs, fetchJob{
					ExamFetch: models.ExamFetch{Category: category, Index: i, Module: module},
					label:     d.Value,
				})
			}
		}
	}
	return jobs
}
