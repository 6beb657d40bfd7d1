// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs several
// workers in a unified way, and the ExamFetcher worker that downloads every
// exam of a resource listing concurrently.
package workers

import (
	"context"

	"github.com/MKhiriev/go-bluebook/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks for the duration of the work and stops early when ctx is
// cancelled.
type Worker interface {
	Run(ctx context.Context) error
}

// ExamSource is the part of the API client the exam fetcher needs.
type ExamSource interface {
	ListResources(ctx context.Context) (models.ResourceIndex, error)
	FetchResource(ctx context.Context, resourceID, label string) (models.FetchResult, error)
}
