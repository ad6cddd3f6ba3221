package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"

	"alfredoptarigan/ats-checker/internal/models"
)

// BatchScanner scans a bulk upload with a bounded pool of workers.
type BatchScanner interface {
	ScanAll(ctx context.Context, jobDesc string, uploads []Upload) ([]models.ScanResult, error)
}

type batchScanner struct {
	scanner     ScannerService
	concurrency int
	log         *zap.Logger
}

type scanJob struct {
	index  int
	upload Upload
}

func NewBatchScanner(scanner ScannerService, concurrency int, log *zap.Logger) BatchScanner {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &batchScanner{
		scanner:     scanner,
		concurrency: concurrency,
		log:         log,
	}
}

// ScanAll returns one result per upload sorted by score, highest first; equal
// scores keep upload order. Every upload is scanned even when some fail to be
// recorded, and the failures are joined into the returned error.
func (b *batchScanner) ScanAll(ctx context.Context, jobDesc string, uploads []Upload) ([]models.ScanResult, error) {
	results := make([]models.ScanResult, len(uploads))
	errs := make([]error, len(uploads))

	workers := b.concurrency
	if workers > len(uploads) {
		workers = len(uploads)
	}

	jobQueue := make(chan scanJob)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for job := range jobQueue {
				b.log.Debug("worker processing upload",
					zap.Int("worker", workerID),
					zap.String("filename", job.upload.Filename),
				)
				results[job.index], errs[job.index] = b.scanner.Scan(ctx, jobDesc, job.upload)
			}
		}(i + 1)
	}

	for i, upload := range uploads {
		jobQueue <- scanJob{index: i, upload: upload}
	}
	close(jobQueue)
	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, errors.Join(errs...)
}
