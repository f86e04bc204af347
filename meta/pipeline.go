package meta

import (
	"context"
	"fmt"
	"sync"
)

// ProgressFunc is called after each processed file with the completion
// count, the batch total and the finished record.
type ProgressFunc func(completed, total int, rec *Record)

// ProcessFiles extracts metadata from all files concurrently using the
// given number of workers. Results preserve the input order. Per-file
// failures, including worker panics, are captured in the corresponding
// record and never abort the batch. Cancelling the context stops further
// extraction: the file currently being extracted finishes, every other
// file gets a record with a cancellation error.
func ProcessFiles(ctx context.Context, files []string, workers int, progress ProgressFunc) []*Record {
	if workers < 1 {
		workers = 1
	}

	records := make([]*Record, len(files))

	// Unbuffered so dispatch blocks on busy workers and cancellation
	// can interrupt it between files
	jobs := make(chan int)

	var mu sync.Mutex
	completed := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					continue
				}
				records[idx] = extractSafely(files[idx])

				mu.Lock()
				completed++
				done := completed
				mu.Unlock()

				if progress != nil {
					progress(done, len(files), records[idx])
				}
			}
		}()
	}

dispatch:
	for i := range files {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)

	wg.Wait()

	// Files skipped because of cancellation still get a record
	for i, rec := range records {
		if rec == nil {
			cancelled := NewRecord(files[i], KindForPath(files[i]))
			cancelled.Error = "processing cancelled"
			records[i] = cancelled
		}
	}

	return records
}

// extractSafely shields the pipeline from panics inside format parsers
func extractSafely(path string) (rec *Record) {
	defer func() {
		if r := recover(); r != nil {
			rec = NewRecord(path, KindForPath(path))
			rec.Error = fmt.Sprintf("extraction panic: %v", r)
		}
	}()

	return ExtractFile(path)
}
