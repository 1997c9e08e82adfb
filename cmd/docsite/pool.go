package main

import (
	"context"
	"runtime"
	"sync"
)

// renderBatch renders pages concurrently with a fixed worker pool.
// Results keep the same order as the input pages. A canceled context
// fails the remaining pages instead of aborting the whole batch so the
// summary still accounts for every page.
func renderBatch(ctx context.Context, site *siteRenderer, pages []pageToRender, workers int) []renderResult {
	if len(pages) == 0 {
		return nil
	}

	if workers > len(pages) {
		workers = len(pages)
	}

	results := make([]renderResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = renderResult{
						URLPath: pages[idx].URLPath,
						Err:     ctx.Err(),
					}
					continue
				}
				results[idx] = site.renderPage(ctx, pages[idx])
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// resolvePoolSize determines the worker count.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / 2

	// Minimum 1, maximum 8
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
