package weather

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Result is the outcome of one fetch within a fan-out. Exactly one of three
// shapes holds: a usable value, a recorded failure, or no data (reserved for
// sources that can report "nothing to measure"; the current client never
// produces it).
type Result struct {
	Value *float64
	Err   error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

func (r Result) NoData() bool {
	return r.Err == nil && r.Value == nil
}

// Fetcher is the per-city operation fanned out by FetchMany.
type Fetcher interface {
	Fetch(ctx context.Context, cityName string) float64
}

// FetchMany runs one fetch per city concurrently and returns results
// positionally aligned with cityNames regardless of completion order. A panic
// inside a single fetch becomes that position's recorded failure; it never
// aborts sibling fetches.
func FetchMany(ctx context.Context, fetcher Fetcher, cityNames []string) []Result {
	results := make([]Result, len(cityNames))

	var wg sync.WaitGroup
	for i, name := range cityNames {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = Result{Err: errors.Errorf("fetch panicked for %s: %v", name, r)}
				}
			}()

			value := fetcher.Fetch(ctx, name)
			results[i] = Result{Value: &value}
		}(i, name)
	}
	wg.Wait()

	return results
}

// FetchMany fans out the client's own Fetch over the given city names.
func (c *Client) FetchMany(ctx context.Context, cityNames []string) []Result {
	return FetchMany(ctx, c, cityNames)
}
