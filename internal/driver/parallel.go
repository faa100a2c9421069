package driver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"dicer/internal/observ"
	"dicer/internal/source"
	"dicer/internal/trace"
)

// TokenizeAll токенизирует юниты параллельно.
// Результат i соответствует ids[i]; отмена ctx проверяется между юнитами.
func TokenizeAll(ctx context.Context, fileSet *source.FileSet, ids []source.FileID, opts Options) ([]*Unit, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	jobs := opts.jobs(len(ids))
	ctx, span := trace.Start(ctx, trace.ScopeBatch, "tokenize-all",
		trace.Int("units", len(ids)), trace.Int("jobs", jobs))

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]*Unit, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, id := range ids {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			unit, err := TokenizeUnit(gctx, fileSet, id, opts)
			if err != nil {
				return err
			}
			results[i] = unit
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		trace.Error(ctx, trace.ScopeBatch, "tokenize-all", err)
		span.End("failed")
		return nil, err
	}
	span.Add(trace.Int("cached", countCached(results))).End("")
	return results, nil
}

func countCached(units []*Unit) int {
	n := 0
	for _, u := range units {
		if u.Cached {
			n++
		}
	}
	return n
}

// BatchTimings aggregates the unit timings of a batch, summing same-named phases.
func BatchTimings(units []*Unit) observ.Report {
	reports := make([]observ.Report, 0, len(units))
	for _, u := range units {
		if u != nil {
			reports = append(reports, u.Timing)
		}
	}
	return observ.Merge(reports...)
}
