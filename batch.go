package huffman

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DecodeJob is one input to DecodeAll.
type DecodeJob[S Symbol] struct {
	Encoded string
	Root    *Node[S]
}

// EncodeAll runs FromSource on each source concurrently, at most limit at a
// time (no limit if limit <= 0).  Results are in the order of sources.  The
// first error stops jobs that have not started yet and is returned.
func EncodeAll[S Symbol](ctx context.Context, sources [][]S, limit int, opts ...BuildOption[S]) ([]*Encoding[S], error) {
	return runAll(ctx, len(sources), limit, func(i int) (*Encoding[S], error) {
		return FromSource(sources[i], opts...)
	})
}

// DecodeAll runs FromEncoded on each job concurrently, with the same rules as
// EncodeAll.
func DecodeAll[S Symbol](ctx context.Context, jobs []DecodeJob[S], limit int) ([]*Encoding[S], error) {
	return runAll(ctx, len(jobs), limit, func(i int) (*Encoding[S], error) {
		return FromEncoded(jobs[i].Encoded, jobs[i].Root)
	})
}

func runAll[S Symbol](ctx context.Context, n int, limit int, fn func(int) (*Encoding[S], error)) ([]*Encoding[S], error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	// Each job writes only its own slot.
	results := make([]*Encoding[S], n)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			e, err := fn(i)
			if err != nil {
				return err
			}
			results[i] = e
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
