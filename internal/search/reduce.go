package search

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Reduce subtracts messages[1:] from messages[0] in order and returns the
// final candidate set.
//
// The chain is a strict left-to-right composition and is never reordered:
// the first message is the only haystack. Reduce panics when given fewer
// than two messages.
func Reduce(messages []string) Set {
	mustChain(messages)

	candidates := NewSet(messages[0])
	for _, needle := range messages[1:] {
		candidates = Step(candidates, needle)
	}
	return candidates
}

// Step returns the union of Deletions(s, needle) over every s in
// candidates. An empty candidate set yields an empty set.
func Step(candidates Set, needle string) Set {
	next := make(Set)
	for s := range candidates {
		next.Union(Deletions(s, needle))
	}
	return next
}

// ReduceParallel is Reduce with each stage computed by StepParallel.
// It returns ctx.Err() if the context ends before the chain completes.
func ReduceParallel(ctx context.Context, messages []string, workers int) (Set, error) {
	mustChain(messages)

	candidates := NewSet(messages[0])
	for _, needle := range messages[1:] {
		next, err := StepParallel(ctx, candidates, needle, workers)
		if err != nil {
			return nil, err
		}
		candidates = next
	}
	return candidates, nil
}

// StepParallel computes Step with candidates searched concurrently by at
// most workers goroutines (runtime.NumCPU() when workers <= 0).
//
// Each candidate is searched to completion; the context is only consulted
// before a candidate search starts.
func StepParallel(ctx context.Context, candidates Set, needle string, workers int) (Set, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	items := candidates.Items()
	partials := make([]Set, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, s := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partials[i] = Deletions(s, needle)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	next := make(Set)
	for _, p := range partials {
		next.Union(p)
	}
	return next, nil
}

func mustChain(messages []string) {
	if len(messages) < 2 {
		panic("search: a chain needs at least two messages")
	}
}
