package search

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	msgAB   = "*-_-***"
	msgR    = "*-*"
	msgST   = "***_-"
	msgZN   = "--**_-*"
	msgABCD = "*-_-***_-*-*_-**"
)

func TestReduce_TwoMessagesEqualsDeletions(t *testing.T) {
	pairs := [][2]string{
		{msgAB, msgR},
		{msgABCD, msgST},
		{msgABCD, msgZN},
		{"*-*", "*"},
		{"*", "*-*"},
	}

	for _, p := range pairs {
		got := Reduce([]string{p[0], p[1]})
		if diff := cmp.Diff(Deletions(p[0], p[1]), got); diff != "" {
			t.Errorf("Reduce(%q, %q) mismatch (-deletions +reduce):\n%s", p[0], p[1], diff)
		}
	}
}

func TestReduce_ThreeMessages(t *testing.T) {
	got := Reduce([]string{"*-*-", "*-", "-"})
	assert.Equal(t, NewSet("*"), got)
}

func TestReduce_HaystackAndNeedleAreNotInterchangeable(t *testing.T) {
	forward := Reduce([]string{"*-*", "*"})
	backward := Reduce([]string{"*", "*-*"})

	assert.Equal(t, NewSet("-*", "*-"), forward)
	assert.Zero(t, backward.Len())
}

func TestReduce_NotAssociative(t *testing.T) {
	a, b, c := "*-*-", "*-", "-"

	chained := Reduce([]string{a, b, c})

	// Subtracting (b - c) from a instead of b then c.
	nested := make(Set)
	for inner := range Deletions(b, c) {
		nested.Union(Deletions(a, inner))
	}

	assert.NotEqual(t, chained, nested)
	assert.Equal(t, NewSet("*"), chained)
	assert.Equal(t, NewSet("-*-", "*--"), nested)
}

func TestReduce_NeedleOrderWithinChain(t *testing.T) {
	// Two needles remove two disjoint occurrences from the first message,
	// so their relative order does not change the final set.
	r := rand.New(rand.NewPCG(21, 8))

	for range 100 {
		a := randomSymbols(r, 6+r.IntN(7))
		b := randomSymbols(r, 1+r.IntN(3))
		c := randomSymbols(r, 1+r.IntN(3))

		bc := Reduce([]string{a, b, c})
		cb := Reduce([]string{a, c, b})
		if diff := cmp.Diff(bc, cb); diff != "" {
			t.Fatalf("Reduce(%q, %q, %q) vs swapped needles (-bc +cb):\n%s", a, b, c, diff)
		}
	}
}

func TestReduce_EmptyStaysEmpty(t *testing.T) {
	got := Reduce([]string{"*", "-", "", "*"})
	assert.Zero(t, got.Len())

	assert.Zero(t, Step(NewSet(), "*").Len())
}

func TestReduce_PanicsOnShortChain(t *testing.T) {
	assert.Panics(t, func() { Reduce([]string{msgAB}) })
	assert.Panics(t, func() { Reduce(nil) })
	assert.Panics(t, func() { _, _ = ReduceParallel(context.Background(), []string{msgAB}, 2) })
}

func TestReduceParallel_MatchesReduce(t *testing.T) {
	chains := [][]string{
		{msgAB, msgR},
		{msgABCD, msgST, msgR},
		{msgABCD, "*", "-", "_"},
		{"*", "*-*", "*"},
	}

	for _, chain := range chains {
		for _, workers := range []int{0, 1, 3} {
			got, err := ReduceParallel(context.Background(), chain, workers)
			require.NoError(t, err)
			if diff := cmp.Diff(Reduce(chain), got); diff != "" {
				t.Errorf("ReduceParallel(%q, workers=%d) mismatch (-reduce +parallel):\n%s", chain, workers, diff)
			}
		}
	}
}

func TestReduceParallel_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := ReduceParallel(ctx, []string{msgABCD, msgST, msgR}, 2)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestStepParallel_EmptyCandidates(t *testing.T) {
	got, err := StepParallel(context.Background(), NewSet(), "*", 4)
	require.NoError(t, err)
	assert.Zero(t, got.Len())
}
