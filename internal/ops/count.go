package ops

import (
	"context"

	"github.com/hpungsan/morsesub/internal/morse"
	"github.com/hpungsan/morsesub/internal/search"
)

// CountInput contains parameters for the Count operation.
type CountInput struct {
	Haystack string
	Needle   string
	// Distinct also runs the full search to count distinct results.
	Distinct bool
}

// CountOutput contains the result of the Count operation.
type CountOutput struct {
	Haystack    morse.Message `json:"haystack"`
	Needle      morse.Message `json:"needle"`
	Occurrences uint64        `json:"occurrences"`
	Distinct    *int          `json:"distinct,omitempty"`
}

// Count reports how many subsequence occurrences of the needle the
// haystack holds. Occurrences is an upper bound on the Subtract result
// count; Distinct is the exact count when requested.
func Count(ctx context.Context, env *Env, input CountInput) (*CountOutput, error) {
	haystack, err := env.resolveID("haystack", input.Haystack)
	if err != nil {
		return nil, err
	}
	needle, err := env.resolveID("needle", input.Needle)
	if err != nil {
		return nil, err
	}

	out := &CountOutput{
		Haystack:    haystack,
		Needle:      needle,
		Occurrences: search.CountOccurrences(haystack.Symbols, needle.Symbols),
	}

	if input.Distinct {
		if err := ctx.Err(); err != nil {
			return nil, stageError(env, err)
		}
		n := search.Deletions(haystack.Symbols, needle.Symbols).Len()
		out.Distinct = &n
	}
	return out, nil
}
