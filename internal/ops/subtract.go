package ops

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hpungsan/morsesub/internal/morse"
	"github.com/hpungsan/morsesub/internal/search"
)

// SubtractInput contains parameters for the Subtract operation.
type SubtractInput struct {
	Haystack string // identifier
	Needle   string // identifier
}

// SubtractOutput contains the result of the Subtract operation.
type SubtractOutput struct {
	RunID     string        `json:"run_id"`
	Haystack  morse.Message `json:"haystack"`
	Needle    morse.Message `json:"needle"`
	Results   []string      `json:"results"`
	Count     int           `json:"count"`
	ElapsedMS float64       `json:"elapsed_ms"`
}

// Subtract returns every distinct string left after deleting one
// subsequence occurrence of the needle from the haystack.
func Subtract(ctx context.Context, env *Env, input SubtractInput) (*SubtractOutput, error) {
	haystack, err := env.resolveID("haystack", input.Haystack)
	if err != nil {
		return nil, err
	}
	needle, err := env.resolveID("needle", input.Needle)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, stageError(env, err)
	}

	runID := newRunID()
	start := time.Now()
	results := search.Deletions(haystack.Symbols, needle.Symbols)

	out := &SubtractOutput{
		RunID:     runID,
		Haystack:  haystack,
		Needle:    needle,
		Results:   results.Sorted(),
		Count:     results.Len(),
		ElapsedMS: elapsedMS(start),
	}

	env.Logger.Debug("subtract finished",
		zap.String("run_id", runID),
		zap.String("haystack", haystack.ID),
		zap.String("needle", needle.ID),
		zap.Int("count", out.Count))

	return out, nil
}
