package ops

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"

	"github.com/hpungsan/morsesub/internal/errors"
	"github.com/hpungsan/morsesub/internal/morse"
	"github.com/hpungsan/morsesub/internal/search"
)

// SolveInput contains parameters for the Solve operation.
type SolveInput struct {
	Messages []string // identifiers, at least two
	Parallel bool     // fan candidates out across Config.Workers goroutines
}

// Stage summarizes one subtraction step of the chain.
type Stage struct {
	Needle     morse.Message `json:"needle"`
	Candidates int           `json:"candidates"`
}

// SolveOutput contains the result of the Solve operation.
type SolveOutput struct {
	RunID     string          `json:"run_id"`
	Messages  []morse.Message `json:"messages"`
	Stages    []Stage         `json:"stages"`
	Results   []string        `json:"results"`
	Count     int             `json:"count"`
	ElapsedMS float64         `json:"elapsed_ms"`
	Parallel  bool            `json:"parallel"`
}

// Solve decodes the messages and subtracts messages[1:] from messages[0]
// in order. Results are sorted lexicographically. An empty result is not
// an error.
func Solve(ctx context.Context, env *Env, input SolveInput) (*SolveOutput, error) {
	if len(input.Messages) < 2 {
		return nil, errors.NewTooFewMessages(len(input.Messages))
	}

	msgs := make([]morse.Message, 0, len(input.Messages))
	for _, id := range input.Messages {
		m, err := env.resolveID("message", id)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}

	runID := newRunID()
	log := env.Logger.With(zap.String("run_id", runID))

	if timeout := env.Config.SolveTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log.Debug("solve started",
		zap.Int("messages", len(msgs)),
		zap.Bool("parallel", input.Parallel))

	start := time.Now()
	candidates := search.NewSet(msgs[0].Symbols)
	stages := make([]Stage, 0, len(msgs)-1)

	for _, needle := range msgs[1:] {
		next, err := solveStage(ctx, env, candidates, needle.Symbols, input.Parallel)
		if err != nil {
			log.Warn("solve aborted",
				zap.Int("stage", len(stages)+1),
				zap.Error(err))
			return nil, stageError(env, err)
		}
		candidates = next
		stages = append(stages, Stage{Needle: needle, Candidates: candidates.Len()})

		log.Debug("stage done",
			zap.Int("stage", len(stages)),
			zap.String("needle", needle.ID),
			zap.Int("candidates", candidates.Len()))
	}

	out := &SolveOutput{
		RunID:     runID,
		Messages:  msgs,
		Stages:    stages,
		Results:   candidates.Sorted(),
		Count:     candidates.Len(),
		ElapsedMS: elapsedMS(start),
		Parallel:  input.Parallel,
	}

	log.Debug("solve finished",
		zap.Int("count", out.Count),
		zap.Float64("elapsed_ms", out.ElapsedMS))

	return out, nil
}

// solveStage runs one chain step. The sequential path checks ctx only
// before the step starts.
func solveStage(ctx context.Context, env *Env, candidates search.Set, needle string, parallel bool) (search.Set, error) {
	if parallel {
		return search.StepParallel(ctx, candidates, needle, env.Config.Workers)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return search.Step(candidates, needle), nil
}

// stageError maps context errors to MorseErrors.
func stageError(env *Env, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeout(env.Config.SolveTimeoutSeconds)
	}
	if stderrors.Is(err, context.Canceled) {
		return errors.NewInvalidRequest("solve canceled")
	}
	return errors.NewInternal(err)
}
