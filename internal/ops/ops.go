package ops

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/hpungsan/morsesub/internal/config"
	"github.com/hpungsan/morsesub/internal/errors"
	"github.com/hpungsan/morsesub/internal/logging"
	"github.com/hpungsan/morsesub/internal/morse"
)

// Env carries the dependencies shared by every operation.
type Env struct {
	Config  *config.Config
	Decoder *morse.Decoder
	Logger  *zap.Logger
}

// NewEnv builds an Env, merging cfg.Messages into the decoder table.
// A nil cfg means defaults; a nil logger discards output.
func NewEnv(cfg *config.Config, logger *zap.Logger) (*Env, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	dec, err := morse.NewDecoder(cfg.Messages)
	if err != nil {
		return nil, fmt.Errorf("build decoder: %w", err)
	}
	return &Env{Config: cfg, Decoder: dec, Logger: logger}, nil
}

// resolveID trims id and decodes it. field names the argument in errors.
func (e *Env) resolveID(field, id string) (morse.Message, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return morse.Message{}, errors.NewInvalidRequest(field + " is required")
	}
	symbols, err := e.Decoder.Resolve(id)
	if err != nil {
		return morse.Message{}, err
	}
	return morse.Message{ID: id, Symbols: symbols}, nil
}

// newRunID returns a fresh ULID used to correlate an operation's output
// with its log lines.
func newRunID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// elapsedMS returns the time since start in fractional milliseconds.
func elapsedMS(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
