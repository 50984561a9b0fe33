package ops

import (
	"github.com/hpungsan/morsesub/internal/errors"
	"github.com/hpungsan/morsesub/internal/morse"
)

// DecodeInput contains parameters for the Decode operation.
type DecodeInput struct {
	IDs []string
}

// DecodeOutput contains the result of the Decode operation.
type DecodeOutput struct {
	Messages []morse.Message `json:"messages"`
}

// Decode resolves each identifier to its symbol string, failing on the
// first one that is neither a known name nor a valid symbol string.
func Decode(env *Env, input DecodeInput) (*DecodeOutput, error) {
	if len(input.IDs) == 0 {
		return nil, errors.NewInvalidRequest("ids is required")
	}

	msgs := make([]morse.Message, 0, len(input.IDs))
	for _, id := range input.IDs {
		m, err := env.resolveID("id", id)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return &DecodeOutput{Messages: msgs}, nil
}

// MessagesOutput contains the result of the Messages operation.
type MessagesOutput struct {
	Items []morse.Message `json:"items"`
	Total int             `json:"total"`
}

// Messages lists every named message, sorted by name.
func Messages(env *Env) *MessagesOutput {
	items := env.Decoder.Known()
	return &MessagesOutput{Items: items, Total: len(items)}
}
