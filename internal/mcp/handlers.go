package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/morsesub/internal/errors"
	"github.com/hpungsan/morsesub/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	env *ops.Env
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(env *ops.Env) *Handlers {
	return &Handlers{env: env}
}

// Request types for each tool

// SolveRequest represents the arguments for morse_solve.
type SolveRequest struct {
	Messages []string `json:"messages"`
	Parallel bool     `json:"parallel,omitempty"`
}

// SubtractRequest represents the arguments for morse_subtract.
type SubtractRequest struct {
	Haystack string `json:"haystack"`
	Needle   string `json:"needle"`
}

// DecodeRequest represents the arguments for morse_decode.
type DecodeRequest struct {
	IDs []string `json:"ids"`
}

// CountRequest represents the arguments for morse_count.
type CountRequest struct {
	Haystack string `json:"haystack"`
	Needle   string `json:"needle"`
	Distinct bool   `json:"distinct,omitempty"`
}

// Handler implementations

// HandleSolve handles the morse_solve tool call.
func (h *Handlers) HandleSolve(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SolveRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Solve(ctx, h.env, ops.SolveInput{
		Messages: input.Messages,
		Parallel: input.Parallel,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSubtract handles the morse_subtract tool call.
func (h *Handlers) HandleSubtract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SubtractRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Subtract(ctx, h.env, ops.SubtractInput{
		Haystack: input.Haystack,
		Needle:   input.Needle,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDecode handles the morse_decode tool call.
func (h *Handlers) HandleDecode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DecodeRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Decode(h.env, ops.DecodeInput{IDs: input.IDs})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleMessages handles the morse_messages tool call.
func (h *Handlers) HandleMessages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(ops.Messages(h.env))
}

// HandleCount handles the morse_count tool call.
func (h *Handlers) HandleCount(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CountRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Count(ctx, h.env, ops.CountInput{
		Haystack: input.Haystack,
		Needle:   input.Needle,
		Distinct: input.Distinct,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are not exposed.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if mErr, ok := err.(*errors.MorseError); ok {
		errorObj := map[string]any{
			"code":    mErr.Code,
			"message": mErr.Message,
			"status":  mErr.Status,
		}
		if mErr.Code != errors.ErrInternal && mErr.Details != nil {
			errorObj["details"] = mErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
