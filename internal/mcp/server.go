package mcp

import (
	"slices"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/hpungsan/morsesub/internal/ops"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"morse_solve": {
		def:     solveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSolve },
	},
	"morse_subtract": {
		def:     subtractToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSubtract },
	},
	"morse_decode": {
		def:     decodeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDecode },
	},
	"morse_messages": {
		def:     messagesToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleMessages },
	},
	"morse_count": {
		def:     countToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCount },
	},
}

// AllToolNames returns every tool name, sorted.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with the morsesub tools registered.
// Tools listed in env.Config.DisabledTools are skipped.
func NewServer(env *ops.Env, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"morsesub",
		version,
		server.WithToolCapabilities(true),
	)

	if unknown := ValidateDisabledTools(env.Config.DisabledTools); len(unknown) > 0 {
		env.Logger.Warn("ignoring unknown disabled tools", zap.Strings("tools", unknown))
	}

	disabled := make(map[string]bool, len(env.Config.DisabledTools))
	for _, name := range env.Config.DisabledTools {
		disabled[name] = true
	}

	h := NewHandlers(env)
	for _, name := range AllToolNames() {
		if disabled[name] {
			continue
		}
		entry := toolRegistry[name]
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(env *ops.Env, version string) error {
	env.Logger.Info("mcp server starting", zap.String("version", version))
	return server.ServeStdio(NewServer(env, version))
}
