package mcp

import "github.com/mark3labs/mcp-go/mcp"

const identifierHelp = "A known message name (e.g. AB, HELLO) or a raw symbol string over '*', '-' and '_'."

var solveToolDef = mcp.NewTool("morse_solve",
	mcp.WithDescription("Subtract each following message from the first, in order, treating every subtraction as the deletion of one subsequence occurrence. Returns every distinct final string, sorted."),
	mcp.WithArray("messages",
		mcp.Required(),
		mcp.Description("Two or more message identifiers. "+identifierHelp),
		mcp.WithStringItems(),
	),
	mcp.WithBoolean("parallel",
		mcp.Description("Search candidates concurrently."),
	),
)

var subtractToolDef = mcp.NewTool("morse_subtract",
	mcp.WithDescription("Delete one subsequence occurrence of the needle from the haystack in every possible way and return the distinct results, sorted."),
	mcp.WithString("haystack",
		mcp.Required(),
		mcp.Description(identifierHelp),
	),
	mcp.WithString("needle",
		mcp.Required(),
		mcp.Description(identifierHelp),
	),
)

var decodeToolDef = mcp.NewTool("morse_decode",
	mcp.WithDescription("Resolve message identifiers to their symbol strings."),
	mcp.WithArray("ids",
		mcp.Required(),
		mcp.Description("Identifiers to decode. "+identifierHelp),
		mcp.WithStringItems(),
	),
)

var messagesToolDef = mcp.NewTool("morse_messages",
	mcp.WithDescription("List every known message name with its symbol string."),
)

var countToolDef = mcp.NewTool("morse_count",
	mcp.WithDescription("Count the subsequence occurrences of the needle in the haystack. This bounds the number of morse_subtract results."),
	mcp.WithString("haystack",
		mcp.Required(),
		mcp.Description(identifierHelp),
	),
	mcp.WithString("needle",
		mcp.Required(),
		mcp.Description(identifierHelp),
	),
	mcp.WithBoolean("distinct",
		mcp.Description("Also run the full search and report the number of distinct results."),
	),
)
