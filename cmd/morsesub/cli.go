package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/morsesub/internal/errors"
	"github.com/hpungsan/morsesub/internal/ops"
	"github.com/hpungsan/morsesub/internal/web"
)

// maxStdinBytes caps message lists piped via stdin.
const maxStdinBytes = 1 << 20

// Output formats.
const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

// newCLIApp creates the CLI application with all commands.
// env may be nil when only --help or --version is served.
func newCLIApp(env *ops.Env) *cli.App {
	app := &cli.App{
		Name:    "morsesub",
		Usage:   "Subtract Morse messages from each other as subsequences",
		Version: Version,
		Commands: []*cli.Command{
			solveCmd(env),
			subtractCmd(env),
			countCmd(env),
			decodeCmd(env),
			messagesCmd(env),
			serveCmd(env),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// formatFlag is shared by commands that print results.
func formatFlag() cli.Flag {
	return &cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: formatText, Usage: "Output format: text|json|markdown"}
}

// solveCmd creates the solve command.
func solveCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "Subtract every following message from the first, in order",
		ArgsUsage: "<message> <message> [message...] (or - to read them from stdin)",
		Flags: []cli.Flag{
			formatFlag(),
			&cli.BoolFlag{Name: "parallel", Aliases: []string{"p"}, Usage: "Search candidates concurrently"},
		},
		Action: func(c *cli.Context) error {
			format, err := parseFormat(c.String("format"))
			if err != nil {
				return outputError(err)
			}

			ids := c.Args().Slice()
			if len(ids) == 1 && ids[0] == "-" {
				text, err := readStdin(maxStdinBytes)
				if err != nil {
					return outputError(errors.NewInvalidRequest(err.Error()))
				}
				ids = strings.Fields(text)
			}

			output, err := ops.Solve(c.Context, env, ops.SolveInput{
				Messages: ids,
				Parallel: c.Bool("parallel"),
			})
			if err != nil {
				return outputError(err)
			}

			w := c.App.Writer
			switch format {
			case formatJSON:
				return outputJSON(w, output)
			case formatMarkdown:
				_, err := io.WriteString(w, ops.RenderMarkdown(output))
				return err
			default:
				return ops.WriteText(w, output.Results, output.ElapsedMS)
			}
		},
	}
}

// subtractCmd creates the subtract command.
func subtractCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "subtract",
		Usage:     "Delete one subsequence occurrence of the needle from the haystack, every possible way",
		ArgsUsage: "<haystack> <needle>",
		Flags:     []cli.Flag{formatFlag()},
		Action: func(c *cli.Context) error {
			format, err := parseFormat(c.String("format"))
			if err != nil {
				return outputError(err)
			}
			if format == formatMarkdown {
				return outputError(errors.NewInvalidRequest("subtract supports text or json output"))
			}
			if c.NArg() != 2 {
				return outputError(errors.NewInvalidRequest("subtract takes exactly two arguments: <haystack> <needle>"))
			}

			output, err := ops.Subtract(c.Context, env, ops.SubtractInput{
				Haystack: c.Args().Get(0),
				Needle:   c.Args().Get(1),
			})
			if err != nil {
				return outputError(err)
			}

			if format == formatJSON {
				return outputJSON(c.App.Writer, output)
			}
			return ops.WriteText(c.App.Writer, output.Results, output.ElapsedMS)
		},
	}
}

// countCmd creates the count command.
func countCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "Count subsequence occurrences of the needle in the haystack",
		ArgsUsage: "<haystack> <needle>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "distinct", Aliases: []string{"d"}, Usage: "Also count distinct subtraction results"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return outputError(errors.NewInvalidRequest("count takes exactly two arguments: <haystack> <needle>"))
			}

			output, err := ops.Count(c.Context, env, ops.CountInput{
				Haystack: c.Args().Get(0),
				Needle:   c.Args().Get(1),
				Distinct: c.Bool("distinct"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// decodeCmd creates the decode command.
func decodeCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Resolve message identifiers to symbol strings",
		ArgsUsage: "<message> [message...]",
		Action: func(c *cli.Context) error {
			output, err := ops.Decode(env, ops.DecodeInput{IDs: c.Args().Slice()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(c.App.Writer, output)
		},
	}
}

// messagesCmd creates the messages command.
func messagesCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "messages",
		Usage: "List known message names",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
		},
		Action: func(c *cli.Context) error {
			output := ops.Messages(env)
			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}

			width := 0
			for _, m := range output.Items {
				width = max(width, len(m.ID))
			}
			for _, m := range output.Items {
				if _, err := fmt.Fprintf(c.App.Writer, "%-*s  %s\n", width, m.ID, m.Symbols); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the local web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Address to bind"},
			&cli.IntFlag{Name: "port", Value: 8371, Usage: "Port to listen on"},
		},
		Action: func(c *cli.Context) error {
			port := c.Int("port")
			if port <= 0 || port > 65535 {
				return outputError(errors.NewInvalidRequest(fmt.Sprintf("invalid port %d", port)))
			}

			srv, err := web.NewServer(env, Version, c.String("bind"), port)
			if err != nil {
				return outputError(errors.NewInternal(err))
			}
			return web.Run(srv, env.Logger)
		},
	}
}

// Helper functions

// parseFormat validates the --format flag.
func parseFormat(s string) (string, error) {
	switch s {
	case formatText, formatJSON, formatMarkdown:
		return s, nil
	}
	return "", errors.NewInvalidRequest(fmt.Sprintf("unknown format %q (want text, json or markdown)", s))
}

// outputJSON marshals result to w as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if mErr, ok := err.(*errors.MorseError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", mErr.Code, mErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads at most limit bytes from stdin.
func readStdin(limit int64) (string, error) {
	if !stdinHasData() {
		return "", fmt.Errorf("expected messages piped via stdin")
	}
	data, err := io.ReadAll(io.LimitReader(os.Stdin, limit+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("stdin exceeds %d bytes", limit)
	}
	return strings.TrimSpace(string(data)), nil
}
