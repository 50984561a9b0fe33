package ops

import (
	"fmt"
	"io"
	"strings"
)

// WriteText writes results one per line followed by the solution count and
// elapsed seconds.
func WriteText(w io.Writer, results []string, elapsedMS float64) error {
	var b strings.Builder
	for _, r := range results {
		b.WriteString(r)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%d solutions\n", len(results))
	fmt.Fprintf(&b, "%.3f seconds\n", elapsedMS/1000)

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderMarkdown renders a solve as a Markdown report.
// Symbol strings are wrapped in code spans so '*' and '_' stay literal.
func RenderMarkdown(out *SolveOutput) string {
	var b strings.Builder

	ids := make([]string, 0, len(out.Messages))
	for _, m := range out.Messages {
		ids = append(ids, escapeCell(m.ID))
	}
	fmt.Fprintf(&b, "# %s\n\n", strings.Join(ids, " − "))

	b.WriteString("## Messages\n\n")
	b.WriteString("| # | Message | Symbols |\n|---|---|---|\n")
	for i, m := range out.Messages {
		fmt.Fprintf(&b, "| %d | %s | `%s` |\n", i+1, escapeCell(m.ID), m.Symbols)
	}

	b.WriteString("\n## Stages\n\n")
	b.WriteString("| Stage | Subtracted | Candidates |\n|---|---|---|\n")
	for i, s := range out.Stages {
		fmt.Fprintf(&b, "| %d | %s | %d |\n", i+1, escapeCell(s.Needle.ID), s.Candidates)
	}

	fmt.Fprintf(&b, "\n## Results (%d)\n\n", out.Count)
	if len(out.Results) == 0 {
		b.WriteString("_No solutions._\n")
	}
	for _, r := range out.Results {
		fmt.Fprintf(&b, "- `%s`\n", r)
	}

	fmt.Fprintf(&b, "\n%d solutions in %.3f seconds (run `%s`).\n", out.Count, out.ElapsedMS/1000, out.RunID)
	return b.String()
}

// escapeCell keeps identifiers from breaking table or emphasis syntax.
// Raw symbol strings used as identifiers are full of emphasis markers.
func escapeCell(s string) string {
	r := strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`)
	return r.Replace(s)
}
