package generate

import (
	"fmt"
	"strings"
	"time"
)

// Markdown renders a generation summary as markdown, written next to the
// cache after each run and displayed by the report command.
func Markdown(results []Result, when time.Time) string {
	var b strings.Builder
	b.WriteString("# Generation report\n\n")
	fmt.Fprintf(&b, "_Run at %s_\n\n", when.Format(time.RFC3339))

	total := 0
	for _, res := range results {
		fmt.Fprintf(&b, "## %s\n\n", res.Sheet)
		fmt.Fprintf(&b, "- files: **%d**\n", len(res.Files))
		fmt.Fprintf(&b, "- skipped rows: %d\n\n", res.Skipped)

		if len(res.Files) > 0 {
			b.WriteString("| file | path |\n|---|---|\n")
			for _, f := range res.Files {
				fmt.Fprintf(&b, "| %s | `%s` |\n", f.Label, f.Path)
			}
			b.WriteString("\n")
		}
		total += len(res.Files)
	}

	fmt.Fprintf(&b, "**Total: %d files.**\n", total)
	return b.String()
}
