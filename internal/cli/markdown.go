package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

const markdownWidth = 100

// renderMarkdown formats md for a plain terminal, falling back to the raw
// markdown when it cannot be rendered
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printMarkdown(w io.Writer, md string) {
	fmt.Fprint(w, renderMarkdown(md))
}
