package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/phrazzld/study-notes-api/internal/domain"
)

// renderNotes writes notes for topic to w as a short colored report.
func renderNotes(w io.Writer, topic string, notes *domain.StudyNotes) {
	title := color.New(color.FgCyan, color.Bold)
	heading := color.New(color.FgYellow, color.Bold)
	number := color.New(color.FgGreen)
	term := color.New(color.FgMagenta)

	title.Fprintf(w, "📚 %s\n", strings.TrimSpace(topic))
	fmt.Fprintln(w)

	heading.Fprintln(w, "Definition")
	fmt.Fprintf(w, "  %s\n\n", notes.Definition)

	heading.Fprintln(w, "Key Points")
	for i, point := range notes.Points {
		number.Fprintf(w, "  %d. ", i+1)
		fmt.Fprintln(w, point)
	}
	fmt.Fprintln(w)

	heading.Fprintln(w, "Key Terms")
	for _, t := range notes.Terms {
		term.Fprintf(w, "  • %s\n", t)
	}
}
