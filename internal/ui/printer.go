// Package ui prints human-facing progress and results to stderr. Scene data
// and SVG go to stdout or files; everything here is decoration for a person
// watching the terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/papapumpkin/nightsky/internal/ansi"
	"github.com/papapumpkin/nightsky/internal/pos"
	"github.com/papapumpkin/nightsky/internal/sky"
)

type Printer struct {
	out     io.Writer
	verbose bool
}

// New returns a Printer writing to stderr.
func New(verbose bool) *Printer {
	return &Printer{out: os.Stderr, verbose: verbose}
}

// NewTo returns a Printer writing to w.
func NewTo(w io.Writer, verbose bool) *Printer {
	return &Printer{out: w, verbose: verbose}
}

// Banner prints the boxed program name shown at the start of long runs.
func (p *Printer) Banner() {
	fmt.Fprintln(p.out, ansi.Bold+ansi.Cyan+"  ╔═══════════════════════════════════╗"+ansi.Reset)
	fmt.Fprintln(p.out, ansi.Bold+ansi.Cyan+"  ║"+ansi.Reset+ansi.Bold+"   NIGHTSKY  "+ansi.Dim+"words into starlight"+ansi.Reset+ansi.Bold+ansi.Cyan+"  ║"+ansi.Reset)
	fmt.Fprintln(p.out, ansi.Bold+ansi.Cyan+"  ╚═══════════════════════════════════╝"+ansi.Reset)
	fmt.Fprintln(p.out)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.out, ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}

// Debug prints only when the Printer is verbose.
func (p *Printer) Debug(format string, args ...any) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.out, ansi.Dim+"debug: "+format+ansi.Reset+"\n", args...)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.out, ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.out, ansi.Yellow+ansi.Bold+"⚠ "+ansi.Reset+"%s\n", msg)
}

// Wrote reports an output file.
func (p *Printer) Wrote(path, format string) {
	fmt.Fprintf(p.out, ansi.Green+"✓ wrote"+ansi.Reset+" %s "+ansi.Dim+"(%s)"+ansi.Reset+"\n", path, format)
}

// SceneSummary prints one line per constellation.
func (p *Printer) SceneSummary(scene sky.Scene) {
	fmt.Fprintf(p.out, ansi.Bold+"sky:"+ansi.Reset+" %d constellation(s), %d star(s), %d connection(s)\n",
		len(scene.Paragraphs), len(scene.Stars), len(scene.Connections))
	for i, para := range scene.Paragraphs {
		n := len(scene.StarsOf(i))
		fmt.Fprintf(p.out, "  "+ansi.Cyan+"%-6s"+ansi.Reset+" %3d star(s)  "+ansi.Dim+"%s"+ansi.Reset+"\n",
			sky.Roman(i+1), n, excerpt(para, 48))
	}
}

// ClassificationTable prints each word with its colored category and the
// rule that chose it.
func (p *Printer) ClassificationTable(words []pos.Word) {
	if len(words) == 0 {
		fmt.Fprintln(p.out, ansi.Dim+"  (no words)"+ansi.Reset)
		return
	}
	width := 4
	for _, w := range words {
		if n := utf8.RuneCountInString(w.Text); n > width {
			width = n
		}
	}
	for _, w := range words {
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(w.Text))
		fmt.Fprintf(p.out, "  %s%s  %s  "+ansi.Dim+"%s"+ansi.Reset+"\n",
			w.Text, pad, ansi.Paint(pos.Color(w.Category), fmt.Sprintf("%-12s", w.Category)), w.Rule)
	}
}

// Legend prints the category palette.
func (p *Printer) Legend() {
	fmt.Fprintln(p.out, ansi.Bold+"legend:"+ansi.Reset)
	for _, c := range pos.Categories() {
		fmt.Fprintf(p.out, "  %s %-12s "+ansi.Dim+"%3.0f°"+ansi.Reset+"\n",
			ansi.Paint(pos.Color(c), "●"), c, pos.Angle(c))
	}
}

func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
