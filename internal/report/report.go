// Package report writes search results.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	tt "github.com/gnoswap-labs/minigrep/internal/types"
)

// Options selects the output format. JSON takes precedence over Count,
// and Count over LineNumbers.
type Options struct {
	LineNumbers bool
	Count       bool
	JSON        bool
	Color       bool
}

// Printer writes matches to an io.Writer.
type Printer struct {
	w    io.Writer
	opts Options

	matchStyle *color.Color
	lineStyle  *color.Color
	sepStyle   *color.Color
}

// New creates a Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	p := &Printer{
		w:          w,
		opts:       opts,
		matchStyle: color.New(color.FgRed, color.Bold),
		lineStyle:  color.New(color.FgHiBlue, color.Bold),
		sepStyle:   color.New(color.FgCyan),
	}

	// styles must not depend on whether stdout happens to be a terminal
	for _, style := range []*color.Color{p.matchStyle, p.lineStyle, p.sepStyle} {
		if opts.Color {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
	}

	return p
}

type jsonReport struct {
	Query   string     `json:"query"`
	Path    string     `json:"path"`
	Count   int        `json:"count"`
	Matches []tt.Match `json:"matches"`
}

// Report writes matches in the order given.
func (p *Printer) Report(cfg tt.Config, matches []tt.Match) error {
	bw := bufio.NewWriter(p.w)

	var err error
	switch {
	case p.opts.JSON:
		err = p.writeJSON(bw, cfg, matches)
	case p.opts.Count:
		_, err = fmt.Fprintln(bw, len(matches))
	default:
		err = p.writeLines(bw, cfg.Query, matches)
	}
	if err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

func (p *Printer) writeLines(w io.Writer, query string, matches []tt.Match) error {
	for _, m := range matches {
		var line string
		if p.opts.LineNumbers {
			line = p.lineStyle.Sprint(strconv.Itoa(m.Line)) + p.sepStyle.Sprint(":") + p.highlight(m.Text, query)
		} else {
			line = p.highlight(m.Text, query)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) writeJSON(w io.Writer, cfg tt.Config, matches []tt.Match) error {
	if matches == nil {
		matches = []tt.Match{}
	}
	d, err := json.Marshal(jsonReport{
		Query:   cfg.Query,
		Path:    cfg.Path,
		Count:   len(matches),
		Matches: matches,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(d))
	return err
}

// highlight marks every non-overlapping occurrence of query in line.
func (p *Printer) highlight(line, query string) string {
	if !p.opts.Color || query == "" {
		return line
	}

	var b strings.Builder
	for {
		i := strings.Index(line, query)
		if i < 0 {
			b.WriteString(line)
			return b.String()
		}
		b.WriteString(line[:i])
		b.WriteString(p.matchStyle.Sprint(query))
		line = line[i+len(query):]
	}
}
