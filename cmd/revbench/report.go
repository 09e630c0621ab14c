package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alexshd/revbench"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
)

var (
	colorAccent = lipgloss.Color("#2CD7C7")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#5C7A84")
	colorWarn   = lipgloss.Color("#F4D03F")
)

// theme holds styles bound to one output stream.
type theme struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	best   lipgloss.Style
	muted  lipgloss.Style
	warn   lipgloss.Style
	border lipgloss.Style
}

// newTheme detects colour support on w. Non-terminals get plain text.
func newTheme(w io.Writer, noColor bool) theme {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return theme{
		title:  r.NewStyle().Bold(true).Foreground(colorAccent),
		header: r.NewStyle().Bold(true).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		best:   r.NewStyle().Padding(0, 1).Foreground(colorAccent),
		muted:  r.NewStyle().Foreground(colorMuted),
		warn:   r.NewStyle().Foreground(colorWarn),
		border: r.NewStyle().Foreground(colorBorder),
	}
}

// writeReport prints the comparison table, fastest first.
func writeReport(w io.Writer, th theme, results []revbench.Result, cfg revbench.Config) {
	ranked := revbench.Rank(results)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(th.border).
		Headers("#", "Variant", "Average", "Median", "Min", "Max", "vs fastest").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return th.header
			case row == 0:
				return th.best
			}
			return th.cell
		})

	for _, r := range ranked {
		t.Row(
			strconv.Itoa(r.Position),
			r.Label,
			r.Timing.Mean.String(),
			r.Timing.Median.String(),
			r.Timing.Min.String(),
			r.Timing.Max.String(),
			fmt.Sprintf("x%.2f", r.Relative),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, th.title.Render("Results"))
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)

	for _, r := range ranked {
		if r.Mismatches > 0 {
			fmt.Fprintln(w, th.warn.Render(fmt.Sprintf(
				"!! %s failed to maintain %s values", r.Label, humanize.Comma(r.Mismatches))))
		}
	}

	fmt.Fprintln(w, th.muted.Render(
		"## NOTE: These times are not representative of a single function call, but 3 function calls per iteration over a negative -> positive value range."))
	fmt.Fprintln(w, th.muted.Render(fmt.Sprintf(
		"## As such, the functions have been called %s times per timing cycle.", humanize.Comma(cfg.Calls()))))
}

// writeVariants prints the registry.
func writeVariants(w io.Writer, th theme, variants []revbench.Variant) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(th.border).
		Headers("Name", "Label").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return th.header
			}
			return th.cell
		})

	for _, v := range variants {
		t.Row(v.Name, v.Label)
	}

	fmt.Fprintln(w, t.Render())
}
