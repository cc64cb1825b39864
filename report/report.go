// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/quickly-tally/models"
)

const (
	bold  = "\x1b[1m"
	green = "\x1b[32m"
	reset = "\x1b[0m"
)

// UseColor reports whether f is a terminal and NO_COLOR is unset.
func UseColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type printer struct {
	w     io.Writer
	color bool
	err   error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + reset
}

// Write renders one result.
func Write(w io.Writer, snap models.ResultSnapshot, color bool) error {
	p := &printer{w: w, color: color}

	header := fmt.Sprintf("%s: %d candidates", snap.Method, len(snap.Candidates))
	if snap.Voters > 0 {
		header += ", " + humanize.Comma(int64(snap.Voters)) + " voters"
	}
	p.linef("%s", p.paint(bold, header))

	if snap.Condorcet {
		p.linef("  Condorcet winner found")
	}

	for i, round := range snap.Rounds {
		p.linef("  %s round: %s", humanize.Ordinal(i+1), joinWinners(round))
	}

	switch len(snap.Winners) {
	case 0:
		p.linef("  no winner")
	case 1:
		p.linef("  winner: %s", p.paint(green, joinWinners(snap.Winners)))
	default:
		p.linef("  tie: %s", p.paint(green, joinWinners(snap.Winners)))
	}

	return p.err
}

// WriteHistory renders archived results as a table, newest first.
func WriteHistory(w io.Writer, snaps []models.ResultSnapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMETHOD\tVOTERS\tWINNERS\tCOMPUTED")
	for _, s := range snaps {
		names := make([]string, len(s.Winners))
		for i, win := range s.Winners {
			names[i] = win.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Method, humanize.Comma(int64(s.Voters)),
			strings.Join(names, ", "), age(s.ComputedAt))
	}
	return tw.Flush()
}

func age(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func joinWinners(ws []models.Winner) string {
	parts := make([]string, len(ws))
	for i, win := range ws {
		parts[i] = win.Name + " (" + Score(win.Score) + ")"
	}
	return strings.Join(parts, ", ")
}

// Score formats a winner score: whole numbers without decimals, everything
// else to two places.
func Score(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return humanize.Comma(int64(f))
	}
	return humanize.FormatFloat("#,###.##", f)
}
