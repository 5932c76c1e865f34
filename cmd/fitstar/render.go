package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/limbo/fitstar/internal/display"
	"github.com/mattn/go-runewidth"
)

const barWidth = 20

var (
	faint   = color.New(color.Faint)
	accent  = color.New(color.FgMagenta, color.Bold)
	good    = color.New(color.FgGreen)
	warning = color.New(color.FgYellow)
)

// bar draws value out of 100 as a fixed-width block string.
func bar(value int) string {
	filled := display.ClampPercent(value) * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// scaledBar draws value relative to top.
func scaledBar(value, top int) string {
	if top <= 0 {
		return bar(0)
	}
	return bar(value * 100 / top)
}

// padRight pads by display width so CJK labels line up.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func demoTag(demo bool) string {
	if !demo {
		return ""
	}
	return faint.Sprint(" (demo)")
}

func calories(n int) string {
	return humanize.Comma(int64(n)) + " kcal"
}

// reportFailure prints why demo values are shown when the API itself failed.
func reportFailure[T any](w io.Writer, what string, s display.State[T]) {
	if s.Status == display.StatusFailed && s.Err != nil {
		warning.Fprintf(w, "! could not load %s: %v\n", what, s.Err)
	}
}

func heading(w io.Writer, title string) {
	accent.Fprintln(w, title)
}

func row(w io.Writer, label string, format string, args ...any) {
	fmt.Fprintf(w, "  %s %s\n", padRight(label, 14), fmt.Sprintf(format, args...))
}
