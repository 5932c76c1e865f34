// Package chart renders progress data as PNG images.
package chart

import (
	"errors"
	"io"
	"math"

	"github.com/limbo/fitstar/pkg/entity"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// The bundled font has no CJK glyphs, so bars get latin day names by position.
var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

const minYMax = 100.0

var barColor = drawing.ColorFromHex("8b5cf6")

// RenderWeekly writes a calories-per-day bar chart of the week.
func RenderWeekly(w io.Writer, progress *entity.ProgressData) error {
	if progress == nil {
		return errors.New("progress is nil")
	}
	bars := make([]gochart.Value, 0, len(dayNames))
	top := 0.0
	for i, name := range dayNames {
		v := 0.0
		if i < len(progress.Sessions) {
			v = float64(progress.Sessions[i].Calories)
		}
		top = math.Max(top, v)
		bars = append(bars, gochart.Value{
			Label: name,
			Value: v,
			Style: gochart.Style{FillColor: barColor, StrokeColor: barColor},
		})
	}
	graph := gochart.BarChart{
		Title:      "Calories this week",
		Background: gochart.Style{Padding: gochart.Box{Top: 40}},
		Width:      640,
		Height:     360,
		BarWidth:   48,
		// Fixed range keeps an idle week renderable
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Max(minYMax, math.Ceil(top*1.2))},
		},
		Bars: bars,
	}
	if err := graph.Render(gochart.PNG, w); err != nil {
		return errors.New("rendering weekly chart error: " + err.Error())
	}
	return nil
}
