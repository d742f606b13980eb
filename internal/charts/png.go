package charts

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrUnsupportedType = errors.New("chart type has no image rendition")

const (
	pngWidth  = 800
	pngHeight = 400
)

// RenderPNG draws a configuration as a static image for surfaces that cannot
// run the page script.
func RenderPNG(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch cfg.Type {
	case TypeBar:
		err = renderBar(cfg, &buf)
	case TypeLine:
		err = renderLine(cfg, &buf)
	case TypeScatter:
		err = renderScatter(cfg, &buf)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, cfg.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("error rendering %s chart: %w", cfg.Type, err)
	}
	return buf.Bytes(), nil
}

func renderBar(cfg Config, buf *bytes.Buffer) error {
	if len(cfg.Data.Datasets) == 0 {
		return errors.New("no datasets")
	}
	ds := cfg.Data.Datasets[0]

	bars := make([]chart.Value, 0, len(ds.Values))
	maxVal := 0.0
	for i, v := range ds.Values {
		maxVal = max(maxVal, v)
		label := ""
		if i < len(cfg.Data.Labels) {
			label = cfg.Data.Labels[i]
		}
		col := parseColor(colorAt(ds.BorderColor, i))
		bars = append(bars, chart.Value{
			Label: label,
			Value: v,
			Style: chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1},
		})
	}

	ch := chart.BarChart{
		Title:      titleText(cfg),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		Width:      pngWidth,
		Height:     pngHeight,
		BarWidth:   pngWidth / (2 * max(len(bars), 1)),
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: max(maxVal, 1)}},
		Bars:       bars,
	}
	return ch.Render(chart.PNG, buf)
}

func renderLine(cfg Config, buf *bytes.Buffer) error {
	ticks := make([]chart.Tick, len(cfg.Data.Labels))
	for i, label := range cfg.Data.Labels {
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}
	// The axis spans the ticks, so a single label needs a blank neighbour.
	if len(ticks) == 1 {
		ticks = append(ticks, chart.Tick{Value: 1})
	}

	var ys []float64
	n := len(cfg.Data.Labels)
	series := make([]chart.Series, 0, len(cfg.Data.Datasets))
	for _, ds := range cfg.Data.Datasets {
		ys = append(ys, ds.Values...)
		n = max(n, len(ds.Values))
		xs := make([]float64, len(ds.Values))
		for i := range ds.Values {
			xs[i] = float64(i)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ds.Values,
			Style: chart.Style{
				StrokeColor: parseColor(colorAt(ds.BorderColor, 0)),
				StrokeWidth: 2,
			},
		})
	}

	ch := chart.Chart{
		Title:      titleText(cfg),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		Width:      pngWidth,
		Height:     pngHeight,
		XAxis:      chart.XAxis{Ticks: ticks, Range: &chart.ContinuousRange{Min: 0, Max: float64(max(n-1, 1))}},
		YAxis:      chart.YAxis{Name: axisName(cfg, "y"), Range: axisRange(ys)},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, buf)
}

func renderScatter(cfg Config, buf *bytes.Buffer) error {
	var allX, allY []float64
	series := make([]chart.Series, 0, len(cfg.Data.Datasets))
	for _, ds := range cfg.Data.Datasets {
		xs := make([]float64, len(ds.Points))
		ys := make([]float64, len(ds.Points))
		for i, p := range ds.Points {
			xs[i] = p.X
			ys[i] = p.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(parseColor(colorAt(ds.BorderColor, 0))),
		})
		allX = append(allX, xs...)
		allY = append(allY, ys...)
	}

	ch := chart.Chart{
		Title:      titleText(cfg),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		Width:      pngWidth,
		Height:     pngHeight,
		XAxis:      chart.XAxis{Name: axisName(cfg, "x"), Range: axisRange(allX)},
		YAxis:      chart.YAxis{Name: axisName(cfg, "y"), Range: axisRange(allY)},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, buf)
}

// axisRange spans values from zero, or from the smallest value when it is
// negative. The range is never empty so flat data still renders.
func axisRange(values []float64) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	if hi-lo == 0 {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// pointStyle draws points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

func titleText(cfg Config) string {
	if cfg.Options.Plugins.Title == nil {
		return ""
	}
	return cfg.Options.Plugins.Title.Text
}

func axisName(cfg Config, axis string) string {
	if s, ok := cfg.Options.Scales[axis]; ok && s.Title != nil {
		return s.Title.Text
	}
	return ""
}

func colorAt(c Colors, i int) string {
	switch {
	case len(c) == 0:
		return ""
	case i < len(c):
		return c[i]
	default:
		return c[0]
	}
}

// parseColor reads CSS "rgb(r, g, b)" and "rgba(r, g, b, a)" strings.
// Anything else falls back to the default series blue.
func parseColor(css string) drawing.Color {
	fallback := chart.ColorBlue

	open := strings.IndexByte(css, '(')
	if open < 0 || !strings.HasSuffix(css, ")") {
		return fallback
	}
	parts := strings.Split(css[open+1:len(css)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return fallback
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return fallback
		}
		rgb[i] = uint8(n)
	}
	col := drawing.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return fallback
		}
		col.A = uint8(a * 255)
	}
	return col
}
