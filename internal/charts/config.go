package charts

import (
	"encoding/json"

	"github.com/omarshaarawi/statsboard/internal/models"
)

// Chart types understood by the page script.
const (
	TypeLine    = "line"
	TypeBar     = "bar"
	TypeScatter = "scatter"
	TypeRadar   = "radar"
)

// Config is a declarative Chart.js configuration. It is serialized as-is
// into the page and handed to `new Chart(canvas, config)`.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels,omitempty"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset holds either Values (indexed by label) or Points (scatter).
type Dataset struct {
	Label  string
	Values []float64
	Points []models.ScatterPoint

	BackgroundColor Colors
	BorderColor     Colors
	BorderWidth     float64
	Fill            bool
	Tension         float64
	PointRadius     float64

	PointBackgroundColor      string
	PointBorderColor          string
	PointHoverBackgroundColor string
	PointHoverBorderColor     string
}

type datasetJSON struct {
	Label                     string  `json:"label"`
	Data                      any     `json:"data"`
	BackgroundColor           Colors  `json:"backgroundColor,omitempty"`
	BorderColor               Colors  `json:"borderColor,omitempty"`
	BorderWidth               float64 `json:"borderWidth,omitempty"`
	Fill                      bool    `json:"fill,omitempty"`
	Tension                   float64 `json:"tension,omitempty"`
	PointRadius               float64 `json:"pointRadius,omitempty"`
	PointBackgroundColor      string  `json:"pointBackgroundColor,omitempty"`
	PointBorderColor          string  `json:"pointBorderColor,omitempty"`
	PointHoverBackgroundColor string  `json:"pointHoverBackgroundColor,omitempty"`
	PointHoverBorderColor     string  `json:"pointHoverBorderColor,omitempty"`
}

func (d Dataset) MarshalJSON() ([]byte, error) {
	out := datasetJSON{
		Label:                     d.Label,
		BackgroundColor:           d.BackgroundColor,
		BorderColor:               d.BorderColor,
		BorderWidth:               d.BorderWidth,
		Fill:                      d.Fill,
		Tension:                   d.Tension,
		PointRadius:               d.PointRadius,
		PointBackgroundColor:      d.PointBackgroundColor,
		PointBorderColor:          d.PointBorderColor,
		PointHoverBackgroundColor: d.PointHoverBackgroundColor,
		PointHoverBorderColor:     d.PointHoverBorderColor,
	}
	switch {
	case d.Points != nil:
		out.Data = d.Points
	case d.Values != nil:
		out.Data = d.Values
	default:
		out.Data = []float64{}
	}
	return json.Marshal(out)
}

// Colors is a single color or one color per data point. A single color is
// written as a plain string.
type Colors []string

func Color(c string) Colors {
	return Colors{c}
}

func (c Colors) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

type Options struct {
	Responsive bool             `json:"responsive"`
	Plugins    Plugins          `json:"plugins"`
	Scales     map[string]Scale `json:"scales,omitempty"`
}

type Plugins struct {
	Title  *Title  `json:"title,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
}

type Title struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
	Font    *Font  `json:"font,omitempty"`
}

type Font struct {
	Size int `json:"size"`
}

type Legend struct {
	Display  *bool  `json:"display,omitempty"`
	Position string `json:"position,omitempty"`
}

type Scale struct {
	BeginAtZero bool   `json:"beginAtZero"`
	Title       *Title `json:"title,omitempty"`
	Ticks       *Ticks `json:"ticks,omitempty"`
}

type Ticks struct {
	StepSize float64 `json:"stepSize"`
}

func chartTitle(text string) *Title {
	return &Title{Display: true, Text: text, Font: &Font{Size: 14}}
}

func axisTitle(text string) *Title {
	return &Title{Display: true, Text: text}
}

func hiddenLegend() *Legend {
	off := false
	return &Legend{Display: &off}
}

func topLegend() *Legend {
	return &Legend{Position: "top"}
}
