package charts

import (
	"strings"

	"github.com/omarshaarawi/statsboard/internal/models"
)

// Canvas ids of the charts on the pages.
const (
	XGTrendID        = "xgTrendChart"
	XGVsGoalsID      = "xgVsGoalsChart"
	PassingID        = "passingChart"
	DefensiveRadarID = "defensiveRadarChart"
	GoalTimingID     = "goalTimingChart"
	TopScorersID     = "topScorersChart"
)

const (
	red    = "rgb(255, 99, 132)"
	blue   = "rgb(54, 162, 235)"
	yellow = "rgb(255, 206, 86)"
	teal   = "rgb(75, 192, 192)"
	purple = "rgb(153, 102, 255)"
	orange = "rgb(255, 159, 64)"
	amber  = "rgb(255, 205, 86)"
	grey   = "rgb(201, 203, 207)"
)

var (
	defaultTrendLabels = []string{"Sem 1", "Sem 2", "Sem 3", "Sem 4", "Sem 5"}
	defaultXGTrend     = []float64{1.2, 1.8, 1.5, 2.1, 1.9}
	defaultGoalsTrend  = []float64{1, 2, 1, 3, 2}
	defaultScatter     = []models.ScatterPoint{
		{X: 5.2, Y: 6}, {X: 8.7, Y: 9}, {X: 3.1, Y: 2}, {X: 6.5, Y: 7},
		{X: 4.8, Y: 5}, {X: 7.3, Y: 8}, {X: 2.5, Y: 3}, {X: 9.1, Y: 10},
	}
)

// GoalTimingLabels are the goal-timing buckets in display order.
var GoalTimingLabels = []string{"0-15", "16-30", "31-45", "46-60", "61-75", "76-90", "Extra"}

// BucketKey maps a bucket label to its time_distribution key: "16-30"
// becomes "16_30" and "Extra" becomes "extra".
func BucketKey(label string) string {
	if label == "Extra" {
		return "extra"
	}
	return strings.ToLower(strings.Replace(label, "-", "_", 1))
}

func GoalBuckets(distribution map[string]int) []models.GoalBucket {
	buckets := make([]models.GoalBucket, 0, len(GoalTimingLabels))
	for _, label := range GoalTimingLabels {
		key := BucketKey(label)
		buckets = append(buckets, models.GoalBucket{Label: label, Key: key, Goals: distribution[key]})
	}
	return buckets
}

func XGTrend(data models.XGAnalysis) Config {
	return Config{
		Type: TypeLine,
		Data: Data{
			Labels: orStrings(data.Dates, defaultTrendLabels),
			Datasets: []Dataset{
				{
					Label:           "xG",
					Values:          orFloats(data.XGTrend, defaultXGTrend),
					BorderColor:     Color(red),
					BackgroundColor: Color(alpha(red, "0.1")),
					BorderWidth:     2,
					Fill:            true,
					Tension:         0.4,
				},
				{
					Label:           "Gols Reais",
					Values:          orFloats(data.GoalsTrend, defaultGoalsTrend),
					BorderColor:     Color(blue),
					BackgroundColor: Color(alpha(blue, "0.1")),
					BorderWidth:     2,
					Fill:            true,
					Tension:         0.4,
				},
			},
		},
		Options: Options{
			Responsive: true,
			Plugins: Plugins{
				Title:  chartTitle("Tendência xG vs Gols Reais"),
				Legend: topLegend(),
			},
			Scales: map[string]Scale{
				"y": {BeginAtZero: true, Title: axisTitle("Valor")},
			},
		},
	}
}

func XGVsGoals(data models.XGAnalysis) Config {
	points := data.ScatterData
	if points == nil {
		points = append([]models.ScatterPoint(nil), defaultScatter...)
	}
	return Config{
		Type: TypeScatter,
		Data: Data{
			Datasets: []Dataset{{
				Label:           "Jogadores",
				Points:          points,
				BackgroundColor: Color(alpha(blue, "0.7")),
				BorderColor:     Color(alpha(blue, "1")),
				BorderWidth:     1,
				PointRadius:     6,
			}},
		},
		Options: Options{
			Responsive: true,
			Plugins: Plugins{
				Title: chartTitle("xG vs Gols (Eficiência)"),
			},
			Scales: map[string]Scale{
				"x": {BeginAtZero: true, Title: axisTitle("xG")},
				"y": {BeginAtZero: true, Title: axisTitle("Gols")},
			},
		},
	}
}

func Passing(data models.PassingStats) Config {
	colors := []string{blue, yellow, teal, purple, orange}
	return Config{
		Type: TypeBar,
		Data: Data{
			Labels: []string{"Passes Curtos", "Passes Longos", "Cruzamentos", "Passes Chave", "Bolas através"},
			Datasets: []Dataset{{
				Label: "Por Partida",
				Values: []float64{
					or(data.ShortPassesPerMatch, 45.2),
					or(data.LongPassesPerMatch, 12.1),
					or(data.CrossesPerMatch, 7.8),
					or(data.KeyPassesPerMatch, 2.3),
					or(data.ThroughBallsPerMatch, 1.2),
				},
				BackgroundColor: alphas(colors, "0.7"),
				BorderColor:     Colors(colors),
				BorderWidth:     1,
			}},
		},
		Options: Options{
			Responsive: true,
			Plugins: Plugins{
				Title:  chartTitle("Distribuição de Tipos de Passe"),
				Legend: hiddenLegend(),
			},
			Scales: map[string]Scale{
				"y": {BeginAtZero: true, Title: axisTitle("Quantidade por jogo")},
			},
		},
	}
}

func DefensiveRadar(data models.DefensiveStats) Config {
	return Config{
		Type: TypeRadar,
		Data: Data{
			Labels: []string{"Defesas", "Desarmes", "Interceptações", "Cortes", "Bloqueios", "Faltas"},
			Datasets: []Dataset{{
				Label: "Médias por Jogo",
				Values: []float64{
					or(data.SavesPerMatch, 3.2),
					or(data.TacklesPerMatch, 18.7),
					or(data.InterceptionsPerMatch, 12.5),
					or(data.ClearancesPerMatch, 22.1),
					or(data.BlocksPerMatch, 4.8),
					or(data.FoulsPerMatch, 13.8),
				},
				BackgroundColor:           Color(alpha(blue, "0.2")),
				BorderColor:               Color(blue),
				PointBackgroundColor:      blue,
				PointBorderColor:          "#fff",
				PointHoverBackgroundColor: "#fff",
				PointHoverBorderColor:     blue,
			}},
		},
		Options: Options{
			Responsive: true,
			Plugins: Plugins{
				Title:  chartTitle("Perfil Defensivo - Médias por Jogo"),
				Legend: topLegend(),
			},
			Scales: map[string]Scale{
				"r": {BeginAtZero: true, Ticks: &Ticks{StepSize: 5}},
			},
		},
	}
}

func GoalTiming(data models.GoalTiming) Config {
	buckets := GoalBuckets(data.TimeDistribution)
	labels := make([]string, len(buckets))
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
		values[i] = float64(b.Goals)
	}
	colors := []string{red, orange, amber, teal, blue, purple, grey}

	return Config{
		Type: TypeBar,
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Label:           "Gols",
				Values:          values,
				BackgroundColor: alphas(colors, "0.7"),
				BorderColor:     Colors(colors),
				BorderWidth:     1,
			}},
		},
		Options: Options{
			Responsive: true,
			Plugins: Plugins{
				Title:  chartTitle("Distribuição dos Gols por Intervalo de Tempo"),
				Legend: hiddenLegend(),
			},
			Scales: map[string]Scale{
				"y": {BeginAtZero: true, Title: axisTitle("Número de Gols"), Ticks: &Ticks{StepSize: 1}},
			},
		},
	}
}

// TopScorers returns false when there is nothing to chart.
func TopScorers(scorers []models.TopScorer) (Config, bool) {
	if len(scorers) == 0 {
		return Config{}, false
	}
	labels := make([]string, len(scorers))
	values := make([]float64, len(scorers))
	for i, s := range scorers {
		labels[i] = s.Name
		values[i] = float64(s.Goals)
	}
	return Config{
		Type: TypeBar,
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Label:           "Gols",
				Values:          values,
				BackgroundColor: Color(alpha(blue, "0.5")),
				BorderColor:     Color(alpha(blue, "1")),
				BorderWidth:     1,
			}},
		},
		Options: Options{
			Responsive: true,
			Plugins:    Plugins{Legend: hiddenLegend()},
		},
	}, true
}

// or mirrors `v || d`: zero means absent.
func or(v, d float64) float64 {
	if v == 0 {
		return d
	}
	return v
}

func orFloats(v, d []float64) []float64 {
	if v == nil {
		return append([]float64(nil), d...)
	}
	return v
}

func orStrings(v, d []string) []string {
	if v == nil {
		return append([]string(nil), d...)
	}
	return v
}

// alpha turns "rgb(r, g, b)" into "rgba(r, g, b, a)".
func alpha(rgb, a string) string {
	return "rgba(" + strings.TrimSuffix(strings.TrimPrefix(rgb, "rgb("), ")") + ", " + a + ")"
}

func alphas(rgbs []string, a string) Colors {
	out := make(Colors, len(rgbs))
	for i, c := range rgbs {
		out[i] = alpha(c, a)
	}
	return out
}
