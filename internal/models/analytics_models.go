package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type XGAnalysis struct {
	Dates       []string       `json:"dates"`
	XGTrend     []float64      `json:"xg_trend"`
	GoalsTrend  []float64      `json:"goals_trend"`
	ScatterData []ScatterPoint `json:"scatter_data,omitempty"`
	Players     []PlayerXG     `json:"players"`
}

type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PlayerXG struct {
	Name    string  `json:"name"`
	XG      float64 `json:"xg"`
	Goals   float64 `json:"goals"`
	XGPer90 float64 `json:"xg_per_90"`
}

type PassingStats struct {
	AvgPassAccuracy      float64 `json:"avg_pass_accuracy"`
	TotalPasses          float64 `json:"total_passes"`
	KeyPassesPerMatch    float64 `json:"key_passes_per_match"`
	ShortPassesPerMatch  float64 `json:"short_passes_per_match"`
	LongPassesPerMatch   float64 `json:"long_passes_per_match"`
	CrossesPerMatch      float64 `json:"crosses_per_match"`
	ThroughBallsPerMatch float64 `json:"through_balls_per_match"`
	LongBallAccuracy     float64 `json:"long_ball_accuracy,omitempty"`
}

type DefensiveStats struct {
	SavesPerMatch         float64 `json:"saves_per_match"`
	InterceptionsPerMatch float64 `json:"interceptions_per_match"`
	TacklesPerMatch       float64 `json:"tackles_per_match"`
	ClearancesPerMatch    float64 `json:"clearances_per_match"`
	BlocksPerMatch        float64 `json:"blocks_per_match"`
	FoulsPerMatch         float64 `json:"fouls_per_match,omitempty"`
	CleanSheets           int     `json:"clean_sheets"`
}

type GoalTiming struct {
	TotalGoals       int            `json:"total_goals"`
	FirstHalfGoals   int            `json:"first_half_goals"`
	SecondHalfGoals  int            `json:"second_half_goals"`
	TimeDistribution map[string]int `json:"time_distribution"`
	AvgGoalMinute    float64        `json:"avg_goal_minute"`
	EarlyGoals0To15  int            `json:"early_goals_0_15"`
	LateGoals75To90  int            `json:"late_goals_75_90"`
}

type Team struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type Prediction struct {
	MostLikely     string        `json:"most_likely"`
	Probabilities  Probabilities `json:"probabilities"`
	BothTeamsScore float64       `json:"both_teams_score"`
	Over25         float64       `json:"over_2_5"`
	Under25        float64       `json:"under_2_5"`
}

type TopScorer struct {
	Name  string `json:"name"`
	Team  string `json:"team"`
	Goals int    `json:"goals"`
}

type SearchResult struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Team string `json:"team"`
}

type UpdateResponse struct {
	Message string `json:"message"`
}

// ID accepts both JSON numbers and strings; select controls compare ids as text.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

type ScoreProbability struct {
	Score   string
	Percent float64
}

// Probabilities keeps the scorelines in payload order so that sorting by
// value can be stable with respect to what the backend sent.
type Probabilities []ScoreProbability

func (p *Probabilities) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("probabilities: %w", err)
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("probabilities: expected object, got %v", tok)
	}

	out := Probabilities{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("probabilities: %w", err)
		}
		key, _ := keyTok.(string)

		var v float64
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("probabilities[%s]: %w", key, err)
		}
		out = append(out, ScoreProbability{Score: key, Percent: v})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("probabilities: %w", err)
	}

	*p = out
	return nil
}

func (p Probabilities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sp := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sp.Score)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(sp.Percent)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
