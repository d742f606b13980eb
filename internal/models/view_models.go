package models

type XGRow struct {
	Name      string
	XG        string
	Goals     string
	Diff      string
	DiffClass string
	XGPer90   string
}

type XGView struct {
	Rows []XGRow
	// Empty is set when the payload had no players.
	Empty   bool
	Offline bool
}

type StatCard struct {
	ID    string
	Label string
	Value string
}

type PassingView struct {
	Cards   []StatCard
	Offline bool
}

type DefensiveView struct {
	Cards   []StatCard
	Offline bool
}

type GoalInsights struct {
	FirstHalf  string
	SecondHalf string
	Late       string
	Early      string
}

type GoalBucket struct {
	Label string
	Key   string
	Goals int
}

type GoalTimingView struct {
	Buckets       []GoalBucket
	Insights      GoalInsights
	TotalGoals    int
	AvgGoalMinute string
	Offline       bool
}

type TeamOption struct {
	Value string
	Label string
}

type TeamSelectView struct {
	Placeholder string
	Options     []TeamOption
	Offline     bool
}

type PredictionRow struct {
	Score       string
	Probability string
	Width       float64
	MostLikely  bool
	RowClass    string
	BarClass    string
}

type PredictionView struct {
	HomeTeam       string
	AwayTeam       string
	Rows           []PredictionRow
	MostLikely     string
	BothTeamsScore string
	Over25         string
	Under25        string
	BothWidth      float64
	OverWidth      float64
	UnderWidth     float64
	Offline        bool
}

type TopScorersView struct {
	Scorers []TopScorer
}
