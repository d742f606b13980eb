package models

// Category names one kind of backend request. Loads are cancelled and
// tracked per category.
type Category string

const (
	CategoryXG         Category = "xg"
	CategoryPassing    Category = "passing"
	CategoryDefensive  Category = "defensive"
	CategoryGoalTiming Category = "goal_timing"
	CategoryTeams      Category = "teams"
	CategoryPrediction Category = "prediction"
	CategoryTopScorers Category = "top_scorers"
)
