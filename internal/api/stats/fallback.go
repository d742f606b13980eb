package stats

import "github.com/omarshaarawi/statsboard/internal/models"

// Sample payloads shown while the backend is offline. Each call returns a
// fresh value so renderers may not alias them.

func FallbackXGAnalysis() models.XGAnalysis {
	return models.XGAnalysis{
		Dates:      []string{"Jan", "Fev", "Mar", "Abr", "Mai"},
		XGTrend:    []float64{1.2, 1.8, 1.5, 2.1, 1.9},
		GoalsTrend: []float64{1, 2, 1, 3, 2},
		Players: []models.PlayerXG{
			{Name: "Jogador A", XG: 8.7, Goals: 9, XGPer90: 0.65},
			{Name: "Jogador B", XG: 5.2, Goals: 6, XGPer90: 0.48},
			{Name: "Jogador C", XG: 3.1, Goals: 2, XGPer90: 0.32},
			{Name: "Jogador D", XG: 6.5, Goals: 7, XGPer90: 0.55},
			{Name: "Jogador E", XG: 4.8, Goals: 5, XGPer90: 0.41},
		},
	}
}

// FallbackPassingStats has no long ball accuracy; the card shows its default.
func FallbackPassingStats() models.PassingStats {
	return models.PassingStats{
		AvgPassAccuracy:      82.5,
		TotalPasses:          15420,
		KeyPassesPerMatch:    2.3,
		ShortPassesPerMatch:  45.2,
		LongPassesPerMatch:   12.1,
		CrossesPerMatch:      7.8,
		ThroughBallsPerMatch: 1.2,
	}
}

func FallbackDefensiveStats() models.DefensiveStats {
	return models.DefensiveStats{
		SavesPerMatch:         3.2,
		InterceptionsPerMatch: 12.5,
		TacklesPerMatch:       18.7,
		ClearancesPerMatch:    22.1,
		BlocksPerMatch:        4.8,
		FoulsPerMatch:         13.8,
		CleanSheets:           8,
	}
}

func FallbackGoalTiming() models.GoalTiming {
	return models.GoalTiming{
		TotalGoals:      42,
		FirstHalfGoals:  18,
		SecondHalfGoals: 24,
		TimeDistribution: map[string]int{
			"0_15":  4,
			"16_30": 7,
			"31_45": 7,
			"46_60": 9,
			"61_75": 8,
			"76_90": 6,
			"extra": 1,
		},
		AvgGoalMinute:   52.3,
		EarlyGoals0To15: 4,
		LateGoals75To90: 7,
	}
}

func FallbackTeams() []models.Team {
	return []models.Team{
		{ID: "1", Name: "Manchester United"},
		{ID: "2", Name: "Liverpool"},
		{ID: "3", Name: "Manchester City"},
		{ID: "4", Name: "Chelsea"},
		{ID: "5", Name: "Arsenal"},
	}
}

func FallbackPrediction() models.Prediction {
	return models.Prediction{
		MostLikely: "1-1",
		Probabilities: models.Probabilities{
			{Score: "0-0", Percent: 15.2},
			{Score: "1-0", Percent: 12.5},
			{Score: "0-1", Percent: 11.8},
			{Score: "1-1", Percent: 18.3},
			{Score: "2-0", Percent: 8.7},
			{Score: "0-2", Percent: 7.9},
			{Score: "2-1", Percent: 9.4},
			{Score: "1-2", Percent: 8.1},
			{Score: "2-2", Percent: 5.3},
			{Score: "3+", Percent: 2.8},
		},
		BothTeamsScore: 68.4,
		Over25:         42.7,
		Under25:        57.3,
	}
}
