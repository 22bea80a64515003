package payoff

import "fmt"

// BalancePoint is the remaining negative equity for every scenario at one month.
type BalancePoint struct {
	Month    int                `json:"month"`
	Balances map[string]float64 `json:"balances"`
}

// SeriesKey names a scenario within a BalancePoint, e.g. "12mo".
func SeriesKey(timeline int) string {
	return fmt.Sprintf("%dmo", timeline)
}

// BalanceSeries traces each scenario's remaining negative equity from month 0
// to the longest timeline. Month 0 holds the full negative equity, and a
// scenario reads zero once its schedule has run out. A scenario stops
// appearing after its own timeline. Returns nil when there is no negative
// equity to plot.
func BalanceSeries(scenarios []PayoffScenario, annualInterestRate float64) []BalancePoint {
	if len(scenarios) == 0 || scenarios[0].NegativeEquity == 0 {
		return nil
	}

	maxMonths := 0
	schedules := make([][]float64, len(scenarios))
	for i, scenario := range scenarios {
		if scenario.Timeline > maxMonths {
			maxMonths = scenario.Timeline
		}
		for _, entry := range scenario.Schedule(annualInterestRate) {
			schedules[i] = append(schedules[i], entry.RemainingBalance)
		}
	}

	points := make([]BalancePoint, 0, maxMonths+1)
	for month := 0; month <= maxMonths; month++ {
		point := BalancePoint{Month: month, Balances: make(map[string]float64, len(scenarios))}
		for i, scenario := range scenarios {
			if month > scenario.Timeline || scenario.NegativeEquity == 0 {
				continue
			}
			key := SeriesKey(scenario.Timeline)
			switch {
			case month == 0:
				point.Balances[key] = scenario.NegativeEquity
			case month <= len(schedules[i]):
				point.Balances[key] = schedules[i][month-1]
			default:
				point.Balances[key] = 0
			}
		}
		points = append(points, point)
	}

	return points
}
