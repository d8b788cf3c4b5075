package nav

// Stat is one tile of the weekly summary.
type Stat struct {
	Label string
	Value string
}

// WeeklySummary returns the fixed weekly statistics shown on the dashboard.
// Values are literals; there is no data source behind them.
func WeeklySummary() []Stat {
	return []Stat{
		{Label: "Treinos Realizados", Value: "4/5"},
		{Label: "Calorias (média)", Value: "2.100"},
		{Label: "Água (média)", Value: "2.5L"},
		{Label: "Peso Atual", Value: "75kg"},
	}
}
