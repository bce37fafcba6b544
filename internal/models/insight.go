package models

// InsightReport holds the computed habit/severity associations for a user
// within a window, plus a short human-readable summary line.
type InsightReport struct {
	Correlations map[string]float64 `json:"correlations"` // habit category -> Pearson r
	Summary      string             `json:"summary"`
	WindowDays   int                `json:"window_days"`
	SampleDays   int                `json:"sample_days"` // paired observations used
}
