package model

// Stats summarizes the retained password generation history. It is derived
// data: every read recomputes it from the history records.
type Stats struct {
	TotalGenerated        int            `json:"total_generated"`
	GeneratedToday        int            `json:"generated_today"`
	GeneratedThisWeek     int            `json:"generated_this_week"`
	AverageLength         float64        `json:"average_length"`
	AverageResponseTimeMS float64        `json:"average_response_time_ms"`
	StrengthDistribution  map[string]int `json:"strength_distribution"`
}
