package dto

// MonthlyTrendEntryDTO is one month-of-year bucket with at least one record.
type MonthlyTrendEntryDTO struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// InsightDTO is the synthesized insight pair. Both fields are always
// populated; degraded paths substitute placeholders instead of leaving them
// empty.
type InsightDTO struct {
	Summary          string   `json:"summary"`
	ImprovementAreas []string `json:"improvement_areas"`
}

// StatsResponseDTO is the full stats payload for a scope (a teacher or the
// whole campus): aggregate counts plus the AI insight section.
type StatsResponseDTO struct {
	TotalFeedback    int                    `json:"total_feedback"`
	Positive         int                    `json:"positive"`
	Neutral          int                    `json:"neutral"`
	Negative         int                    `json:"negative"`
	MonthlyTrend     []MonthlyTrendEntryDTO `json:"monthly_trend"`
	Recent           []FeedbackResponseDTO  `json:"recent"`
	Summary          string                 `json:"summary"`
	ImprovementAreas []string               `json:"improvement_areas"`
}
