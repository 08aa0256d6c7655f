package service

import (
	"sort"
	"time"

	"github.com/ntloc/EduPulse/internal/dto"
	"github.com/ntloc/EduPulse/internal/model"
)

// RecentFeedbackLimit is how many of the newest records a stats response
// carries.
const RecentFeedbackLimit = 5

// AggregateStats is the numeric half of a stats response, before the AI
// insight section is attached.
type AggregateStats struct {
	Total    int
	Positive int
	Neutral  int
	Negative int

	MonthlyTrend []dto.MonthlyTrendEntryDTO
	Recent       []model.Feedback
}

// StatsService aggregates a scoped snapshot of feedback records. A nil
// teacherID means the global (campus-wide) scope.
type StatsService interface {
	Aggregate(records []model.Feedback, teacherID *uint) AggregateStats
}

type statsService struct{}

func NewStatsService() StatsService {
	return &statsService{}
}

func (s *statsService) Aggregate(records []model.Feedback, teacherID *uint) AggregateStats {
	scoped := filterByScope(records, teacherID)

	var stats AggregateStats
	stats.Total = len(scoped)

	// One pass for sentiment counts and month-of-year buckets.
	var monthCounts [13]int
	for _, fb := range scoped {
		switch fb.Sentiment {
		case model.SentimentPositive:
			stats.Positive++
		case model.SentimentNegative:
			stats.Negative++
		default:
			stats.Neutral++
		}
		monthCounts[int(fb.CreatedAt.Month())]++
	}

	for m := 1; m <= 12; m++ {
		if monthCounts[m] == 0 {
			continue
		}
		stats.MonthlyTrend = append(stats.MonthlyTrend, dto.MonthlyTrendEntryDTO{
			Month: time.Month(m).String(),
			Count: monthCounts[m],
		})
	}

	recent := make([]model.Feedback, len(scoped))
	copy(recent, scoped)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > RecentFeedbackLimit {
		recent = recent[:RecentFeedbackLimit]
	}
	stats.Recent = recent

	return stats
}

func filterByScope(records []model.Feedback, teacherID *uint) []model.Feedback {
	if teacherID == nil {
		return records
	}
	scoped := make([]model.Feedback, 0, len(records))
	for _, fb := range records {
		if fb.Category == model.CategoryTeacher && fb.TeacherID != nil && *fb.TeacherID == *teacherID {
			scoped = append(scoped, fb)
		}
	}
	return scoped
}
