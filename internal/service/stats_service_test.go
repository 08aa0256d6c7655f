package service

import (
	"testing"
	"time"

	"github.com/ntloc/EduPulse/internal/model"
	"github.com/stretchr/testify/assert"
)

func teacherFeedback(id uint, teacherID uint, sentiment string, createdAt time.Time) model.Feedback {
	tid := teacherID
	return model.Feedback{
		ID:           id,
		StudentID:    1,
		Category:     model.CategoryTeacher,
		TeacherID:    &tid,
		Sentiment:    sentiment,
		LearningPace: model.PaceSlow,
		CreatedAt:    createdAt,
	}
}

func hostelFeedback(id uint, sentiment string, createdAt time.Time) model.Feedback {
	return model.Feedback{
		ID:           id,
		StudentID:    1,
		Category:     model.CategoryHostel,
		Sentiment:    sentiment,
		LearningPace: model.PaceSlow,
		CreatedAt:    createdAt,
	}
}

func TestAggregateCountsSumToTotal(t *testing.T) {
	svc := NewStatsService()
	now := time.Now()

	records := []model.Feedback{
		teacherFeedback(1, 10, model.SentimentPositive, now),
		teacherFeedback(2, 10, model.SentimentNegative, now),
		teacherFeedback(3, 10, model.SentimentNeutral, now),
		teacherFeedback(4, 10, model.SentimentPositive, now),
	}

	teacherID := uint(10)
	stats := svc.Aggregate(records, &teacherID)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Positive)
	assert.Equal(t, 1, stats.Neutral)
	assert.Equal(t, 1, stats.Negative)
	assert.Equal(t, stats.Total, stats.Positive+stats.Neutral+stats.Negative)
}

func TestAggregateScopeFiltering(t *testing.T) {
	svc := NewStatsService()
	now := time.Now()

	records := []model.Feedback{
		teacherFeedback(1, 10, model.SentimentPositive, now),
		teacherFeedback(2, 99, model.SentimentPositive, now),
		hostelFeedback(3, model.SentimentNegative, now),
	}

	t.Run("teacher scope counts only that teacher", func(t *testing.T) {
		teacherID := uint(10)
		stats := svc.Aggregate(records, &teacherID)
		assert.Equal(t, 1, stats.Total)
		assert.Equal(t, 1, stats.Positive)
	})

	t.Run("global scope counts everything", func(t *testing.T) {
		stats := svc.Aggregate(records, nil)
		assert.Equal(t, 3, stats.Total)
	})
}

func TestAggregateRecentIsNewestFirstCappedAtFive(t *testing.T) {
	svc := NewStatsService()
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	var records []model.Feedback
	for i := 0; i < 7; i++ {
		records = append(records, teacherFeedback(uint(i+1), 10, model.SentimentNeutral, base.Add(time.Duration(i)*time.Hour)))
	}

	teacherID := uint(10)
	stats := svc.Aggregate(records, &teacherID)

	assert.Len(t, stats.Recent, RecentFeedbackLimit)
	for i := 0; i < len(stats.Recent)-1; i++ {
		assert.True(t, stats.Recent[i].CreatedAt.After(stats.Recent[i+1].CreatedAt),
			"recent records must be strictly newest-first")
	}
	assert.Equal(t, uint(7), stats.Recent[0].ID)
}

func TestAggregateRecentShorterThanLimit(t *testing.T) {
	svc := NewStatsService()
	now := time.Now()

	records := []model.Feedback{
		teacherFeedback(1, 10, model.SentimentPositive, now),
		teacherFeedback(2, 10, model.SentimentPositive, now.Add(time.Minute)),
	}

	teacherID := uint(10)
	stats := svc.Aggregate(records, &teacherID)
	assert.Len(t, stats.Recent, 2)
}

func TestAggregateMonthlyTrend(t *testing.T) {
	svc := NewStatsService()

	records := []model.Feedback{
		teacherFeedback(1, 10, model.SentimentPositive, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)),
		teacherFeedback(2, 10, model.SentimentNeutral, time.Date(2025, time.January, 9, 0, 0, 0, 0, time.UTC)),
		teacherFeedback(3, 10, model.SentimentNegative, time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)),
	}

	teacherID := uint(10)
	stats := svc.Aggregate(records, &teacherID)

	// Only months with records appear, ascending by month number.
	assert.Len(t, stats.MonthlyTrend, 2)
	assert.Equal(t, "January", stats.MonthlyTrend[0].Month)
	assert.Equal(t, 1, stats.MonthlyTrend[0].Count)
	assert.Equal(t, "March", stats.MonthlyTrend[1].Month)
	assert.Equal(t, 2, stats.MonthlyTrend[1].Count)
	for _, entry := range stats.MonthlyTrend {
		assert.Greater(t, entry.Count, 0)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	svc := NewStatsService()

	stats := svc.Aggregate(nil, nil)

	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.MonthlyTrend)
	assert.Empty(t, stats.Recent)
}
