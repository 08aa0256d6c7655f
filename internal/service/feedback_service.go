package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/ntloc/EduPulse/internal/dto"
	"github.com/ntloc/EduPulse/internal/model"
	"github.com/ntloc/EduPulse/internal/repository"
	"github.com/rs/zerolog/log"
)

// FeedbackService is the submission pipeline and the stats entry point.
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, req dto.FeedbackSubmitDTO) (*dto.FeedbackResponseDTO, error)
	GetStudentFeedback(studentID uint) ([]dto.FeedbackResponseDTO, error)
	GetTeacherStats(ctx context.Context, teacherID uint) (*dto.StatsResponseDTO, error)
	GetOverviewStats(ctx context.Context) (*dto.StatsResponseDTO, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	userRepo     repository.UserRepository
	sentiment    SentimentService
	pace         LearnerPaceService
	stats        StatsService
	insight      InsightService
}

func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	userRepo repository.UserRepository,
	sentiment SentimentService,
	pace LearnerPaceService,
	stats StatsService,
	insight InsightService,
) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		sentiment:    sentiment,
		pace:         pace,
		stats:        stats,
		insight:      insight,
	}
}

// SubmitFeedback classifies and persists one submission. Sentiment and
// learning pace are derived here, once, from the student snapshot at
// submission time.
func (s *feedbackService) SubmitFeedback(ctx context.Context, req dto.FeedbackSubmitDTO) (*dto.FeedbackResponseDTO, error) {
	if req.Category == model.CategoryTeacher && req.TeacherID == nil {
		return nil, fmt.Errorf("teacher_id is required for category %q", model.CategoryTeacher)
	}
	if req.Category != model.CategoryTeacher && req.TeacherID != nil {
		return nil, fmt.Errorf("teacher_id must not be set for category %q", req.Category)
	}

	student, err := s.userRepo.FindByID(req.StudentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", req.StudentID).Msg("SubmitFeedback: student not found")
		return nil, fmt.Errorf("student not found with ID %d: %w", req.StudentID, err)
	}

	var responses model.FeedbackResponses
	if err := copier.Copy(&responses, req.Responses); err != nil {
		return nil, fmt.Errorf("error preparing feedback responses: %w", err)
	}

	feedback := model.Feedback{
		StudentID:    student.ID,
		Category:     req.Category,
		TeacherID:    req.TeacherID,
		Responses:    responses,
		Sentiment:    s.sentiment.Classify(ctx, responses.CombinedText()),
		LearningPace: s.pace.Classify(student.Attendance, student.Marks),
	}

	if err := s.feedbackRepo.Create(&feedback); err != nil {
		log.Error().Err(err).Uint("studentID", student.ID).Msg("SubmitFeedback: failed to persist feedback")
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	log.Info().
		Uint("feedbackID", feedback.ID).
		Str("category", feedback.Category).
		Str("sentiment", feedback.Sentiment).
		Str("learningPace", feedback.LearningPace).
		Msg("Feedback submitted")

	var resp dto.FeedbackResponseDTO
	if err := copier.Copy(&resp, feedback); err != nil {
		return nil, fmt.Errorf("error preparing feedback response: %w", err)
	}
	return &resp, nil
}

func (s *feedbackService) GetStudentFeedback(studentID uint) ([]dto.FeedbackResponseDTO, error) {
	feedbacks, err := s.feedbackRepo.FindByStudentID(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("GetStudentFeedback: repository error")
		return nil, fmt.Errorf("error fetching feedback for student %d: %w", studentID, err)
	}

	dtos := make([]dto.FeedbackResponseDTO, 0, len(feedbacks))
	if err := copier.Copy(&dtos, feedbacks); err != nil {
		return nil, fmt.Errorf("error preparing feedback list response: %w", err)
	}
	return dtos, nil
}

// GetTeacherStats builds the stats response for one teacher scope. Only a
// storage failure makes this return an error; a failing or unconfigured
// generation service still yields a complete response with a degraded insight
// section.
func (s *feedbackService) GetTeacherStats(ctx context.Context, teacherID uint) (*dto.StatsResponseDTO, error) {
	teacher, err := s.userRepo.FindByID(teacherID)
	if err != nil {
		log.Warn().Err(err).Uint("teacherID", teacherID).Msg("GetTeacherStats: teacher not found")
		return nil, fmt.Errorf("teacher not found with ID %d: %w", teacherID, err)
	}

	records, err := s.feedbackRepo.FindByTeacherID(teacherID)
	if err != nil {
		log.Error().Err(err).Uint("teacherID", teacherID).Msg("GetTeacherStats: repository error")
		return nil, fmt.Errorf("error fetching feedback for teacher %d: %w", teacherID, err)
	}

	aggregate := s.stats.Aggregate(records, &teacherID)
	insight := s.insight.Synthesize(ctx, feedbackTexts(records), teacher.Name)
	return assembleStats(aggregate, insight)
}

// GetOverviewStats is the global-scope variant covering all categories.
func (s *feedbackService) GetOverviewStats(ctx context.Context) (*dto.StatsResponseDTO, error) {
	records, err := s.feedbackRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetOverviewStats: repository error")
		return nil, fmt.Errorf("error fetching feedback: %w", err)
	}

	aggregate := s.stats.Aggregate(records, nil)
	insight := s.insight.Synthesize(ctx, feedbackTexts(records), "the campus")
	return assembleStats(aggregate, insight)
}

func feedbackTexts(records []model.Feedback) []string {
	texts := make([]string, 0, len(records))
	for _, fb := range records {
		if text := fb.Responses.CombinedText(); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}

// assembleStats merges the aggregate numbers and the insight section into the
// final response.
func assembleStats(aggregate AggregateStats, insight dto.InsightDTO) (*dto.StatsResponseDTO, error) {
	recent := make([]dto.FeedbackResponseDTO, 0, len(aggregate.Recent))
	if err := copier.Copy(&recent, aggregate.Recent); err != nil {
		return nil, fmt.Errorf("error preparing recent feedback: %w", err)
	}

	return &dto.StatsResponseDTO{
		TotalFeedback:    aggregate.Total,
		Positive:         aggregate.Positive,
		Neutral:          aggregate.Neutral,
		Negative:         aggregate.Negative,
		MonthlyTrend:     aggregate.MonthlyTrend,
		Recent:           recent,
		Summary:          insight.Summary,
		ImprovementAreas: insight.ImprovementAreas,
	}, nil
}
