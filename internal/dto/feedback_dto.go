package dto

import "time"

// FeedbackResponsesDTO mirrors the fixed criteria shape of a submission.
// Additional comments are the only optional field.
type FeedbackResponsesDTO struct {
	TeachingQuality    string `json:"teaching_quality" binding:"required"`
	Clarity            string `json:"clarity" binding:"required"`
	Support            string `json:"support" binding:"required"`
	Engagement         string `json:"engagement" binding:"required"`
	AdditionalComments string `json:"additional_comments"`
}

// FeedbackSubmitDTO is the request body for submitting feedback.
// StudentID is carried in the body for now (identity will come from the auth
// layer once it is wired in front of this service).
type FeedbackSubmitDTO struct {
	StudentID uint                 `json:"student_id" binding:"required"`
	Category  string               `json:"category" binding:"required,oneof=teacher hostel campus"`
	TeacherID *uint                `json:"teacher_id"`
	Responses FeedbackResponsesDTO `json:"responses" binding:"required"`
}

// FeedbackResponseDTO is a stored feedback record as returned to clients.
type FeedbackResponseDTO struct {
	ID           uint                 `json:"id"`
	StudentID    uint                 `json:"student_id"`
	Category     string               `json:"category"`
	TeacherID    *uint                `json:"teacher_id,omitempty"`
	Responses    FeedbackResponsesDTO `json:"responses"`
	Sentiment    string               `json:"sentiment"`
	LearningPace string               `json:"learning_pace"`
	CreatedAt    time.Time            `json:"created_at"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
