package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

const (
	PaceFast = "fast"
	PaceSlow = "slow"
)

const (
	CategoryTeacher = "teacher"
	CategoryHostel  = "hostel"
	CategoryCampus  = "campus"
)

// FeedbackResponses is the fixed-shape set of free-text criteria collected
// with every submission.
type FeedbackResponses struct {
	TeachingQuality    string `json:"teaching_quality" gorm:"type:text"`
	Clarity            string `json:"clarity" gorm:"type:text"`
	Support            string `json:"support" gorm:"type:text"`
	Engagement         string `json:"engagement" gorm:"type:text"`
	AdditionalComments string `json:"additional_comments" gorm:"type:text"`
}

// CombinedText joins the non-empty response fields into the single blob fed
// to sentiment classification and insight synthesis.
func (r FeedbackResponses) CombinedText() string {
	fields := []string{r.TeachingQuality, r.Clarity, r.Support, r.Engagement, r.AdditionalComments}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, "\n")
}

type Feedback struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	StudentID uint   `json:"student_id" gorm:"not null;index"`
	Student   User   `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Category  string `json:"category" gorm:"not null;index"` // "teacher", "hostel", "campus"

	// TeacherID is set if and only if Category is "teacher".
	TeacherID *uint `json:"teacher_id,omitempty" gorm:"index"`
	Teacher   *User `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`

	Responses FeedbackResponses `json:"responses" gorm:"embedded;embeddedPrefix:response_"`

	// Sentiment and LearningPace are derived once at submission time and are
	// never recomputed, even if the student's snapshot changes later.
	Sentiment    string `json:"sentiment" gorm:"not null"`     // "positive", "neutral", "negative"
	LearningPace string `json:"learning_pace" gorm:"not null"` // "fast", "slow"

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
