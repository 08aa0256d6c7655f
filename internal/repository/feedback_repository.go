package repository

import (
	"github.com/ntloc/EduPulse/internal/model"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(feedback *model.Feedback) error
	FindByTeacherID(teacherID uint) ([]model.Feedback, error)
	FindByStudentID(studentID uint) ([]model.Feedback, error)
	FindAll() ([]model.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *model.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *feedbackRepository) FindByTeacherID(teacherID uint) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.
		Where("category = ? AND teacher_id = ?", model.CategoryTeacher, teacherID).
		Order("created_at desc").
		Find(&feedbacks).Error
	return feedbacks, err
}

func (r *feedbackRepository) FindByStudentID(studentID uint) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&feedbacks).Error
	return feedbacks, err
}

func (r *feedbackRepository) FindAll() ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.Order("created_at desc").Find(&feedbacks).Error
	return feedbacks, err
}
