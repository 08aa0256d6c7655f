package service

import "github.com/ntloc/EduPulse/internal/model"

const (
	FastAttendanceThreshold = 85.0
	FastMarksThreshold      = 75.0
)

// LearnerPaceService classifies a student's learning pace from the academic
// snapshot taken at submission time.
type LearnerPaceService interface {
	Classify(attendance, marks float64) string
}

type learnerPaceService struct{}

func NewLearnerPaceService() LearnerPaceService {
	return &learnerPaceService{}
}

// Classify returns "fast" when both attendance and marks clear their
// thresholds, "slow" otherwise. Out-of-range inputs are clamped to [0,100] so
// the result stays deterministic.
func (s *learnerPaceService) Classify(attendance, marks float64) string {
	attendance = clampPercent(attendance)
	marks = clampPercent(marks)

	if attendance >= FastAttendanceThreshold && marks >= FastMarksThreshold {
		return model.PaceFast
	}
	return model.PaceSlow
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
