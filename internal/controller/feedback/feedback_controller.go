package feedback

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ntloc/EduPulse/internal/dto"
	"github.com/ntloc/EduPulse/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type FeedbackController struct {
	feedbackService service.FeedbackService
}

func NewFeedbackController(fs service.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: fs}
}

// SubmitFeedback godoc
// @Summary Submit a feedback record
// @Description Submit feedback about a teacher, the hostel, or the campus. Sentiment and learning pace are derived on the server at submission time.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param feedback body dto.FeedbackSubmitDTO true "Feedback submission"
// @Success 201 {object} dto.FeedbackResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback [post]
func (c *FeedbackController) SubmitFeedback(ctx *gin.Context) {
	var req dto.FeedbackSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitFeedback: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.feedbackService.SubmitFeedback(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("SubmitFeedback: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit feedback", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetMyFeedback godoc
// @Summary List a student's submitted feedback
// @Description Retrieve the feedback records submitted by a student, newest first.
// @Tags Feedback
// @Produce json
// @Param student_id query int true "Student ID (temporary - will come from the auth token)"
// @Success 200 {array} dto.FeedbackResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Student ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback/my [get]
func (c *FeedbackController) GetMyFeedback(ctx *gin.Context) {
	studentID, err := strconv.ParseUint(ctx.Query("student_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Student ID format"})
		return
	}

	feedbacks, err := c.feedbackService.GetStudentFeedback(uint(studentID))
	if err != nil {
		log.Error().Err(err).Uint64("studentID", studentID).Msg("GetMyFeedback: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve feedback", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, feedbacks)
}
