package stats

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

type StatsController struct {
	feedbackService service.FeedbackService
}

func NewStatsController(fs service.FeedbackService) *StatsController {
	return &StatsController{feedbackService: fs}
}

// GetTeacherStats godoc
// @Summary Feedback statistics and AI insights for a teacher
// @Description Aggregate counts, monthly trend, recent records, and a synthesized summary with improvement areas for one teacher. The insight section degrades to placeholders when the generation service is unavailable; the numbers are always real.
// @Tags Stats
// @Produce json
// @Param teacher_id path int true "Teacher ID"
// @Success 200 {object} dto.StatsResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Teacher ID format"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{teacher_id}/stats [get]
func (c *StatsController) GetTeacherStats(ctx *gin.Context) {
	teacherID, err := strconv.ParseUint(ctx.Param("teacher_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Teacher ID format"})
		return
	}

	statsResp, err := c.feedbackService.GetTeacherStats(ctx.Request.Context(), uint(teacherID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("teacherID", teacherID).Msg("GetTeacherStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve teacher stats", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, statsResp)
}

// GetOverview godoc
// @Summary Campus-wide feedback statistics and AI insights
// @Description Aggregate counts, monthly trend, recent records, and a synthesized summary with improvement areas across all feedback categories.
// @Tags Stats
// @Produce json
// @Success 200 {object} dto.StatsResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats/overview [get]
func (c *StatsController) GetOverview(ctx *gin.Context) {
	statsResp, err := c.feedbackService.GetOverviewStats(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("GetOverview: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve overview stats", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, statsResp)
}
