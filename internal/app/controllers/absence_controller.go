package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusspace/backend/internal/app/models"
	"github.com/campusspace/backend/internal/app/models/dto"
	"github.com/campusspace/backend/internal/app/services"
	"github.com/campusspace/backend/internal/middleware"
)

// AbsenceController handles absence recording and queries
type AbsenceController struct {
	absenceService services.AbsenceService
	logger         zerolog.Logger
}

// NewAbsenceController creates a new AbsenceController
func NewAbsenceController(absenceService services.AbsenceService, logger zerolog.Logger) *AbsenceController {
	return &AbsenceController{
		absenceService: absenceService,
		logger:         logger,
	}
}

// mapAbsenceToResponse converts an absence model to its response DTO. A nil
// teacher stays nil, mirroring a reference whose user no longer exists.
func mapAbsenceToResponse(absence *models.TeacherAbsence) dto.AbsenceResponse {
	response := dto.AbsenceResponse{
		ID:  absence.ID,
		Day: absence.Day,
	}
	if absence.Teacher != nil {
		response.Teacher = &dto.AbsentTeacherInfo{
			FullName: absence.Teacher.FullName,
			Email:    absence.Teacher.Email,
		}
	}
	return response
}

// AddTeachersAbsent records a set of teachers absent on one day
// @Summary Record absent teachers
// @Description Creates one absence record per teacher ID for the given day. Repeated calls with the same input create duplicate records.
// @Tags absences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddAbsencesRequest true "Teacher IDs and day"
// @Success 201 {object} dto.APIResponse{data=[]dto.AbsenceResponse} "Teachers absent added"
// @Failure 400 {object} dto.ErrorResponse "Missing teachers or day"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /absences [post]
func (c *AbsenceController) AddTeachersAbsent(ctx *gin.Context) {
	var req dto.AddAbsencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid add-absences request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, errorDetail))
		return
	}

	caller := middleware.GetCaller(ctx)

	absences, err := c.absenceService.AddTeachersAbsent(ctx.Request.Context(), caller, &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("day", req.Day).Msg("Failed to record absences")
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.AbsenceResponse, 0, len(absences))
	for _, absence := range absences {
		responses = append(responses, mapAbsenceToResponse(absence))
	}

	c.logger.Info().Str("day", req.Day).Int("count", len(responses)).Msg("Absences recorded")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, responses, "Teachers absent added"))
}

// GetTeachersAbsent lists absence records for a day
// @Summary List absent teachers
// @Description Returns all absence records for the given day with the teacher reference expanded. Zero matches is a 404, not an empty list.
// @Tags absences
// @Produce json
// @Param day query string true "Day in YYYY-MM-DD format"
// @Success 200 {object} dto.APIResponse{data=[]dto.AbsenceResponse} "Absent teachers found"
// @Failure 400 {object} dto.ErrorResponse "Missing day"
// @Failure 404 {object} dto.ErrorResponse "No absences recorded for this day"
// @Router /absences [get]
func (c *AbsenceController) GetTeachersAbsent(ctx *gin.Context) {
	day := ctx.Query("day")
	if day == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Day is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, errorDetail))
		return
	}

	absences, err := c.absenceService.GetTeachersAbsent(ctx.Request.Context(), day)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.AbsenceResponse, 0, len(absences))
	for _, absence := range absences {
		responses = append(responses, mapAbsenceToResponse(absence))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, responses, "Absent teachers found"))
}
