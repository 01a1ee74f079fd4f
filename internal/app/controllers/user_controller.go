// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusspace/backend/internal/app/models/dto"
	"github.com/campusspace/backend/internal/app/services"
	"github.com/campusspace/backend/internal/middleware"
)

// UserController handles teacher account operations
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// Register handles teacher registration by an admin
// @Summary Register a new teacher
// @Description Creates a new teacher account. Only admins can register accounts; the new account starts without admin rights and receives its own access token.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterRequest true "Teacher registration information"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or email already in use"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/register [post]
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, errorDetail))
		return
	}

	caller := middleware.GetCaller(ctx)

	authResponse, err := c.userService.Register(ctx.Request.Context(), caller, &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Failed to register teacher")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("email", req.Email).
		Int64("userID", authResponse.User.ID).
		Msg("Teacher registered")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, authResponse, "User registered successfully"))
}

// Login handles teacher login
// @Summary Teacher login
// @Description Authenticates a teacher and returns an access token
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "User logged in successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or wrong password"
// @Failure 404 {object} dto.ErrorResponse "No account with this email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/login [post]
func (c *UserController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, errorDetail))
		return
	}

	authResponse, err := c.userService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", req.Email).Msg("Teacher logged in")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, authResponse, "User logged in successfully"))
}

// GetCurrentUser echoes the authenticated caller
// @Summary Current user
// @Description Returns the identity attached to the request token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.CallerIdentity} "User found"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /users/current [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	caller := middleware.GetCaller(ctx)
	if caller == nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "User not verified")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, caller, "User found"))
}

// GetTeachers lists all teacher accounts
// @Summary List teachers
// @Description Returns every account without password hashes. An empty collection is a 404, not an empty list.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Teachers found"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 404 {object} dto.ErrorResponse "No teachers exist"
// @Router /users/teachers [get]
func (c *UserController) GetTeachers(ctx *gin.Context) {
	teachers, err := c.userService.GetTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(teachers))
	for _, teacher := range teachers {
		responses = append(responses, dto.UserResponse{
			ID:       teacher.ID,
			FullName: teacher.FullName,
			Email:    teacher.Email,
			IsAdmin:  teacher.IsAdmin,
		})
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, responses, "Teachers found"))
}

// ChangeAdmin toggles the admin flag of a teacher
// @Summary Toggle admin role
// @Description Flips the target account's admin flag and returns the new value
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param teacherId path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.AdminStatusResponse} "Role changed"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /users/{teacherId}/admin [patch]
func (c *UserController) ChangeAdmin(ctx *gin.Context) {
	teacherID, err := strconv.ParseInt(ctx.Param("teacherId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, errorDetail))
		return
	}

	caller := middleware.GetCaller(ctx)

	admin, err := c.userService.ChangeAdmin(ctx.Request.Context(), caller, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "User is now a teacher"
	if admin {
		message = "User is now an admin"
	}

	c.logger.Info().Int64("teacherID", teacherID).Bool("admin", admin).Msg("Admin flag toggled")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, dto.AdminStatusResponse{Admin: admin}, message))
}

// DeleteTeacher removes a teacher account
// @Summary Delete a teacher
// @Description Deletes the target account unconditionally; an ID that matches nothing still succeeds
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param teacherId path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Teacher deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Router /users/{teacherId} [delete]
func (c *UserController) DeleteTeacher(ctx *gin.Context) {
	teacherID, err := strconv.ParseInt(ctx.Param("teacherId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Teacher id is required")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, errorDetail))
		return
	}

	caller := middleware.GetCaller(ctx)

	if err := c.userService.DeleteTeacher(ctx.Request.Context(), caller, teacherID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("teacherID", teacherID).Msg("Teacher deleted")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, gin.H{}, "Teacher deleted successfully"))
}
