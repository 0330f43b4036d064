// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/krmu/admissions/internal/app/models/dto"
	"github.com/krmu/admissions/internal/app/services"
	"github.com/krmu/admissions/internal/middleware"
)

// AuthController handles staff authentication operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles staff account registration
// @Summary Register a new staff account
// @Description Creates a counsellor or teacher account with a university email and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=dto.AuthData}
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate field"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "All fields are required"))
		return
	}

	user, token, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewSuccessResponse(&dto.AuthData{User: user})
	resp.Token = token
	ctx.JSON(http.StatusCreated, resp)
}

// Login handles staff login
// @Summary Log in
// @Description Verifies credentials and returns the account with a fresh bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthData}
// @Failure 401 {object} dto.ErrorResponse "Missing or incorrect credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request body"))
		return
	}

	user, token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewSuccessResponse(&dto.AuthData{User: user})
	resp.Token = token
	ctx.JSON(http.StatusOK, resp)
}

// Me returns the authenticated account
// @Summary Get current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AuthData}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	caller, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "You are not logged in! Please log in to get access."))
		return
	}

	user, err := c.authService.Me(ctx.Request.Context(), caller.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(&dto.AuthData{User: user}))
}

// ListTeachers returns all teacher accounts
// @Summary List teachers
// @Description Returns every teacher account sorted by username. Admins and counsellors only.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.TeacherListData}
// @Failure 403 {object} dto.ErrorResponse
// @Router /auth/teachers [get]
func (c *AuthController) ListTeachers(ctx *gin.Context) {
	caller, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "You are not logged in! Please log in to get access."))
		return
	}

	teachers, err := c.authService.ListTeachers(ctx.Request.Context(), caller.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(teachers), &dto.TeacherListData{Teachers: teachers}))
}
