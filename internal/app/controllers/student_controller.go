package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/krmu/admissions/internal/app/models/dto"
	"github.com/krmu/admissions/internal/app/services"
	"github.com/krmu/admissions/internal/middleware"
)

// StudentController handles applicant record operations
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

func parseStudentID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "No student found with that ID"))
		return 0, false
	}
	return id, true
}

// Create handles the intake form submission
// @Summary Create a student
// @Description Registers an applicant, assigns a random counsellor and the next sequential student ID.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Applicant details"
// @Success 201 {object} dto.APIResponse{data=dto.StudentData}
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate email"
// @Router /students [post]
func (c *StudentController) Create(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student creation payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "All fields are required"))
		return
	}

	student, err := c.studentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(&dto.StudentData{Student: student}))
}

// List returns the role-shaped student listing
// @Summary List students
// @Description Counsellors get their own students split by status, teachers get all students split by track assignment, admins get the flat list.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	caller, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "You are not logged in! Please log in to get access."))
		return
	}

	data, count, err := c.studentService.List(ctx.Request.Context(), caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if count != nil {
		ctx.JSON(http.StatusOK, dto.NewListResponse(*count, data))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Get returns a single student
// @Summary Get a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentData}
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [get]
func (c *StudentController) Get(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(&dto.StudentData{Student: student}))
}

// Update applies a partial update to a student
// @Summary Update a student
// @Description Merges the provided fields onto the record. Patching a sub-status recomputes the overall status.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.StudentData}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [patch]
func (c *StudentController) Update(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request body"))
		return
	}

	student, err := c.studentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(&dto.StudentData{Student: student}))
}

// Delete removes a student permanently
// @Summary Delete a student
// @Tags students
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Success 204 "Deleted"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DashboardStats returns the dashboard aggregate counts
// @Summary Dashboard statistics
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.DashboardStats}
// @Router /students/dashboard/stats [get]
func (c *StudentController) DashboardStats(ctx *gin.Context) {
	stats, err := c.studentService.DashboardStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// SendAcceptanceEmail sends the acceptance notification
// @Summary Send acceptance email
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/send-acceptance [post]
func (c *StudentController) SendAcceptanceEmail(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	if _, err := c.studentService.SendAcceptanceEmail(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Acceptance email sent"}))
}

// SendRejectionEmail sends the rejection notification
// @Summary Send rejection email
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student record ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/send-rejection [post]
func (c *StudentController) SendRejectionEmail(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	if _, err := c.studentService.SendRejectionEmail(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Rejection email sent"}))
}
