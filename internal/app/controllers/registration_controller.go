package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursereg/internal/app/models/dto"
	"github.com/yigit/coursereg/internal/app/services"
	"github.com/yigit/coursereg/internal/middleware"
	"github.com/yigit/coursereg/internal/pkg/apperrors"
)

// RegistrationController handles enrollment endpoints
type RegistrationController struct {
	registrationService services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

// Register enrolls a student in a course
// @Summary Register for a course
// @Description Registers the student for the course and returns every course the student is registered for
// @Tags registrations
// @Produce json
// @Param studentEmail query string true "Student email"
// @Param courseId query int true "Course ID" Format(int64)
// @Success 200 {array} dto.CourseResponse "Courses the student is registered for, the new one last"
// @Failure 400 {object} dto.ErrorResponse "Unknown student or course, course started, or already registered"
// @Router /registrations/register [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("courseId must be an integer"))
		return
	}
	if err := middleware.ValidateStruct(req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses, err := c.registrationService.Enroll(ctx.Request.Context(), req.StudentEmail, *req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseResponses(courses))
}

// Unregister withdraws a student from a course
// @Summary Unregister from a course
// @Description Removes the student's registration for a course that has not started
// @Tags registrations
// @Produce json
// @Param courseId path int true "Course ID" Format(int64)
// @Param email path string true "Student email"
// @Success 200 {object} dto.MessageResponse "Unregistered successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown student, course or registration, or course started"
// @Router /registrations/unregister/{courseId}/{email} [delete]
func (c *RegistrationController) Unregister(ctx *gin.Context) {
	var req dto.UnregisterRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("courseId must be an integer"))
		return
	}
	if err := middleware.ValidateStruct(req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.registrationService.Withdraw(ctx.Request.Context(), req.Email, req.CourseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: dto.UnregisteredMessage})
}

// Upcoming lists a student's registrations for courses that have not started
// @Summary List upcoming registrations
// @Tags registrations
// @Produce json
// @Param email path string true "Student email"
// @Success 200 {array} dto.RegistrationResponse "Upcoming registrations, soonest first"
// @Failure 400 {object} dto.ErrorResponse "Student not found"
// @Router /registrations/upcoming/{email} [get]
func (c *RegistrationController) Upcoming(ctx *gin.Context) {
	var req dto.UpcomingRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(err.Error()))
		return
	}
	if err := middleware.ValidateStruct(req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	regs, err := c.registrationService.Upcoming(ctx.Request.Context(), req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewRegistrationResponses(regs))
}
