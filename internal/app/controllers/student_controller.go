package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sectiontrack/internal/app/models/dto"
	"github.com/yigit/sectiontrack/internal/app/services"
	"github.com/yigit/sectiontrack/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetStudent retrieves a student by ID
// @Summary Get student details
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} models.Student "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// GetStudentCourse retrieves the course id of the student's section
// @Summary Get a student's course
// @Description course_id is null when the student's section has no course
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.CourseIDResponse "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/course [get]
func (c *StudentController) GetStudentCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}

	courseID, err := c.studentService.GetStudentCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseIDResponse{CourseID: courseID})
}

// GetStudentMentor retrieves the mentor of the student's section
// @Summary Get a student's mentor
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} models.Mentor "Mentor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found, or the section has no mentor"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/mentor [get]
func (c *StudentController) GetStudentMentor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}

	mentor, err := c.studentService.GetStudentMentor(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mentor)
}

// ListAttendance retrieves every attendance row of a student
// @Summary List a student's attendance
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {array} dto.AttendanceResponse "Attendance retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/attendance [get]
func (c *StudentController) ListAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}

	records, err := c.studentService.ListAttendance(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromAttendances(records))
}

// UpdateAttendance overwrites presence codes of existing attendance rows
// @Summary Update a student's attendance
// @Description Body maps "YYYY-MM-DD" to PR, UN, EX or null. Only rows that already exist are changed; null codes and dates without a row are ignored.
// @Tags students
// @Accept json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAttendanceRequest true "Date to presence code"
// @Success 200 "Attendance updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid presence code"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/attendance [put]
func (c *StudentController) UpdateAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if !bindOptionalJSON(ctx, &req, "Invalid attendance data") {
		return
	}
	updates := req.Supplied()
	if errs := middleware.ValidateVar(updates, dto.AttendanceValidationTag); errs != nil {
		middleware.RespondBadRequest(ctx, "Invalid attendance data", errs)
		return
	}

	if _, err := c.studentService.UpdateAttendance(ctx.Request.Context(), id, updates); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusOK)
}
