package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/sectiontrack/internal/app/controllers"
)

// SetupRouter configures all application routes. The same table is served at
// the root and under /api/v1.
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	sectionController *controllers.SectionController,
	studentController *controllers.StudentController,
) {
	registerAPI(&router.RouterGroup, userController, sectionController, studentController)

	// API version group
	v1 := router.Group("/api/v1")
	registerAPI(v1, userController, sectionController, studentController)
}

func registerAPI(
	group *gin.RouterGroup,
	userController *controllers.UserController,
	sectionController *controllers.SectionController,
	studentController *controllers.StudentController,
) {
	// User routes
	group.GET("/users", userController.ListUsers)

	// Section routes
	sections := group.Group("/sections")
	{
		sections.GET("", sectionController.ListSections)
		sections.GET("/:id", sectionController.GetSection)
		sections.POST("/:id", sectionController.UpdateSection)
		sections.GET("/:id/students", sectionController.ListRoster)
	}

	// Student routes
	students := group.Group("/students")
	{
		students.GET("/:id", studentController.GetStudent)
		students.GET("/:id/course", studentController.GetStudentCourse)
		students.GET("/:id/mentor", studentController.GetStudentMentor)
		students.GET("/:id/attendance", studentController.ListAttendance)
		students.PUT("/:id/attendance", studentController.UpdateAttendance)
	}
}

// SetupHealth registers the health endpoint
func SetupHealth(router *gin.Engine, healthController *controllers.HealthController) {
	router.GET("/health", healthController.Health)
}
