package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/controllers"
	"github.com/yigit/schoolhub/internal/middleware"
)

// ApplyMiddleware installs the global middleware chain. Authentication and
// authorization run on every request, unmatched routes included.
func ApplyMiddleware(router *gin.Engine, authMiddleware *middleware.AuthMiddleware, allowedOrigins []string) {
	router.Use(middleware.Recovery(), middleware.RequestLogger())
	if len(allowedOrigins) > 0 {
		router.Use(middleware.CORS(allowedOrigins))
	}
	router.Use(authMiddleware.Authenticate(), authMiddleware.Authorize())

	router.NoRoute(middleware.NotFound())
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	teacherController *controllers.TeacherController,
	studentController *controllers.StudentController,
) {
	api := router.Group("/api")

	// Access rules live in the authorization policy, not in per-group middleware.
	admins := api.Group("/admins")
	{
		admins.POST("", adminController.CreateAdmin)
		admins.POST("/login", authController.LoginAdmin)
		admins.GET("", adminController.GetAdmins)
		admins.GET("/search", adminController.SearchAdmins)
		admins.GET("/:id", adminController.GetAdminByID)
		admins.PUT("/:id", adminController.UpdateAdmin)
		admins.DELETE("/:id", adminController.DeleteAdmin)
	}

	teachers := api.Group("/teachers")
	{
		teachers.POST("", teacherController.CreateTeacher)
		teachers.POST("/login", authController.LoginTeacher)
		teachers.GET("", teacherController.GetTeachers)
		teachers.GET("/search", teacherController.SearchTeachers)
		teachers.GET("/:id", teacherController.GetTeacherByID)
		teachers.PUT("/:id", teacherController.UpdateTeacher)
		teachers.DELETE("/:id", teacherController.DeleteTeacher)
	}

	students := api.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetStudents)
		students.GET("/search", studentController.SearchStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.PUT("/:id/teacher/:teacherId", studentController.AssignTeacher)
		students.DELETE("/:id/teacher", studentController.RemoveTeacher)
	}
}
