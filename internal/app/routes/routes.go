package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okanck/studentapi/internal/app/controllers"
	"github.com/okanck/studentapi/internal/app/models/dto"
	"github.com/okanck/studentapi/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	healthController *controllers.HealthController,
	forecastController *controllers.ForecastController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/token", authController.CreateToken)
	}

	health := router.Group("/health")
	{
		health.GET("/db", healthController.CheckDB)
	}

	// Demo endpoint, deliberately unprotected
	router.GET("/weatherforecast", forecastController.GetForecast)

	// --- Protected routes ---
	authTest := router.Group("/auth-test")
	authTest.Use(authMiddleware.JWTAuth())
	{
		authTest.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, dto.PingResponse{OK: true})
		})
	}

	api := router.Group("/api")
	api.Use(authMiddleware.JWTAuth())
	{
		students := api.Group("/student")
		{
			students.GET("/list", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
		}

		courses := api.Group("/course")
		{
			courses.GET("/list", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.POST("", courseController.CreateCourse)
		}
	}
}
