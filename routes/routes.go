package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/schoolms/school-management-backend/config"
	"github.com/schoolms/school-management-backend/database"
	"github.com/schoolms/school-management-backend/internal/attendance"
	"github.com/schoolms/school-management-backend/internal/auditlog"
	"github.com/schoolms/school-management-backend/internal/auth"
	"github.com/schoolms/school-management-backend/internal/class"
	"github.com/schoolms/school-management-backend/internal/course"
	"github.com/schoolms/school-management-backend/internal/grade"
	"github.com/schoolms/school-management-backend/internal/student"
	"github.com/schoolms/school-management-backend/internal/tenant"
	"github.com/schoolms/school-management-backend/middleware"
	"github.com/schoolms/school-management-backend/utils"
)

// Setup wires every module's repository, service and handler and mounts
// the HTTP routes.
func Setup(r *gin.Engine, cfg *config.Config) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())     // global per-IP rate limit
	api.Use(middleware.AuditMiddleware()) // capture client IP

	// ========== Audit Log Module ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	api.Use(middleware.ActionLogger(auditSvc))

	// ========== Tenant Module ==========
	tenantRepo := tenant.NewRepository(database.DB)
	tenantSvc := tenant.NewService(tenantRepo, utils.RedisStore{}, cfg)
	tenantHandler := tenant.NewHandler(tenantSvc)

	// ========== Auth Module ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, utils.RedisStore{}, cfg)
	authHandler := auth.NewHandler(authSvc)

	tenantScoped := middleware.TenantMiddleware(tenantSvc)
	authRequired := middleware.AuthMiddleware(cfg, authSvc)

	authGroup := api.Group("/auth")
	{
		// Register and login act within a tenant; the header names it.
		authGroup.POST("/register", tenantScoped, authHandler.Register)
		authGroup.POST("/login", tenantScoped, authHandler.Login)

		// Refresh carries its tenant inside the token.
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authRequired, authHandler.Logout)
	}

	// ========== Tenant Provisioning (admin, not tenant scoped) ==========
	tenantRoutes := api.Group("/tenants")
	tenantRoutes.Use(authRequired, middleware.AdminRequired())
	{
		tenantRoutes.POST("", tenantHandler.Provision)
		tenantRoutes.GET("", tenantHandler.List)
	}

	protected := api.Group("/")
	protected.Use(tenantScoped, authRequired)

	// ========== Users ==========
	userRoutes := protected.Group("/users")
	{
		userRoutes.PUT("/me", authHandler.UpdateMe)

		adminUsers := userRoutes.Group("", middleware.AdminRequired())
		{
			adminUsers.GET("", authHandler.GetUsers)
			adminUsers.GET("/:id", authHandler.GetUser)
			adminUsers.PUT("/:id", authHandler.UpdateUser)
			adminUsers.DELETE("/:id", authHandler.DeleteUser)
		}
	}

	// ========== Students (admin only) ==========
	studentRepo := student.NewRepository(database.DB)
	studentSvc := student.NewService(studentRepo)
	studentHandler := student.NewHandler(studentSvc)

	studentRoutes := protected.Group("/students")
	studentRoutes.Use(middleware.AdminRequired())
	{
		studentRoutes.POST("", studentHandler.CreateStudent)
		studentRoutes.GET("", studentHandler.GetStudents)
		studentRoutes.GET("/:id", studentHandler.GetStudent)
		studentRoutes.PUT("/:id", studentHandler.UpdateStudent)
		studentRoutes.DELETE("/:id", studentHandler.DeleteStudent)
	}

	// ========== Courses (admin only) ==========
	courseRepo := course.NewRepository(database.DB)
	courseSvc := course.NewService(courseRepo)
	courseHandler := course.NewHandler(courseSvc)

	courseRoutes := protected.Group("/courses")
	courseRoutes.Use(middleware.AdminRequired())
	{
		courseRoutes.POST("", courseHandler.Create)
		courseRoutes.GET("", courseHandler.List)
		courseRoutes.GET("/:id", courseHandler.Get)
		courseRoutes.PUT("/:id", courseHandler.Update)
		courseRoutes.DELETE("/:id", courseHandler.Delete)
	}

	// ========== Classes (admin only) ==========
	classRepo := class.NewRepository(database.DB)
	classSvc := class.NewService(classRepo)
	classHandler := class.NewHandler(classSvc)

	classRoutes := protected.Group("/classes")
	classRoutes.Use(middleware.AdminRequired())
	{
		classRoutes.POST("", classHandler.Create)
		classRoutes.GET("", classHandler.List)
		classRoutes.GET("/:id", classHandler.Get)
		classRoutes.PUT("/:id", classHandler.Update)
		classRoutes.DELETE("/:id", classHandler.Delete)
	}

	// ========== Attendance (teachers and admins) ==========
	attendanceRepo := attendance.NewRepository(database.DB)
	attendanceSvc := attendance.NewService(attendanceRepo)
	attendanceHandler := attendance.NewHandler(attendanceSvc)

	attendanceRoutes := protected.Group("/attendance")
	attendanceRoutes.Use(middleware.TeacherRequired())
	{
		attendanceRoutes.POST("", attendanceHandler.Create)
		attendanceRoutes.GET("", attendanceHandler.List)
		attendanceRoutes.GET("/:id", attendanceHandler.Get)
		attendanceRoutes.PUT("/:id", attendanceHandler.Update)
		attendanceRoutes.DELETE("/:id", attendanceHandler.Delete)
	}

	// ========== Grades (teachers and admins) ==========
	gradeRepo := grade.NewRepository(database.DB)
	gradeSvc := grade.NewService(gradeRepo)
	gradeHandler := grade.NewHandler(gradeSvc)

	gradeRoutes := protected.Group("/grades")
	gradeRoutes.Use(middleware.TeacherRequired())
	{
		gradeRoutes.POST("", gradeHandler.Create)
		gradeRoutes.GET("", gradeHandler.List)
		gradeRoutes.GET("/:id", gradeHandler.Get)
		gradeRoutes.PUT("/:id", gradeHandler.Update)
		gradeRoutes.DELETE("/:id", gradeHandler.Delete)
	}

	// ========== Audit Logs (admin only) ==========
	auditRoutes := protected.Group("/auditlogs")
	auditRoutes.Use(middleware.AdminRequired())
	{
		auditRoutes.GET("", auditHandler.GetAuditLogs)
	}
}
