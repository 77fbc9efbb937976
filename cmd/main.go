package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
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
	"github.com/schoolms/school-management-backend/routes"
	"github.com/schoolms/school-management-backend/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis (token denylist + tenant cache)
	if err := utils.InitRedis(cfg); err != nil {
		log.Fatalf("❌ Redis init failed: %v", err)
	}

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&tenant.Tenant{},
		&auth.User{},
		&course.Course{},
		&class.Class{},
		&student.Student{},
		&attendance.Attendance{},
		&grade.Grade{},
		&auditlog.AuditLog{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Seed default tenant & admin
	if err := auth.SeedAdminUser(db, cfg); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed admin user: %v", err))
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:4173", "http://127.0.0.1:4173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Tenant-ID", "Content-Length", "X-Requested-With", "Cache-Control", "Pragma"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	log.Printf("🚀 Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}
