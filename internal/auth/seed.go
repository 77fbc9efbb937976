package auth

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/schoolms/school-management-backend/config"
	"github.com/schoolms/school-management-backend/internal/tenant"
)

// SeedAdminUser ensures a bootstrap tenant and admin account exist so a
// fresh deployment can provision further tenants through the API.
func SeedAdminUser(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var t tenant.Tenant
	err := db.Where("schema_name = ?", "default").First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		t = tenant.Tenant{Name: "Default School", SchemaName: "default"}
		if err := db.Create(&t).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var count int64
	if err := db.Model(&User{}).
		Where("tenant_id = ? AND email = ?", t.ID, cfg.AdminEmail).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		FirstName:    "Admin",
		UserType:     UserTypeAdmin,
		IsActive:     true,
		TenantID:     t.ID,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin user %s for tenant %q", cfg.AdminEmail, t.SchemaName)
	return nil
}
