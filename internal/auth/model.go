package auth

import "time"

// User types, matching the persisted user_type column
const (
	UserTypeAdmin   = 1
	UserTypeTeacher = 2
	UserTypeStudent = 3
	UserTypeParent  = 4
	UserTypeStaff   = 5
)

// User is an account within a tenant. Email is unique per tenant, not
// globally: two schools may both have jane@example.com.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:120;not null;uniqueIndex:idx_users_tenant_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255" json:"-"`
	FirstName    string    `gorm:"column:first_name;size:50" json:"first_name"`
	LastName     string    `gorm:"column:last_name;size:50" json:"last_name"`
	UserType     int       `gorm:"column:user_type;default:3" json:"user_type"`
	Phone        string    `gorm:"size:15" json:"phone"`
	ProfilePic   string    `gorm:"column:profile_pic;size:255" json:"profile_pic"`
	IsActive     bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	TenantID     uint      `gorm:"column:tenant_id;not null;index;uniqueIndex:idx_users_tenant_email" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

// IsTeacher reports whether the user may perform teacher-gated operations
// (admins qualify)
func (u *User) IsTeacher() bool {
	return u.UserType == UserTypeAdmin || u.UserType == UserTypeTeacher
}

// RoleName maps a user_type to its label, for audit details
func RoleName(userType int) string {
	switch userType {
	case UserTypeAdmin:
		return "admin"
	case UserTypeTeacher:
		return "teacher"
	case UserTypeStudent:
		return "student"
	case UserTypeParent:
		return "parent"
	case UserTypeStaff:
		return "staff"
	default:
		return "unknown"
	}
}
