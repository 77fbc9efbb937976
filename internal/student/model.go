package student

import (
	"time"

	"github.com/schoolms/school-management-backend/internal/auth"
	"github.com/schoolms/school-management-backend/internal/class"
)

// Student is the school profile of a user with user_type=student. Name
// and email are never stored here; they are read through the owning User
// so the two can never diverge. Deleting the User removes the profile.
type Student struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	StudentID      string       `gorm:"column:student_id;size:20;uniqueIndex:idx_students_tenant_sid" json:"student_id"`
	DOB            *time.Time   `gorm:"column:dob;type:date" json:"-"`
	Gender         string       `gorm:"size:10" json:"gender"`
	Address        string       `gorm:"type:text" json:"address"`
	CreatedAt      time.Time    `json:"created_at"`
	UserID         uint         `gorm:"column:user_id;not null;uniqueIndex" json:"-"`
	User           auth.User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CurrentClassID *uint        `gorm:"column:current_class_id" json:"current_class_id"`
	CurrentClass   *class.Class `gorm:"foreignKey:CurrentClassID;constraint:OnDelete:SET NULL" json:"-"`
	TenantID       uint         `gorm:"column:tenant_id;not null;index;uniqueIndex:idx_students_tenant_sid" json:"-"`

	// Parent accounts (user_type=parent) associated with this student.
	// Shared references: a parent may have several children.
	Parents []auth.User `gorm:"many2many:student_parents;joinForeignKey:StudentID;joinReferences:ParentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// FirstName reads through to the owning User
func (s *Student) FirstName() string { return s.User.FirstName }

// LastName reads through to the owning User
func (s *Student) LastName() string { return s.User.LastName }

// Email reads through to the owning User
func (s *Student) Email() string { return s.User.Email }
