package class

import (
	"time"

	"github.com/schoolms/school-management-backend/internal/auth"
	"github.com/schoolms/school-management-backend/internal/course"
)

// Class is a taught section of a course. The teacher reference survives a
// teacher account deletion as NULL; the class itself goes with its course.
type Class struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:50;not null" json:"name"`
	CourseID  uint           `gorm:"column:course_id;not null;index" json:"course_id"`
	Course    *course.Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	TeacherID *uint          `gorm:"column:teacher_id;index" json:"teacher_id"`
	Teacher   *auth.User     `gorm:"foreignKey:TeacherID;constraint:OnDelete:SET NULL" json:"-"`
	Schedule  string         `gorm:"size:255" json:"schedule"`
	CreatedAt time.Time      `json:"created_at"`
	TenantID  uint           `gorm:"column:tenant_id;not null;index" json:"-"`
}

func (Class) TableName() string {
	return "classes"
}
