package grade

import (
	"time"

	"github.com/schoolms/school-management-backend/internal/course"
	"github.com/schoolms/school-management-backend/internal/student"
)

// Grade holds one score for a student in a course, optionally tagged
// with an academic term.
type Grade struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	StudentID uint             `gorm:"not null;index" json:"student_id"`
	Student   *student.Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	CourseID  uint             `gorm:"not null;index" json:"course_id"`
	Course    *course.Course   `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Value     float64          `gorm:"column:grade;not null" json:"value"`
	Term      string           `gorm:"size:50" json:"term"`
	TenantID  uint             `gorm:"not null;index" json:"-"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (Grade) TableName() string {
	return "grades"
}
