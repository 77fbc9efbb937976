package attendance

import (
	"time"

	"github.com/schoolms/school-management-backend/internal/class"
	"github.com/schoolms/school-management-backend/internal/student"
)

// Attendance status values
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// Attendance records one student's status in one class on one date.
// A (student, class, date) triple is recorded at most once.
type Attendance struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	StudentID uint             `gorm:"not null;uniqueIndex:idx_attendance_student_class_date" json:"student_id"`
	Student   *student.Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	ClassID   uint             `gorm:"not null;uniqueIndex:idx_attendance_student_class_date" json:"class_id"`
	Class     *class.Class     `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE" json:"-"`
	Date      time.Time        `gorm:"type:date;not null;uniqueIndex:idx_attendance_student_class_date" json:"-"`
	Status    string           `gorm:"not null;default:present" json:"status"`
	TenantID  uint             `gorm:"not null;index" json:"-"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (Attendance) TableName() string {
	return "attendance_records"
}

// ValidStatus reports whether s is one of the accepted status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}
