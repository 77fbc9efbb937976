package course

import "time"

// Course is a subject offered by a school. Code is unique per tenant.
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Code        string    `gorm:"size:20;uniqueIndex:idx_courses_tenant_code" json:"code"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	TenantID    uint      `gorm:"column:tenant_id;not null;index;uniqueIndex:idx_courses_tenant_code" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}
