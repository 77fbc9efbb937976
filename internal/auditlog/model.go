package auditlog

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog represents the audit_logs table
type AuditLog struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint          `gorm:"index" json:"user_id"`   // nullable (e.g. failed login)
	TenantID  *uint          `gorm:"index" json:"tenant_id"` // nullable (pre-resolution failures)
	Action    string         `gorm:"size:100;not null;index" json:"action"`
	Details   datatypes.JSON `json:"details"`
	IPAddress string         `gorm:"size:45" json:"ip_address"`
	Status    string         `gorm:"size:20;not null;index" json:"status"` // success/failure
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Filter narrows audit log queries
type Filter struct {
	UserID *uint
	Action string
	Status string
	Page   int
	Limit  int
}

// Page is a paginated audit log response
type Page struct {
	Data       []AuditLog `json:"data"`
	Total      int64      `json:"total"`
	PageNum    int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
}
