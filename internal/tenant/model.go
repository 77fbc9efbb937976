package tenant

import "time"

// Tenant is an isolated school/organization. Every other table carries a
// tenant_id foreign key pointing here. Tenants are created via
// provisioning and never auto-deleted.
type Tenant struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	SchemaName string    `gorm:"column:schema_name;size:100;uniqueIndex;not null" json:"schema_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
