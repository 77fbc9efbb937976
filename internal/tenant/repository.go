package tenant

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(t *Tenant) error
	FindByID(id uint) (*Tenant, error)
	FindBySchemaName(schemaName string) (*Tenant, error)
	List() ([]Tenant, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(t *Tenant) error {
	return r.db.Create(t).Error
}

func (r *repository) FindByID(id uint) (*Tenant, error) {
	var t Tenant
	err := r.db.First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindBySchemaName returns nil, nil when no tenant matches; absence is a
// caller decision, not a database error.
func (r *repository) FindBySchemaName(schemaName string) (*Tenant, error) {
	var t Tenant
	err := r.db.Where("schema_name = ?", schemaName).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) List() ([]Tenant, error) {
	var tenants []Tenant
	err := r.db.Order("created_at DESC").Find(&tenants).Error
	return tenants, err
}
