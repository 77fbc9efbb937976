package course

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Course) error
	FindByID(tenantID, id uint) (*Course, error)
	List(tenantID uint) ([]Course, error)
	Update(c *Course) error
	Delete(tenantID, id uint) (bool, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(c *Course) error {
	return r.db.Create(c).Error
}

func (r *repository) FindByID(tenantID, id uint) (*Course, error) {
	var c Course
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) List(tenantID uint) ([]Course, error) {
	var courses []Course
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *repository) Update(c *Course) error {
	return r.db.Save(c).Error
}

// Delete removes a course; classes and grades referencing it go with it
// via FK cascade
func (r *repository) Delete(tenantID, id uint) (bool, error) {
	res := r.db.Where("tenant_id = ?", tenantID).Delete(&Course{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
