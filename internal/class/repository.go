package class

import (
	"errors"

	"gorm.io/gorm"

	"github.com/schoolms/school-management-backend/internal/auth"
)

type Repository interface {
	Create(cl *Class) error
	FindByID(tenantID, id uint) (*Class, error)
	List(tenantID uint) ([]Class, error)
	Update(cl *Class) error
	Delete(tenantID, id uint) (bool, error)

	// Cross-entity lookups for referential checks
	CourseExists(tenantID, courseID uint) (bool, error)
	FindTeacher(tenantID, userID uint) (*auth.User, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(cl *Class) error {
	return r.db.Create(cl).Error
}

func (r *repository) FindByID(tenantID, id uint) (*Class, error) {
	var cl Class
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&cl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *repository) List(tenantID uint) ([]Class, error) {
	var classes []Class
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&classes).Error
	return classes, err
}

func (r *repository) Update(cl *Class) error {
	return r.db.Omit("Course", "Teacher").Save(cl).Error
}

func (r *repository) Delete(tenantID, id uint) (bool, error) {
	res := r.db.Where("tenant_id = ?", tenantID).Delete(&Class{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) CourseExists(tenantID, courseID uint) (bool, error) {
	var count int64
	err := r.db.Table("courses").
		Where("tenant_id = ? AND id = ?", tenantID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindTeacher(tenantID, userID uint) (*auth.User, error) {
	var u auth.User
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, userID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
