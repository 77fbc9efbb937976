package grade

import (
	"errors"

	"gorm.io/gorm"
)

// Filter narrows grade listings; nil fields match everything.
type Filter struct {
	StudentID *uint
	CourseID  *uint
}

type Repository interface {
	Create(g *Grade) error
	FindByID(tenantID, id uint) (*Grade, error)
	List(tenantID uint, filter Filter) ([]Grade, error)
	Update(g *Grade) error
	Delete(tenantID, id uint) (bool, error)
	StudentExists(tenantID, studentID uint) (bool, error)
	CourseExists(tenantID, courseID uint) (bool, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(g *Grade) error {
	return r.db.Omit("Student", "Course").Create(g).Error
}

func (r *repository) FindByID(tenantID, id uint) (*Grade, error) {
	var g Grade
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) List(tenantID uint, filter Filter) ([]Grade, error) {
	query := r.db.Where("tenant_id = ?", tenantID)
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}
	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}

	var grades []Grade
	if err := query.Order("id").Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *repository) Update(g *Grade) error {
	return r.db.Omit("Student", "Course").Save(g).Error
}

func (r *repository) Delete(tenantID, id uint) (bool, error) {
	result := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&Grade{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) StudentExists(tenantID, studentID uint) (bool, error) {
	var count int64
	err := r.db.Table("students").
		Where("tenant_id = ? AND id = ?", tenantID, studentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) CourseExists(tenantID, courseID uint) (bool, error) {
	var count int64
	err := r.db.Table("courses").
		Where("tenant_id = ? AND id = ?", tenantID, courseID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
