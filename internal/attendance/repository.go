package attendance

import (
	"errors"

	"gorm.io/gorm"

	"github.com/schoolms/school-management-backend/internal/apperrors"
)

// Filter narrows attendance listings; nil fields match everything.
type Filter struct {
	StudentID *uint
	ClassID   *uint
}

type Repository interface {
	Create(record *Attendance) error
	FindByID(tenantID, id uint) (*Attendance, error)
	List(tenantID uint, filter Filter) ([]Attendance, error)
	Update(record *Attendance) error
	Delete(tenantID, id uint) (bool, error)
	StudentExists(tenantID, studentID uint) (bool, error)
	ClassExists(tenantID, classID uint) (bool, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(record *Attendance) error {
	if err := r.db.Omit("Student", "Class").Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrIntegrityViolation
		}
		return err
	}
	return nil
}

func (r *repository) FindByID(tenantID, id uint) (*Attendance, error) {
	var record Attendance
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) List(tenantID uint, filter Filter) ([]Attendance, error) {
	query := r.db.Where("tenant_id = ?", tenantID)
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}
	if filter.ClassID != nil {
		query = query.Where("class_id = ?", *filter.ClassID)
	}

	var records []Attendance
	if err := query.Order("date DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) Update(record *Attendance) error {
	if err := r.db.Omit("Student", "Class").Save(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrIntegrityViolation
		}
		return err
	}
	return nil
}

func (r *repository) Delete(tenantID, id uint) (bool, error) {
	result := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&Attendance{})
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

func (r *repository) ClassExists(tenantID, classID uint) (bool, error) {
	var count int64
	err := r.db.Table("classes").
		Where("tenant_id = ? AND id = ?", tenantID, classID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
