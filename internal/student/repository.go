package student

import (
	"errors"

	"gorm.io/gorm"

	"github.com/schoolms/school-management-backend/internal/apperrors"
	"github.com/schoolms/school-management-backend/internal/auth"
)

type Repository interface {
	// CreateWithUser runs the compound create in one transaction: the
	// backing User first, then the Student row, then parent attachment.
	// Any failure rolls the whole sequence back.
	CreateWithUser(user *auth.User, st *Student, parentEmails []string) error
	FindByID(tenantID, id uint) (*Student, error)
	List(tenantID uint) ([]Student, error)
	// UpdateWithUser persists the student row and its owning user
	// atomically (projected fields write through to the user).
	UpdateWithUser(st *Student) error
	Delete(tenantID, id uint) (bool, error)
	ClassExists(tenantID, classID uint) (bool, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) CreateWithUser(user *auth.User, st *Student, parentEmails []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&auth.User{}).
			Where("tenant_id = ? AND email = ?", user.TenantID, user.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrDuplicateEmail
		}

		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateEmail
			}
			return err
		}

		st.UserID = user.ID
		if err := tx.Omit("User", "Parents", "CurrentClass").Create(st).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrIntegrityViolation
			}
			return err
		}
		st.User = *user

		// Attach parents by email. Emails that do not match an existing
		// parent account in this tenant are skipped, not an error.
		if len(parentEmails) > 0 {
			var parents []auth.User
			if err := tx.
				Where("tenant_id = ? AND user_type = ? AND email IN ?",
					user.TenantID, auth.UserTypeParent, parentEmails).
				Find(&parents).Error; err != nil {
				return err
			}
			if len(parents) > 0 {
				if err := tx.Model(st).Association("Parents").Append(&parents); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func (r *repository) FindByID(tenantID, id uint) (*Student, error) {
	var st Student
	err := r.db.Preload("User").Preload("Parents").
		Where("tenant_id = ? AND id = ?", tenantID, id).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *repository) List(tenantID uint) ([]Student, error) {
	var students []Student
	err := r.db.Preload("User").
		Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&students).Error
	return students, err
}

func (r *repository) UpdateWithUser(st *Student) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&st.User).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateEmail
			}
			return err
		}
		if err := tx.Omit("User", "Parents", "CurrentClass").Save(st).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrIntegrityViolation
			}
			return err
		}
		return nil
	})
}

// Delete removes the student row; attendance, grades and parent links go
// with it via FK cascade. The backing User account stays.
func (r *repository) Delete(tenantID, id uint) (bool, error) {
	res := r.db.Where("tenant_id = ?", tenantID).Delete(&Student{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) ClassExists(tenantID, classID uint) (bool, error) {
	var count int64
	err := r.db.Table("classes").
		Where("tenant_id = ? AND id = ?", tenantID, classID).
		Count(&count).Error
	return count > 0, err
}
