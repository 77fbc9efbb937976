package auth

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(user *User) error
	FindByEmail(tenantID uint, email string) (*User, error)
	FindByID(tenantID, userID uint) (*User, error)
	List(tenantID uint) ([]User, error)
	Update(user *User) error
	Delete(tenantID, userID uint) (bool, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(user *User) error {
	return r.db.Create(user).Error
}

// FindByEmail looks up a user within a tenant. Returns nil, nil when no
// user matches; a missing user is not an error.
func (r *repository) FindByEmail(tenantID uint, email string) (*User, error) {
	var u User
	err := r.db.Where("tenant_id = ? AND email = ?", tenantID, email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(tenantID, userID uint) (*User, error) {
	var u User
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, userID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) List(tenantID uint) ([]User, error) {
	var users []User
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *repository) Update(user *User) error {
	return r.db.Save(user).Error
}

// Delete removes a user; dependent rows (student profile, parent links)
// go with it via FK cascade. Reports presence, not an error, on miss.
func (r *repository) Delete(tenantID, userID uint) (bool, error) {
	res := r.db.Where("tenant_id = ?", tenantID).Delete(&User{}, userID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
