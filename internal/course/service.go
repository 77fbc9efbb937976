package course

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/schoolms/school-management-backend/internal/apperrors"
)

type Service interface {
	Create(tenantID uint, in CreateInput) (*Course, error)
	GetByID(tenantID, id uint) (*Course, error)
	List(tenantID uint) ([]Course, error)
	Update(tenantID, id uint, in UpdateInput) (*Course, error)
	Delete(tenantID, id uint) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

type CreateInput struct {
	Name        string
	Code        string
	Description string
}

func (s *service) Create(tenantID uint, in CreateInput) (*Course, error) {
	c := &Course{
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		TenantID:    tenantID,
	}
	if err := s.repo.Create(c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: course code already exists", apperrors.ErrIntegrityViolation)
		}
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(tenantID, id uint) (*Course, error) {
	return s.repo.FindByID(tenantID, id)
}

func (s *service) List(tenantID uint) ([]Course, error) {
	return s.repo.List(tenantID)
}

// UpdateInput carries patch fields; nil leaves the value untouched
type UpdateInput struct {
	Name        *string
	Code        *string
	Description *string
}

func (s *service) Update(tenantID, id uint, in UpdateInput) (*Course, error) {
	c, err := s.repo.FindByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.ErrNotFound
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Code != nil {
		c.Code = *in.Code
	}
	if in.Description != nil {
		c.Description = *in.Description
	}

	if err := s.repo.Update(c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: course code already exists", apperrors.ErrIntegrityViolation)
		}
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(tenantID, id uint) (bool, error) {
	return s.repo.Delete(tenantID, id)
}
