package grade

import (
	"fmt"

	"github.com/schoolms/school-management-backend/internal/apperrors"
)

type Service interface {
	Create(tenantID uint, in CreateInput) (*Grade, error)
	GetByID(tenantID, id uint) (*Grade, error)
	List(tenantID uint, filter Filter) ([]Grade, error)
	Update(tenantID, id uint, in UpdateInput) (*Grade, error)
	Delete(tenantID, id uint) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

type CreateInput struct {
	StudentID uint
	CourseID  uint
	Value     float64
	Term      string
}

func (s *service) Create(tenantID uint, in CreateInput) (*Grade, error) {
	if err := s.checkRefs(tenantID, in.StudentID, in.CourseID); err != nil {
		return nil, err
	}

	g := &Grade{
		StudentID: in.StudentID,
		CourseID:  in.CourseID,
		Value:     in.Value,
		Term:      in.Term,
		TenantID:  tenantID,
	}
	if err := s.repo.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) GetByID(tenantID, id uint) (*Grade, error) {
	return s.repo.FindByID(tenantID, id)
}

func (s *service) List(tenantID uint, filter Filter) ([]Grade, error) {
	return s.repo.List(tenantID, filter)
}

type UpdateInput struct {
	StudentID *uint
	CourseID  *uint
	Value     *float64
	Term      *string
}

func (s *service) Update(tenantID, id uint, in UpdateInput) (*Grade, error) {
	g, err := s.repo.FindByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperrors.ErrNotFound
	}

	if in.StudentID != nil {
		g.StudentID = *in.StudentID
	}
	if in.CourseID != nil {
		g.CourseID = *in.CourseID
	}
	if in.StudentID != nil || in.CourseID != nil {
		if err := s.checkRefs(tenantID, g.StudentID, g.CourseID); err != nil {
			return nil, err
		}
	}
	if in.Value != nil {
		g.Value = *in.Value
	}
	if in.Term != nil {
		g.Term = *in.Term
	}

	if err := s.repo.Update(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) Delete(tenantID, id uint) (bool, error) {
	return s.repo.Delete(tenantID, id)
}

func (s *service) checkRefs(tenantID, studentID, courseID uint) error {
	ok, err := s.repo.StudentExists(tenantID, studentID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: student %d does not exist", apperrors.ErrIntegrityViolation, studentID)
	}

	ok, err = s.repo.CourseExists(tenantID, courseID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: course %d does not exist", apperrors.ErrIntegrityViolation, courseID)
	}
	return nil
}
