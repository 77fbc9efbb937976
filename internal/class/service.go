package class

import (
	"fmt"

	"github.com/schoolms/school-management-backend/internal/apperrors"
)

type Service interface {
	Create(tenantID uint, in CreateInput) (*Class, error)
	GetByID(tenantID, id uint) (*Class, error)
	List(tenantID uint) ([]Class, error)
	Update(tenantID, id uint, in UpdateInput) (*Class, error)
	Delete(tenantID, id uint) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

// checkRefs enforces that the course exists in this tenant and, when a
// teacher is set, that the referenced user holds the teacher or admin
// role. Cross-tenant references never pass.
func (s *service) checkRefs(tenantID, courseID uint, teacherID *uint) error {
	ok, err := s.repo.CourseExists(tenantID, courseID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: course %d does not exist", apperrors.ErrIntegrityViolation, courseID)
	}

	if teacherID != nil {
		teacher, err := s.repo.FindTeacher(tenantID, *teacherID)
		if err != nil {
			return err
		}
		if teacher == nil {
			return fmt.Errorf("%w: teacher %d does not exist", apperrors.ErrIntegrityViolation, *teacherID)
		}
		if !teacher.IsTeacher() {
			return fmt.Errorf("%w: user %d is not a teacher", apperrors.ErrIntegrityViolation, *teacherID)
		}
	}
	return nil
}

type CreateInput struct {
	Name      string
	CourseID  uint
	TeacherID *uint
	Schedule  string
}

func (s *service) Create(tenantID uint, in CreateInput) (*Class, error) {
	if err := s.checkRefs(tenantID, in.CourseID, in.TeacherID); err != nil {
		return nil, err
	}

	cl := &Class{
		Name:      in.Name,
		CourseID:  in.CourseID,
		TeacherID: in.TeacherID,
		Schedule:  in.Schedule,
		TenantID:  tenantID,
	}
	if err := s.repo.Create(cl); err != nil {
		return nil, err
	}
	return cl, nil
}

func (s *service) GetByID(tenantID, id uint) (*Class, error) {
	return s.repo.FindByID(tenantID, id)
}

func (s *service) List(tenantID uint) ([]Class, error) {
	return s.repo.List(tenantID)
}

type UpdateInput struct {
	Name      *string
	CourseID  *uint
	TeacherID *uint
	Schedule  *string
}

func (s *service) Update(tenantID, id uint, in UpdateInput) (*Class, error) {
	cl, err := s.repo.FindByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, apperrors.ErrNotFound
	}

	if in.Name != nil {
		cl.Name = *in.Name
	}
	if in.CourseID != nil {
		cl.CourseID = *in.CourseID
	}
	if in.TeacherID != nil {
		cl.TeacherID = in.TeacherID
	}
	if in.Schedule != nil {
		cl.Schedule = *in.Schedule
	}

	if in.CourseID != nil || in.TeacherID != nil {
		if err := s.checkRefs(tenantID, cl.CourseID, cl.TeacherID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(cl); err != nil {
		return nil, err
	}
	return cl, nil
}

func (s *service) Delete(tenantID, id uint) (bool, error) {
	return s.repo.Delete(tenantID, id)
}
