package attendance

import (
	"fmt"
	"time"

	"github.com/schoolms/school-management-backend/internal/apperrors"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(tenantID uint, in CreateInput) (*Attendance, error)
	GetByID(tenantID, id uint) (*Attendance, error)
	List(tenantID uint, filter Filter) ([]Attendance, error)
	Update(tenantID, id uint, in UpdateInput) (*Attendance, error)
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
	ClassID   uint
	Date      string
	Status    string
}

func (s *service) Create(tenantID uint, in CreateInput) (*Attendance, error) {
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrInvalidFormat)
	}

	status := in.Status
	if status == "" {
		status = StatusPresent
	}
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: status must be present, absent or late", apperrors.ErrInvalidFormat)
	}

	if err := s.checkRefs(tenantID, in.StudentID, in.ClassID); err != nil {
		return nil, err
	}

	record := &Attendance{
		StudentID: in.StudentID,
		ClassID:   in.ClassID,
		Date:      date,
		Status:    status,
		TenantID:  tenantID,
	}
	if err := s.repo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) GetByID(tenantID, id uint) (*Attendance, error) {
	return s.repo.FindByID(tenantID, id)
}

func (s *service) List(tenantID uint, filter Filter) ([]Attendance, error) {
	return s.repo.List(tenantID, filter)
}

type UpdateInput struct {
	StudentID *uint
	ClassID   *uint
	Date      *string
	Status    *string
}

func (s *service) Update(tenantID, id uint, in UpdateInput) (*Attendance, error) {
	record, err := s.repo.FindByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.ErrNotFound
	}

	if in.Date != nil {
		date, err := time.Parse(dateLayout, *in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrInvalidFormat)
		}
		record.Date = date
	}
	if in.Status != nil {
		if !ValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status must be present, absent or late", apperrors.ErrInvalidFormat)
		}
		record.Status = *in.Status
	}
	if in.StudentID != nil {
		record.StudentID = *in.StudentID
	}
	if in.ClassID != nil {
		record.ClassID = *in.ClassID
	}
	if in.StudentID != nil || in.ClassID != nil {
		if err := s.checkRefs(tenantID, record.StudentID, record.ClassID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) Delete(tenantID, id uint) (bool, error) {
	return s.repo.Delete(tenantID, id)
}

func (s *service) checkRefs(tenantID, studentID, classID uint) error {
	ok, err := s.repo.StudentExists(tenantID, studentID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: student %d does not exist", apperrors.ErrIntegrityViolation, studentID)
	}

	ok, err = s.repo.ClassExists(tenantID, classID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: class %d does not exist", apperrors.ErrIntegrityViolation, classID)
	}
	return nil
}
