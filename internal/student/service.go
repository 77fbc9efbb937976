package student

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/schoolms/school-management-backend/internal/apperrors"
	"github.com/schoolms/school-management-backend/internal/auth"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(tenantID uint, in CreateInput) (*Student, error)
	GetByID(tenantID, id uint) (*Student, error)
	List(tenantID uint) ([]Student, error)
	Update(tenantID, id uint, in UpdateInput) (*Student, error)
	Delete(tenantID, id uint) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

// UserInput is the account part of a student create
type UserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type CreateInput struct {
	User           UserInput
	StudentID      string
	DOB            string
	Gender         string
	Address        string
	CurrentClassID *uint
	Parents        []string
}

// Create builds the backing User (role student) and the Student profile
// in one transaction, then attaches any matching parent accounts. A
// duplicate email aborts the whole sequence: no Student without its User,
// no User without its Student.
func (s *service) Create(tenantID uint, in CreateInput) (*Student, error) {
	var dob *time.Time
	if in.DOB != "" {
		parsed, err := time.Parse(dateLayout, in.DOB)
		if err != nil {
			return nil, fmt.Errorf("%w: dob must be YYYY-MM-DD", apperrors.ErrInvalidFormat)
		}
		dob = &parsed
	}

	if in.CurrentClassID != nil {
		ok, err := s.repo.ClassExists(tenantID, *in.CurrentClassID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: class %d does not exist", apperrors.ErrIntegrityViolation, *in.CurrentClassID)
		}
	}

	password := in.User.Password
	if password == "" {
		password = "default_password"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &auth.User{
		Email:        in.User.Email,
		PasswordHash: string(hash),
		FirstName:    in.User.FirstName,
		LastName:     in.User.LastName,
		UserType:     auth.UserTypeStudent,
		IsActive:     true,
		TenantID:     tenantID,
	}

	st := &Student{
		StudentID:      in.StudentID,
		DOB:            dob,
		Gender:         in.Gender,
		Address:        in.Address,
		CurrentClassID: in.CurrentClassID,
		TenantID:       tenantID,
	}

	if err := s.repo.CreateWithUser(user, st, in.Parents); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) GetByID(tenantID, id uint) (*Student, error) {
	return s.repo.FindByID(tenantID, id)
}

func (s *service) List(tenantID uint) ([]Student, error) {
	return s.repo.List(tenantID)
}

// UpdateInput patches both student-owned fields and the projected user
// fields; the latter write through to the owning User row.
type UpdateInput struct {
	StudentID      *string
	DOB            *string
	Gender         *string
	Address        *string
	CurrentClassID *uint

	Email     *string
	FirstName *string
	LastName  *string
}

func (s *service) Update(tenantID, id uint, in UpdateInput) (*Student, error) {
	st, err := s.repo.FindByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperrors.ErrNotFound
	}

	if in.StudentID != nil {
		st.StudentID = *in.StudentID
	}
	if in.DOB != nil {
		parsed, err := time.Parse(dateLayout, *in.DOB)
		if err != nil {
			return nil, fmt.Errorf("%w: dob must be YYYY-MM-DD", apperrors.ErrInvalidFormat)
		}
		st.DOB = &parsed
	}
	if in.Gender != nil {
		st.Gender = *in.Gender
	}
	if in.Address != nil {
		st.Address = *in.Address
	}
	if in.CurrentClassID != nil {
		ok, err := s.repo.ClassExists(tenantID, *in.CurrentClassID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: class %d does not exist", apperrors.ErrIntegrityViolation, *in.CurrentClassID)
		}
		st.CurrentClassID = in.CurrentClassID
	}

	if in.Email != nil {
		st.User.Email = *in.Email
	}
	if in.FirstName != nil {
		st.User.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		st.User.LastName = *in.LastName
	}

	if err := s.repo.UpdateWithUser(st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) Delete(tenantID, id uint) (bool, error) {
	return s.repo.Delete(tenantID, id)
}
