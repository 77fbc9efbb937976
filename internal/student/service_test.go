package student_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/schoolms/school-management-backend/internal/apperrors"
	"github.com/schoolms/school-management-backend/internal/auth"
	"github.com/schoolms/school-management-backend/internal/student"
)

const testTenantID = uint(1)

// fakeStudentRepo keeps users and students in memory and mirrors the
// transactional behavior of the real repository: a duplicate email
// fails the compound create before anything is stored.
type fakeStudentRepo struct {
	nextUserID    uint
	nextStudentID uint
	users         map[uint]*auth.User
	students      map[uint]*student.Student
	classIDs      map[uint]bool
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{
		nextUserID:    1,
		nextStudentID: 1,
		users:         map[uint]*auth.User{},
		students:      map[uint]*student.Student{},
		classIDs:      map[uint]bool{},
	}
}

func (r *fakeStudentRepo) addUser(u auth.User) *auth.User {
	u.ID = r.nextUserID
	r.nextUserID++
	r.users[u.ID] = &u
	return r.users[u.ID]
}

func (r *fakeStudentRepo) CreateWithUser(user *auth.User, st *student.Student, parentEmails []string) error {
	for _, u := range r.users {
		if u.TenantID == user.TenantID && u.Email == user.Email {
			return apperrors.ErrDuplicateEmail
		}
	}
	for _, existing := range r.students {
		if existing.TenantID == st.TenantID && existing.StudentID == st.StudentID {
			return apperrors.ErrIntegrityViolation
		}
	}

	created := r.addUser(*user)
	user.ID = created.ID

	st.UserID = user.ID
	st.User = *user
	st.ID = r.nextStudentID
	r.nextStudentID++

	for _, email := range parentEmails {
		for _, u := range r.users {
			if u.TenantID == st.TenantID && u.UserType == auth.UserTypeParent && u.Email == email {
				st.Parents = append(st.Parents, *u)
			}
		}
	}

	cp := *st
	r.students[st.ID] = &cp
	return nil
}

func (r *fakeStudentRepo) FindByID(tenantID, id uint) (*student.Student, error) {
	st, ok := r.students[id]
	if !ok || st.TenantID != tenantID {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (r *fakeStudentRepo) List(tenantID uint) ([]student.Student, error) {
	var out []student.Student
	for _, st := range r.students {
		if st.TenantID == tenantID {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) UpdateWithUser(st *student.Student) error {
	for _, u := range r.users {
		if u.ID != st.User.ID && u.TenantID == st.User.TenantID && u.Email == st.User.Email {
			return apperrors.ErrDuplicateEmail
		}
	}
	userCp := st.User
	r.users[userCp.ID] = &userCp
	cp := *st
	r.students[st.ID] = &cp
	return nil
}

func (r *fakeStudentRepo) Delete(tenantID, id uint) (bool, error) {
	st, ok := r.students[id]
	if !ok || st.TenantID != tenantID {
		return false, nil
	}
	delete(r.students, id)
	return true, nil
}

func (r *fakeStudentRepo) ClassExists(tenantID, classID uint) (bool, error) {
	return r.classIDs[classID], nil
}

func setupService(t *testing.T) (student.Service, *fakeStudentRepo) {
	t.Helper()
	repo := newFakeStudentRepo()
	return student.NewService(repo), repo
}

func createInput() student.CreateInput {
	return student.CreateInput{
		User: student.UserInput{
			Email:     "tim@example.com",
			Password:  "secret123",
			FirstName: "Tim",
			LastName:  "Turner",
		},
		StudentID: "S-1001",
		DOB:       "2010-04-02",
		Gender:    "male",
	}
}

func TestCreateStudent(t *testing.T) {
	svc, repo := setupService(t)

	st, err := svc.Create(testTenantID, createInput())
	require.NoError(t, err)
	require.NotZero(t, st.ID)
	require.Equal(t, "S-1001", st.StudentID)
	require.NotNil(t, st.DOB)
	require.Equal(t, "2010-04-02", st.DOB.Format("2006-01-02"))

	// Projection reads through the backing user account.
	require.Equal(t, "Tim", st.FirstName())
	require.Equal(t, "Turner", st.LastName())
	require.Equal(t, "tim@example.com", st.Email())

	user := repo.users[st.UserID]
	require.NotNil(t, user)
	require.Equal(t, auth.UserTypeStudent, user.UserType)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestCreateStudentDefaultPassword(t *testing.T) {
	svc, repo := setupService(t)

	in := createInput()
	in.User.Password = ""
	st, err := svc.Create(testTenantID, in)
	require.NoError(t, err)

	user := repo.users[st.UserID]
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("default_password")))
}

func TestCreateStudentInvalidDOB(t *testing.T) {
	svc, repo := setupService(t)

	in := createInput()
	in.DOB = "02-04-2010"
	_, err := svc.Create(testTenantID, in)
	require.ErrorIs(t, err, apperrors.ErrInvalidFormat)
	require.Empty(t, repo.users)
	require.Empty(t, repo.students)
}

func TestCreateStudentDuplicateEmailIsAtomic(t *testing.T) {
	svc, repo := setupService(t)

	_, err := svc.Create(testTenantID, createInput())
	require.NoError(t, err)
	usersBefore := len(repo.users)
	studentsBefore := len(repo.students)

	in := createInput()
	in.StudentID = "S-1002"
	_, err = svc.Create(testTenantID, in)
	require.ErrorIs(t, err, apperrors.ErrDuplicateEmail)

	// Neither a user nor a student row appeared.
	require.Len(t, repo.users, usersBefore)
	require.Len(t, repo.students, studentsBefore)
}

func TestCreateStudentUnknownClass(t *testing.T) {
	svc, _ := setupService(t)

	classID := uint(7)
	in := createInput()
	in.CurrentClassID = &classID
	_, err := svc.Create(testTenantID, in)
	require.ErrorIs(t, err, apperrors.ErrIntegrityViolation)
}

func TestCreateStudentAttachesMatchingParents(t *testing.T) {
	svc, repo := setupService(t)

	repo.addUser(auth.User{Email: "mom@example.com", UserType: auth.UserTypeParent, TenantID: testTenantID})
	repo.addUser(auth.User{Email: "teacher@example.com", UserType: auth.UserTypeTeacher, TenantID: testTenantID})

	in := createInput()
	in.Parents = []string{"mom@example.com", "teacher@example.com", "missing@example.com"}
	st, err := svc.Create(testTenantID, in)
	require.NoError(t, err)

	// Only the real parent account matched; the teacher and the unknown
	// email were skipped without an error.
	require.Len(t, st.Parents, 1)
	require.Equal(t, "mom@example.com", st.Parents[0].Email)
}

func TestUpdateStudentWritesThroughToUser(t *testing.T) {
	svc, repo := setupService(t)

	st, err := svc.Create(testTenantID, createInput())
	require.NoError(t, err)

	email := "timothy@example.com"
	first := "Timothy"
	updated, err := svc.Update(testTenantID, st.ID, student.UpdateInput{
		Email:     &email,
		FirstName: &first,
	})
	require.NoError(t, err)
	require.Equal(t, "timothy@example.com", updated.Email())
	require.Equal(t, "Timothy", updated.FirstName())

	// The change landed on the user row, not a copy.
	user := repo.users[st.UserID]
	require.Equal(t, "timothy@example.com", user.Email)
	require.Equal(t, "Timothy", user.FirstName)
}

func TestUpdateStudentEmptyPatch(t *testing.T) {
	svc, _ := setupService(t)

	st, err := svc.Create(testTenantID, createInput())
	require.NoError(t, err)

	updated, err := svc.Update(testTenantID, st.ID, student.UpdateInput{})
	require.NoError(t, err)
	require.Equal(t, st.StudentID, updated.StudentID)
	require.Equal(t, st.Email(), updated.Email())
	require.Equal(t, st.Gender, updated.Gender)
}

func TestUpdateStudentUnknownClass(t *testing.T) {
	svc, _ := setupService(t)

	st, err := svc.Create(testTenantID, createInput())
	require.NoError(t, err)

	classID := uint(9)
	_, err = svc.Update(testTenantID, st.ID, student.UpdateInput{CurrentClassID: &classID})
	require.ErrorIs(t, err, apperrors.ErrIntegrityViolation)
}

func TestUpdateStudentNotFound(t *testing.T) {
	svc, _ := setupService(t)

	gender := "female"
	_, err := svc.Update(testTenantID, 99, student.UpdateInput{Gender: &gender})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteStudent(t *testing.T) {
	svc, _ := setupService(t)

	st, err := svc.Create(testTenantID, createInput())
	require.NoError(t, err)

	deleted, err := svc.Delete(testTenantID, st.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = svc.Delete(testTenantID, st.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestStudentScopedToTenant(t *testing.T) {
	svc, _ := setupService(t)

	st, err := svc.Create(testTenantID, createInput())
	require.NoError(t, err)

	found, err := svc.GetByID(uint(2), st.ID)
	require.NoError(t, err)
	require.Nil(t, found)
}
