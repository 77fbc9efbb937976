package course_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/schoolms/school-management-backend/internal/apperrors"
	"github.com/schoolms/school-management-backend/internal/course"
)

const testTenantID = uint(1)

// fakeCourseRepo surfaces gorm.ErrDuplicatedKey on a repeated
// (tenant, code) pair, like the translated Postgres unique violation.
type fakeCourseRepo struct {
	nextID  uint
	courses map[uint]*course.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{nextID: 1, courses: map[uint]*course.Course{}}
}

func (r *fakeCourseRepo) codeTaken(c *course.Course) bool {
	for _, existing := range r.courses {
		if existing.ID != c.ID && existing.TenantID == c.TenantID && existing.Code == c.Code {
			return true
		}
	}
	return false
}

func (r *fakeCourseRepo) Create(c *course.Course) error {
	if r.codeTaken(c) {
		return gorm.ErrDuplicatedKey
	}
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.courses[c.ID] = &cp
	return nil
}

func (r *fakeCourseRepo) FindByID(tenantID, id uint) (*course.Course, error) {
	c, ok := r.courses[id]
	if !ok || c.TenantID != tenantID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) List(tenantID uint) ([]course.Course, error) {
	var out []course.Course
	for _, c := range r.courses {
		if c.TenantID == tenantID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) Update(c *course.Course) error {
	if r.codeTaken(c) {
		return gorm.ErrDuplicatedKey
	}
	cp := *c
	r.courses[c.ID] = &cp
	return nil
}

func (r *fakeCourseRepo) Delete(tenantID, id uint) (bool, error) {
	c, ok := r.courses[id]
	if !ok || c.TenantID != tenantID {
		return false, nil
	}
	delete(r.courses, id)
	return true, nil
}

func setupService(t *testing.T) course.Service {
	t.Helper()
	return course.NewService(newFakeCourseRepo())
}

func TestCreateCourse(t *testing.T) {
	svc := setupService(t)

	c, err := svc.Create(testTenantID, course.CreateInput{
		Name: "Mathematics",
		Code: "MATH101",
	})
	require.NoError(t, err)
	require.NotZero(t, c.ID)
	require.Equal(t, "MATH101", c.Code)
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(testTenantID, course.CreateInput{Name: "Mathematics", Code: "MATH101"})
	require.NoError(t, err)

	_, err = svc.Create(testTenantID, course.CreateInput{Name: "More Math", Code: "MATH101"})
	require.ErrorIs(t, err, apperrors.ErrIntegrityViolation)
}

func TestCreateCourseSameCodeDifferentTenants(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(testTenantID, course.CreateInput{Name: "Mathematics", Code: "MATH101"})
	require.NoError(t, err)

	c, err := svc.Create(uint(2), course.CreateInput{Name: "Mathematics", Code: "MATH101"})
	require.NoError(t, err)
	require.NotZero(t, c.ID)
}

func TestUpdateCoursePartialPatch(t *testing.T) {
	svc := setupService(t)

	c, err := svc.Create(testTenantID, course.CreateInput{
		Name:        "Mathematics",
		Code:        "MATH101",
		Description: "Algebra and geometry",
	})
	require.NoError(t, err)

	name := "Advanced Mathematics"
	updated, err := svc.Update(testTenantID, c.ID, course.UpdateInput{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Advanced Mathematics", updated.Name)
	require.Equal(t, "MATH101", updated.Code)
	require.Equal(t, "Algebra and geometry", updated.Description)
}

func TestUpdateCourseDuplicateCode(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(testTenantID, course.CreateInput{Name: "Mathematics", Code: "MATH101"})
	require.NoError(t, err)
	c, err := svc.Create(testTenantID, course.CreateInput{Name: "Physics", Code: "PHYS101"})
	require.NoError(t, err)

	taken := "MATH101"
	_, err = svc.Update(testTenantID, c.ID, course.UpdateInput{Code: &taken})
	require.ErrorIs(t, err, apperrors.ErrIntegrityViolation)
}

func TestUpdateCourseNotFound(t *testing.T) {
	svc := setupService(t)

	name := "Ghost"
	_, err := svc.Update(testTenantID, 404, course.UpdateInput{Name: &name})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetCourseScopedToTenant(t *testing.T) {
	svc := setupService(t)

	c, err := svc.Create(testTenantID, course.CreateInput{Name: "Mathematics", Code: "MATH101"})
	require.NoError(t, err)

	found, err := svc.GetByID(uint(2), c.ID)
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestDeleteCourse(t *testing.T) {
	svc := setupService(t)

	c, err := svc.Create(testTenantID, course.CreateInput{Name: "Mathematics", Code: "MATH101"})
	require.NoError(t, err)

	deleted, err := svc.Delete(testTenantID, c.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = svc.Delete(testTenantID, c.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}
