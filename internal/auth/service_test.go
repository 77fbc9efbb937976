package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/schoolms/school-management-backend/config"
	"github.com/schoolms/school-management-backend/internal/apperrors"
	"github.com/schoolms/school-management-backend/internal/auth"
	"github.com/schoolms/school-management-backend/utils"
)

const (
	testTenantID    = uint(1)
	otherTenantID   = uint(2)
	testEmail       = "jane.doe@example.com"
	testPassword    = "password123"
	testAccessSign  = "access-secret"
	testRefreshSign = "refresh-secret"
)

// fakeUserRepo is an in-memory auth.Repository.
type fakeUserRepo struct {
	nextID uint
	users  map[uint]*auth.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[uint]*auth.User{}}
}

func (r *fakeUserRepo) Create(user *auth.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(tenantID uint, email string) (*auth.User, error) {
	for _, u := range r.users {
		if u.TenantID == tenantID && u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(tenantID, userID uint) (*auth.User, error) {
	u, ok := r.users[userID]
	if !ok || u.TenantID != tenantID {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(tenantID uint) ([]auth.User, error) {
	var out []auth.User
	for _, u := range r.users {
		if u.TenantID == tenantID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(user *auth.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(tenantID, userID uint) (bool, error) {
	u, ok := r.users[userID]
	if !ok || u.TenantID != tenantID {
		return false, nil
	}
	delete(r.users, userID)
	return true, nil
}

// fakeKeyStore is an in-memory utils.KeyStore; TTLs are recorded but
// never expire within a test.
type fakeKeyStore struct {
	entries map[string]string
	ttls    map[string]time.Duration
}

func newFakeKeyStore() *fakeKeyStore {
	return &fakeKeyStore{entries: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *fakeKeyStore) Set(key, value string, ttl time.Duration) error {
	s.entries[key] = value
	s.ttls[key] = ttl
	return nil
}

func (s *fakeKeyStore) Get(key string) (string, error) {
	v, ok := s.entries[key]
	if !ok {
		return "", utils.ErrKeyNotFound
	}
	return v, nil
}

func (s *fakeKeyStore) Delete(key string) error {
	delete(s.entries, key)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTAccessSecret:   testAccessSign,
		JWTRefreshSecret:  testRefreshSign,
		JWTAccessTTLSecs:  3600,
		JWTRefreshTTLSecs: 7 * 24 * 3600,
	}
}

func setupService(t *testing.T) (auth.Service, *fakeUserRepo, *fakeKeyStore) {
	t.Helper()
	repo := newFakeUserRepo()
	denylist := newFakeKeyStore()
	return auth.NewService(repo, denylist, testConfig()), repo, denylist
}

func registerTestUser(t *testing.T, svc auth.Service, tenantID uint) *auth.User {
	t.Helper()
	user, err := svc.Register(tenantID, auth.RegisterInput{
		Email:     testEmail,
		Password:  testPassword,
		FirstName: "Jane",
		LastName:  "Doe",
		UserType:  auth.UserTypeTeacher,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func TestRegister(t *testing.T) {
	svc, repo, _ := setupService(t)

	user := registerTestUser(t, svc, testTenantID)
	require.Equal(t, testEmail, user.Email)
	require.Equal(t, auth.UserTypeTeacher, user.UserType)
	require.True(t, user.IsActive)
	require.NotEqual(t, testPassword, user.PasswordHash)

	stored, err := repo.FindByEmail(testTenantID, testEmail)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := setupService(t)
	registerTestUser(t, svc, testTenantID)

	_, err := svc.Register(testTenantID, auth.RegisterInput{
		Email:    testEmail,
		Password: "another-password",
	})
	require.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestRegisterSameEmailDifferentTenants(t *testing.T) {
	svc, _, _ := setupService(t)
	registerTestUser(t, svc, testTenantID)

	user, err := svc.Register(otherTenantID, auth.RegisterInput{
		Email:    testEmail,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.Equal(t, otherTenantID, user.TenantID)
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	svc, _, _ := setupService(t)

	user, err := svc.Register(testTenantID, auth.RegisterInput{
		Email:    "student@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	require.Equal(t, auth.UserTypeStudent, user.UserType)
}

func TestRegisterRejectsUnknownUserType(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Register(testTenantID, auth.RegisterInput{
		Email:    "who@example.com",
		Password: testPassword,
		UserType: 9,
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidFormat)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, _, _ := setupService(t)
	registered := registerTestUser(t, svc, testTenantID)

	pair, user, err := svc.Login(testTenantID, auth.LoginInput{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.NotNil(t, pair)
	require.NotNil(t, user)
	require.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	token, err := jwt.Parse(pair.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(testAccessSign), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, float64(registered.ID), claims["user_id"])
	require.Equal(t, float64(testTenantID), claims["tenant_id"])
	require.Equal(t, float64(auth.UserTypeTeacher), claims["user_type"])
	require.NotEmpty(t, claims["jti"])
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, _ := setupService(t)
	registerTestUser(t, svc, testTenantID)

	// Wrong password: no pair, no user, no error.
	pair, user, err := svc.Login(testTenantID, auth.LoginInput{Email: testEmail, Password: "wrong"})
	require.NoError(t, err)
	require.Nil(t, pair)
	require.Nil(t, user)

	// Unknown email behaves identically.
	pair, user, err = svc.Login(testTenantID, auth.LoginInput{Email: "nobody@example.com", Password: testPassword})
	require.NoError(t, err)
	require.Nil(t, pair)
	require.Nil(t, user)
}

func TestLoginScopedToTenant(t *testing.T) {
	svc, _, _ := setupService(t)
	registerTestUser(t, svc, testTenantID)

	pair, user, err := svc.Login(otherTenantID, auth.LoginInput{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.Nil(t, pair)
	require.Nil(t, user)
}

func TestLoginInactiveUser(t *testing.T) {
	svc, _, _ := setupService(t)
	user := registerTestUser(t, svc, testTenantID)

	inactive := false
	_, err := svc.UpdateUser(testTenantID, user.ID, auth.UpdateInput{IsActive: &inactive})
	require.NoError(t, err)

	_, _, err = svc.Login(testTenantID, auth.LoginInput{Email: testEmail, Password: testPassword})
	require.Error(t, err)
}

func TestRefresh(t *testing.T) {
	svc, _, _ := setupService(t)
	registered := registerTestUser(t, svc, testTenantID)

	pair, _, err := svc.Login(testTenantID, auth.LoginInput{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	accessToken, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)

	token, err := jwt.Parse(accessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(testAccessSign), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, float64(registered.ID), claims["user_id"])
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _, _ := setupService(t)
	registerTestUser(t, svc, testTenantID)

	pair, _, err := svc.Login(testTenantID, auth.LoginInput{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	// An access token is signed with the wrong secret for refresh.
	_, err = svc.Refresh(pair.AccessToken)
	require.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestRefreshGarbageToken(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Refresh("not-a-token")
	require.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, denylist := setupService(t)
	registerTestUser(t, svc, testTenantID)

	pair, _, err := svc.Login(testTenantID, auth.LoginInput{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	token, err := jwt.Parse(pair.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(testAccessSign), nil
	})
	require.NoError(t, err)
	jti := token.Claims.(jwt.MapClaims)["jti"].(string)

	require.False(t, svc.IsTokenRevoked(jti))
	require.NoError(t, svc.Logout(pair.AccessToken))
	require.True(t, svc.IsTokenRevoked(jti))

	// The denylist entry expires with the token, not after it.
	ttl := denylist.ttls["revoked_token:"+jti]
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, time.Hour)
}

func TestLogoutRejectsInvalidToken(t *testing.T) {
	svc, _, _ := setupService(t)
	require.ErrorIs(t, svc.Logout("garbage"), apperrors.ErrUnauthenticated)
}

func TestUpdateUserPartialPatch(t *testing.T) {
	svc, _, _ := setupService(t)
	user := registerTestUser(t, svc, testTenantID)

	first := "Janet"
	updated, err := svc.UpdateUser(testTenantID, user.ID, auth.UpdateInput{FirstName: &first})
	require.NoError(t, err)
	require.Equal(t, "Janet", updated.FirstName)
	require.Equal(t, user.Email, updated.Email)
	require.Equal(t, user.LastName, updated.LastName)
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	svc, _, _ := setupService(t)
	registerTestUser(t, svc, testTenantID)

	other, err := svc.Register(testTenantID, auth.RegisterInput{
		Email:    "second@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	taken := testEmail
	_, err = svc.UpdateUser(testTenantID, other.ID, auth.UpdateInput{Email: &taken})
	require.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc, _, _ := setupService(t)

	first := "Nobody"
	_, err := svc.UpdateUser(testTenantID, 42, auth.UpdateInput{FirstName: &first})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc, _, _ := setupService(t)
	user := registerTestUser(t, svc, testTenantID)

	deleted, err := svc.DeleteUser(testTenantID, user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = svc.DeleteUser(testTenantID, user.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}
