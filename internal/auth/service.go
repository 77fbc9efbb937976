package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/schoolms/school-management-backend/config"
	"github.com/schoolms/school-management-backend/internal/apperrors"
	"github.com/schoolms/school-management-backend/utils"
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Service interface {
	Register(tenantID uint, in RegisterInput) (*User, error)
	Login(tenantID uint, in LoginInput) (*TokenPair, *User, error)
	Refresh(refreshToken string) (string, error)
	Logout(accessToken string) error
	IsTokenRevoked(jti string) bool

	GetUserByID(tenantID, userID uint) (*User, error)
	ListUsers(tenantID uint) ([]User, error)
	UpdateUser(tenantID, userID uint, in UpdateInput) (*User, error)
	DeleteUser(tenantID, userID uint) (bool, error)
}

type service struct {
	repo          Repository
	denylist      utils.KeyStore
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewService(r Repository, denylist utils.KeyStore, cfg *config.Config) Service {
	return &service{
		repo:          r,
		denylist:      denylist,
		accessSecret:  cfg.JWTAccessSecret,
		refreshSecret: cfg.JWTRefreshSecret,
		accessTTL:     time.Duration(cfg.JWTAccessTTLSecs) * time.Second,
		refreshTTL:    time.Duration(cfg.JWTRefreshTTLSecs) * time.Second,
	}
}

// =============================
// Register
// =============================

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	UserType  int
}

func (s *service) Register(tenantID uint, in RegisterInput) (*User, error) {
	if existing, err := s.repo.FindByEmail(tenantID, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userType := in.UserType
	if userType == 0 {
		userType = UserTypeStudent
	}
	if userType < UserTypeAdmin || userType > UserTypeStaff {
		return nil, fmt.Errorf("%w: unknown user type %d", apperrors.ErrInvalidFormat, userType)
	}

	user := &User{
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		UserType:     userType,
		IsActive:     true,
		TenantID:     tenantID,
	}

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

// =============================
// Login
// =============================

type LoginInput struct {
	Email    string
	Password string
}

// authenticate returns nil, nil on bad credentials. "No match" is a
// result, not an error; the handler turns it into a 401.
func (s *service) authenticate(tenantID uint, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(tenantID, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}
	return user, nil
}

func (s *service) Login(tenantID uint, in LoginInput) (*TokenPair, *User, error) {
	user, err := s.authenticate(tenantID, in.Email, in.Password)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, nil
	}
	if !user.IsActive {
		return nil, nil, errors.New("your account is inactive")
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, nil, err
	}
	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, user, nil
}

func (s *service) generateAccessToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"tenant_id": user.TenantID,
		"user_type": user.UserType,
		"jti":       uuid.NewString(),
		"exp":       time.Now().Add(s.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.accessSecret))
}

func (s *service) generateRefreshToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"tenant_id": user.TenantID,
		"exp":       time.Now().Add(s.refreshTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.refreshSecret))
}

// =============================
// Refresh
// =============================

// Refresh trades a valid refresh token for a fresh access token. Refresh
// tokens carry their own expiry and are not subject to the access TTL.
func (s *service) Refresh(refreshToken string) (string, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.refreshSecret), nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["user_id"] == nil || claims["tenant_id"] == nil {
		return "", apperrors.ErrUnauthenticated
	}

	userID := uint(claims["user_id"].(float64))
	tenantID := uint(claims["tenant_id"].(float64))
	user, err := s.repo.FindByID(tenantID, userID)
	if err != nil {
		return "", err
	}
	if user == nil || !user.IsActive {
		return "", apperrors.ErrUnauthenticated
	}

	return s.generateAccessToken(user)
}

// =============================
// Logout / revocation
// =============================

func denylistKey(jti string) string {
	return fmt.Sprintf("revoked_token:%s", jti)
}

// Logout extracts the token identifier and writes it to the shared
// denylist. The entry expires with the token itself, so the set never
// outgrows the set of live tokens.
func (s *service) Logout(accessToken string) error {
	token, err := jwt.Parse(accessToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.accessSecret), nil
	})
	if err != nil || !token.Valid {
		return apperrors.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return apperrors.ErrUnauthenticated
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return apperrors.ErrUnauthenticated
	}

	ttl := s.accessTTL
	if expFloat, ok := claims["exp"].(float64); ok {
		if remaining := time.Until(time.Unix(int64(expFloat), 0)); remaining > 0 {
			ttl = remaining
		}
	}

	return s.denylist.Set(denylistKey(jti), "revoked", ttl)
}

func (s *service) IsTokenRevoked(jti string) bool {
	_, err := s.denylist.Get(denylistKey(jti))
	return err == nil
}

// =============================
// User CRUD
// =============================

func (s *service) GetUserByID(tenantID, userID uint) (*User, error) {
	return s.repo.FindByID(tenantID, userID)
}

func (s *service) ListUsers(tenantID uint) ([]User, error) {
	return s.repo.List(tenantID)
}

// UpdateInput carries the allow-listed patch fields. Nil means "leave
// unchanged".
type UpdateInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Phone     *string
	IsActive  *bool
	Password  *string
}

func (s *service) UpdateUser(tenantID, userID uint, in UpdateInput) (*User, error) {
	user, err := s.repo.FindByID(tenantID, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}

	if in.Email != nil && *in.Email != user.Email {
		if existing, err := s.repo.FindByEmail(tenantID, *in.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, apperrors.ErrDuplicateEmail
		}
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

func (s *service) DeleteUser(tenantID, userID uint) (bool, error) {
	return s.repo.Delete(tenantID, userID)
}
