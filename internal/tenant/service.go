package tenant

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/schoolms/school-management-backend/config"
	"github.com/schoolms/school-management-backend/internal/apperrors"
	"github.com/schoolms/school-management-backend/utils"
)

type Service interface {
	// Resolve maps an inbound X-Tenant-ID value (schema name) to a tenant.
	// Returns ErrUnresolvedTenant when no tenant matches.
	Resolve(schemaName string) (*Tenant, error)

	Provision(in ProvisionInput) (*Tenant, error)
	List() ([]Tenant, error)
}

type service struct {
	repo     Repository
	cache    utils.KeyStore
	cacheTTL time.Duration
}

func NewService(r Repository, cache utils.KeyStore, cfg *config.Config) Service {
	return &service{
		repo:     r,
		cache:    cache,
		cacheTTL: time.Duration(cfg.TenantCacheTTLSecs) * time.Second,
	}
}

func cacheKey(schemaName string) string {
	return fmt.Sprintf("tenant:%s", schemaName)
}

// Resolve is a read-through cache over the tenants table. The cache lives
// in Redis so every server instance resolves identically.
func (s *service) Resolve(schemaName string) (*Tenant, error) {
	if schemaName == "" {
		return nil, apperrors.ErrUnresolvedTenant
	}

	if raw, err := s.cache.Get(cacheKey(schemaName)); err == nil {
		var t Tenant
		if jsonErr := json.Unmarshal([]byte(raw), &t); jsonErr == nil {
			return &t, nil
		}
	}

	t, err := s.repo.FindBySchemaName(schemaName)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperrors.ErrUnresolvedTenant
	}

	if raw, err := json.Marshal(t); err == nil {
		_ = s.cache.Set(cacheKey(schemaName), string(raw), s.cacheTTL)
	}

	return t, nil
}

type ProvisionInput struct {
	Name       string
	SchemaName string
}

func (s *service) Provision(in ProvisionInput) (*Tenant, error) {
	existing, err := s.repo.FindBySchemaName(in.SchemaName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: schema name already in use", apperrors.ErrIntegrityViolation)
	}

	t := &Tenant{
		Name:       in.Name,
		SchemaName: in.SchemaName,
	}
	if err := s.repo.Create(t); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, fmt.Errorf("%w: schema name already in use", apperrors.ErrIntegrityViolation)
		}
		return nil, err
	}
	return t, nil
}

func (s *service) List() ([]Tenant, error) {
	return s.repo.List()
}
