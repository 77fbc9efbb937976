package auditlog

import (
	"context"
	"encoding/json"
	"math"
)

type Service interface {
	LogAction(ctx context.Context, userID *uint, tenantID *uint, action string, details map[string]interface{}, ip string, status string) error
	GetAuditLogs(ctx context.Context, tenantID uint, filter Filter) (*Page, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LogAction records one audit entry. Failures to marshal details degrade
// to an empty JSON object rather than losing the event.
func (s *service) LogAction(ctx context.Context, userID *uint, tenantID *uint, action string, details map[string]interface{}, ip string, status string) error {
	if details == nil {
		details = make(map[string]interface{})
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	entry := &AuditLog{
		UserID:    userID,
		TenantID:  tenantID,
		Action:    action,
		Details:   detailsJSON,
		IPAddress: ip,
		Status:    status,
	}

	return s.repo.Create(ctx, entry)
}

func (s *service) GetAuditLogs(ctx context.Context, tenantID uint, filter Filter) (*Page, error) {
	logs, total, err := s.repo.GetByFilter(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &Page{
		Data:       logs,
		Total:      total,
		PageNum:    filter.Page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
