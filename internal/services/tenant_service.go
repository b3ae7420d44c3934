package services

import (
	"context"
	"strings"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type TenantService struct {
	store repositories.Store
}

func NewTenantService(store repositories.Store) *TenantService {
	return &TenantService{store: store}
}

func (s *TenantService) List(ctx context.Context) ([]*models.Tenant, error) {
	tenants, err := s.store.Repos().Tenants.List(ctx)
	return tenants, internalErr(err)
}

func (s *TenantService) Get(ctx context.Context, id int64) (*models.Tenant, error) {
	t, err := s.store.Repos().Tenants.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr(err)
	}
	if t == nil {
		return nil, utils.NewNotFound("Tenant not found.")
	}
	return t, nil
}

func (s *TenantService) Create(ctx context.Context, req dtos.TenantRequest) (*models.Tenant, error) {
	t := &models.Tenant{}
	applyTenant(t, req)
	if err := s.store.Repos().Tenants.Create(ctx, t); err != nil {
		return nil, internalErr(err)
	}
	return t, nil
}

func (s *TenantService) Update(ctx context.Context, id int64, req dtos.TenantRequest) (*models.Tenant, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyTenant(t, req)
	if err := s.store.Repos().Tenants.Update(ctx, t); err != nil {
		return nil, notFoundOr(err, "Tenant not found.")
	}
	return t, nil
}

// Delete refuses while a lease names the tenant.
func (s *TenantService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	leases, err := s.store.Repos().Leases.ListByTenantID(ctx, id)
	if err != nil {
		return internalErr(err)
	}
	if len(leases) > 0 {
		return utils.NewConflict("Tenant still has leases.")
	}
	if err := s.store.Repos().Tenants.Delete(ctx, id); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return utils.NewConflict("Tenant still has leases.")
		}
		return notFoundOr(err, "Tenant not found.")
	}
	return nil
}

func applyTenant(t *models.Tenant, req dtos.TenantRequest) {
	t.Name = strings.TrimSpace(req.Name)
	t.Phone = optional(req.Phone)
	t.Email = optional(req.Email)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
