package services

import (
	"context"
	"strings"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

// MaintenanceService stores the unit as a bare id; it is not checked
// against the units table.
type MaintenanceService struct {
	store repositories.Store
}

func NewMaintenanceService(store repositories.Store) *MaintenanceService {
	return &MaintenanceService{store: store}
}

func (s *MaintenanceService) List(ctx context.Context) ([]*models.MaintenanceRequest, error) {
	reqs, err := s.store.Repos().Maintenance.List(ctx)
	return reqs, internalErr(err)
}

func (s *MaintenanceService) Get(ctx context.Context, id int64) (*models.MaintenanceRequest, error) {
	m, err := s.store.Repos().Maintenance.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr(err)
	}
	if m == nil {
		return nil, utils.NewNotFound("Maintenance request not found.")
	}
	return m, nil
}

func (s *MaintenanceService) Create(ctx context.Context, req dtos.MaintenanceRequest) (*models.MaintenanceRequest, error) {
	m := &models.MaintenanceRequest{
		Description: strings.TrimSpace(req.Description),
		Status:      models.MaintenanceOpen,
	}
	if !req.UnitID.Empty() {
		id, err := req.UnitID.Int64()
		if err != nil {
			return nil, utils.NewBadRequest("Invalid unit id")
		}
		m.UnitID = &id
	}
	if req.Status != "" {
		if err := setMaintenanceStatus(m, req.Status); err != nil {
			return nil, err
		}
	}
	if err := s.store.Repos().Maintenance.Create(ctx, m); err != nil {
		return nil, internalErr(err)
	}
	return m, nil
}

// Update rewrites the description and, when given, the status.
func (s *MaintenanceService) Update(ctx context.Context, id int64, req dtos.MaintenanceRequest) (*models.MaintenanceRequest, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Description = strings.TrimSpace(req.Description)
	if req.Status != "" {
		if err := setMaintenanceStatus(m, req.Status); err != nil {
			return nil, err
		}
	}
	if err := s.store.Repos().Maintenance.Update(ctx, m); err != nil {
		return nil, notFoundOr(err, "Maintenance request not found.")
	}
	return m, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Repos().Maintenance.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Maintenance request not found.")
	}
	return nil
}

func setMaintenanceStatus(m *models.MaintenanceRequest, raw string) error {
	status := models.MaintenanceStatus(raw)
	if !status.Valid() {
		return utils.NewBadRequest("Invalid maintenance status")
	}
	m.Status = status
	return nil
}
