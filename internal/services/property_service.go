package services

import (
	"context"
	"strings"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type PropertyService struct {
	store repositories.Store
}

func NewPropertyService(store repositories.Store) *PropertyService {
	return &PropertyService{store: store}
}

/* ---------- properties ---------- */

func (s *PropertyService) ListProperties(ctx context.Context) ([]*models.Property, error) {
	props, err := s.store.Repos().Properties.List(ctx)
	return props, internalErr(err)
}

func (s *PropertyService) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	p, err := s.store.Repos().Properties.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr(err)
	}
	if p == nil {
		return nil, utils.NewNotFound("Property not found.")
	}
	return p, nil
}

func (s *PropertyService) CreateProperty(ctx context.Context, req dtos.PropertyRequest) (*models.Property, error) {
	p := &models.Property{Name: strings.TrimSpace(req.Name), Address: strings.TrimSpace(req.Address)}
	if err := s.store.Repos().Properties.Create(ctx, p); err != nil {
		return nil, internalErr(err)
	}
	return p, nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, id int64, req dtos.PropertyRequest) (*models.Property, error) {
	p, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = strings.TrimSpace(req.Name)
	p.Address = strings.TrimSpace(req.Address)
	if err := s.store.Repos().Properties.Update(ctx, p); err != nil {
		return nil, notFoundOr(err, "Property not found.")
	}
	return p, nil
}

// DeleteProperty refuses while any unit still belongs to the property.
func (s *PropertyService) DeleteProperty(ctx context.Context, id int64) error {
	if _, err := s.GetProperty(ctx, id); err != nil {
		return err
	}
	units, err := s.store.Repos().Units.ListByPropertyID(ctx, id)
	if err != nil {
		return internalErr(err)
	}
	if len(units) > 0 {
		return utils.NewConflict("Property still has units.")
	}
	if err := s.store.Repos().Properties.Delete(ctx, id); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return utils.NewConflict("Property still has units.")
		}
		return notFoundOr(err, "Property not found.")
	}
	return nil
}

/* ---------- units ---------- */

func (s *PropertyService) ListUnits(ctx context.Context) ([]*models.Unit, error) {
	units, err := s.store.Repos().Units.List(ctx)
	return units, internalErr(err)
}

func (s *PropertyService) GetUnit(ctx context.Context, id int64) (*models.Unit, error) {
	u, err := s.store.Repos().Units.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr(err)
	}
	if u == nil {
		return nil, utils.NewNotFound("Unit not found.")
	}
	return u, nil
}

func (s *PropertyService) CreateUnit(ctx context.Context, req dtos.UnitRequest) (*models.Unit, error) {
	u := &models.Unit{Number: strings.TrimSpace(req.Number), Status: models.UnitVacant}
	if err := s.applyUnit(ctx, u, req); err != nil {
		return nil, err
	}
	if err := s.store.Repos().Units.Create(ctx, u); err != nil {
		return nil, internalErr(err)
	}
	return u, nil
}

func (s *PropertyService) UpdateUnit(ctx context.Context, id int64, req dtos.UnitRequest) (*models.Unit, error) {
	u, err := s.GetUnit(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Number = strings.TrimSpace(req.Number)
	if err := s.applyUnit(ctx, u, req); err != nil {
		return nil, err
	}
	if err := s.store.Repos().Units.Update(ctx, u); err != nil {
		return nil, notFoundOr(err, "Unit not found.")
	}
	return u, nil
}

// DeleteUnit refuses while any lease references the unit.
func (s *PropertyService) DeleteUnit(ctx context.Context, id int64) error {
	if _, err := s.GetUnit(ctx, id); err != nil {
		return err
	}
	leases, err := s.store.Repos().Leases.ListByUnitID(ctx, id)
	if err != nil {
		return internalErr(err)
	}
	if len(leases) > 0 {
		return utils.NewConflict("Unit still has leases.")
	}
	if err := s.store.Repos().Units.Delete(ctx, id); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return utils.NewConflict("Unit still has leases.")
		}
		return notFoundOr(err, "Unit not found.")
	}
	return nil
}

func (s *PropertyService) applyUnit(ctx context.Context, u *models.Unit, req dtos.UnitRequest) error {
	if req.Status != "" {
		status := models.UnitStatus(req.Status)
		if !status.Valid() {
			return utils.NewBadRequest("Invalid unit status")
		}
		u.Status = status
	}
	propertyID, err := parseID(req.PropertyID, "property id")
	if err != nil {
		return err
	}
	p, err := s.store.Repos().Properties.GetByID(ctx, propertyID)
	if err != nil {
		return internalErr(err)
	}
	if p == nil {
		return utils.NewBadRequest("Property not found.")
	}
	u.PropertyID = p.ID
	return nil
}
