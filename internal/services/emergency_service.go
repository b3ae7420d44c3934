package services

import (
	"context"
	"strings"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type EmergencyContactService struct {
	store repositories.Store
}

func NewEmergencyContactService(store repositories.Store) *EmergencyContactService {
	return &EmergencyContactService{store: store}
}

// Search returns contacts whose unit identifier, name or phone contains q.
// An empty query matches nothing.
func (s *EmergencyContactService) Search(ctx context.Context, q string) ([]*models.EmergencyContact, error) {
	if q == "" {
		return []*models.EmergencyContact{}, nil
	}
	results, err := s.store.Repos().EmergencyContacts.Search(ctx, q)
	if err != nil {
		return nil, internalErr(err)
	}
	if results == nil {
		results = []*models.EmergencyContact{}
	}
	return results, nil
}

func (s *EmergencyContactService) List(ctx context.Context) ([]*models.EmergencyContact, error) {
	list, err := s.store.Repos().EmergencyContacts.List(ctx)
	return list, internalErr(err)
}

func (s *EmergencyContactService) Get(ctx context.Context, id int64) (*models.EmergencyContact, error) {
	c, err := s.store.Repos().EmergencyContacts.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr(err)
	}
	if c == nil {
		return nil, utils.NewNotFound("Emergency contact not found.")
	}
	return c, nil
}

func (s *EmergencyContactService) Create(ctx context.Context, req dtos.EmergencyContactRequest) (*models.EmergencyContact, error) {
	c := &models.EmergencyContact{}
	applyContact(c, req)
	if err := s.store.Repos().EmergencyContacts.Create(ctx, c); err != nil {
		return nil, internalErr(err)
	}
	return c, nil
}

func (s *EmergencyContactService) Update(ctx context.Context, id int64, req dtos.EmergencyContactRequest) (*models.EmergencyContact, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyContact(c, req)
	if err := s.store.Repos().EmergencyContacts.Update(ctx, c); err != nil {
		return nil, notFoundOr(err, "Emergency contact not found.")
	}
	return c, nil
}

func (s *EmergencyContactService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Repos().EmergencyContacts.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Emergency contact not found.")
	}
	return nil
}

func applyContact(c *models.EmergencyContact, req dtos.EmergencyContactRequest) {
	c.UnitIdentifier = strings.TrimSpace(req.UnitIdentifier)
	c.Name = strings.TrimSpace(req.Name)
	c.Phone = strings.TrimSpace(req.Phone)
}
