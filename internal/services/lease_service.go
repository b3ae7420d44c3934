package services

import (
	"context"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type LeaseService struct {
	store repositories.Store
}

func NewLeaseService(store repositories.Store) *LeaseService {
	return &LeaseService{store: store}
}

/* ---------- leases ---------- */

func (s *LeaseService) List(ctx context.Context) ([]*models.Lease, error) {
	leases, err := s.store.Repos().Leases.List(ctx)
	return leases, internalErr(err)
}

func (s *LeaseService) Get(ctx context.Context, id int64) (*models.Lease, error) {
	l, err := s.store.Repos().Leases.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr(err)
	}
	if l == nil {
		return nil, utils.NewNotFound("Lease not found.")
	}
	return l, nil
}

// Create inserts the lease and marks its unit occupied in one transaction.
func (s *LeaseService) Create(ctx context.Context, req dtos.LeaseRequest) (*models.Lease, error) {
	l := &models.Lease{}
	err := s.store.WithTx(ctx, func(tx *repositories.Repos) error {
		if err := applyLease(ctx, tx, l, req); err != nil {
			return err
		}
		if err := tx.Leases.Create(ctx, l); err != nil {
			return err
		}
		return tx.Units.UpdateStatus(ctx, l.UnitID, models.UnitOccupied)
	})
	if err != nil {
		return nil, internalErr(err)
	}
	utils.Logger.Infof("Lease %d created for unit %d", l.ID, l.UnitID)
	return l, nil
}

// Update rewrites the lease. Moving it to another unit occupies the new
// unit and vacates the old one if nothing else leases it.
func (s *LeaseService) Update(ctx context.Context, id int64, req dtos.LeaseRequest) (*models.Lease, error) {
	var l *models.Lease
	err := s.store.WithTx(ctx, func(tx *repositories.Repos) error {
		var err error
		l, err = tx.Leases.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if l == nil {
			return utils.NewNotFound("Lease not found.")
		}
		oldUnit := l.UnitID
		if err := applyLease(ctx, tx, l, req); err != nil {
			return err
		}
		if err := tx.Leases.Update(ctx, l); err != nil {
			return err
		}
		if oldUnit == l.UnitID {
			return nil
		}
		if err := tx.Units.UpdateStatus(ctx, l.UnitID, models.UnitOccupied); err != nil {
			return err
		}
		return vacateIfUnleased(ctx, tx, oldUnit)
	})
	if err != nil {
		return nil, notFoundOr(err, "Lease not found.")
	}
	return l, nil
}

// Delete removes the lease and its payments, then vacates the unit unless
// another lease still references it.
func (s *LeaseService) Delete(ctx context.Context, id int64) error {
	err := s.store.WithTx(ctx, func(tx *repositories.Repos) error {
		l, err := tx.Leases.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if l == nil {
			return utils.NewNotFound("Lease not found.")
		}
		if err := tx.Leases.Delete(ctx, id); err != nil {
			return err
		}
		return vacateIfUnleased(ctx, tx, l.UnitID)
	})
	if err != nil {
		return notFoundOr(err, "Lease not found.")
	}
	utils.Logger.Infof("Lease %d deleted", id)
	return nil
}

func vacateIfUnleased(ctx context.Context, tx *repositories.Repos, unitID int64) error {
	remaining, err := tx.Leases.ListByUnitID(ctx, unitID)
	if err != nil {
		return err
	}
	if len(remaining) > 0 {
		return nil
	}
	u, err := tx.Units.GetByID(ctx, unitID)
	if err != nil || u == nil {
		return err
	}
	return tx.Units.UpdateStatus(ctx, unitID, models.UnitVacant)
}

func applyLease(ctx context.Context, tx *repositories.Repos, l *models.Lease, req dtos.LeaseRequest) error {
	unitID, err := parseID(req.UnitID, "unit id")
	if err != nil {
		return err
	}
	tenantID, err := parseID(req.TenantID, "tenant id")
	if err != nil {
		return err
	}
	start, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return utils.NewBadRequest("Invalid date format")
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return utils.NewBadRequest("Invalid date format")
	}
	if start != nil && end != nil && end.Before(*start) {
		return utils.NewBadRequest("End date must not be before start date")
	}
	rent := 0.0
	if !req.MonthlyRent.Empty() {
		if rent, err = req.MonthlyRent.Float64(); err != nil || rent < 0 {
			return utils.NewBadRequest("Invalid monthly rent")
		}
	}

	if u, err := tx.Units.GetByID(ctx, unitID); err != nil {
		return err
	} else if u == nil {
		return utils.NewBadRequest("Unit not found.")
	}
	if t, err := tx.Tenants.GetByID(ctx, tenantID); err != nil {
		return err
	} else if t == nil {
		return utils.NewBadRequest("Tenant not found.")
	}

	l.UnitID = unitID
	l.TenantID = tenantID
	l.StartDate = start
	l.EndDate = end
	l.MonthlyRent = rent
	return nil
}

/* ---------- payments ---------- */

func (s *LeaseService) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	payments, err := s.store.Repos().Payments.List(ctx)
	return payments, internalErr(err)
}

func (s *LeaseService) LogPayment(ctx context.Context, req dtos.PaymentRequest) (*models.Payment, error) {
	leaseID, err := parseID(req.LeaseID, "lease id")
	if err != nil {
		return nil, err
	}
	amount, err := req.Amount.Float64()
	if err != nil || amount <= 0 {
		return nil, utils.NewBadRequest("Amount must be a positive number")
	}

	repos := s.store.Repos()
	l, err := repos.Leases.GetByID(ctx, leaseID)
	if err != nil {
		return nil, internalErr(err)
	}
	if l == nil {
		return nil, utils.NewBadRequest("Lease not found.")
	}

	p := &models.Payment{LeaseID: l.ID, Amount: amount}
	if err := repos.Payments.Create(ctx, p); err != nil {
		return nil, internalErr(err)
	}
	utils.Logger.Infof("Payment %d of %.2f logged against lease %d", p.ID, p.Amount, l.ID)
	return p, nil
}
