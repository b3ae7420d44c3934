package services

import (
	"context"
	"fmt"
	"time"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/notify"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type BookingService struct {
	store    repositories.Store
	notifier notify.Notifier
}

func NewBookingService(store repositories.Store, notifier notify.Notifier) *BookingService {
	if notifier == nil {
		notifier = notify.Noop()
	}
	return &BookingService{store: store, notifier: notifier}
}

// ApprovalResult describes the rows an approval wrote.
type ApprovalResult struct {
	Request       *models.BookingRequest
	Unit          *models.Unit
	Tenant        *models.Tenant
	Lease         *models.Lease
	TenantCreated bool
}

// Submit records a pending booking request for a vacant unit. Checks run
// in a fixed order so the first failing one decides the message. Two
// pending requests may target the same unit.
func (s *BookingService) Submit(ctx context.Context, p *models.Principal, req dtos.BookUnitRequest) (*models.BookingRequest, error) {
	if !p.IsTenant() {
		return nil, utils.NewForbidden("Only tenants can book units")
	}

	unitID, err := req.UnitID.Int64()
	if err != nil {
		return nil, utils.NewBadRequest("Invalid unit id")
	}

	var start, end *time.Time
	if start, err = parseOptionalDate(req.StartDate); err != nil {
		return nil, utils.NewBadRequest("Invalid date format")
	}
	if end, err = parseOptionalDate(req.EndDate); err != nil {
		return nil, utils.NewBadRequest("Invalid date format")
	}
	if unitID == 0 || start == nil || end == nil {
		return nil, utils.NewBadRequest("All fields required")
	}

	repos := s.store.Repos()
	unit, err := repos.Units.GetByID(ctx, unitID)
	if err != nil {
		return nil, internalErr(err)
	}
	if unit == nil || unit.Status != models.UnitVacant {
		return nil, utils.NewBadRequest("Unit is not available")
	}

	b := &models.BookingRequest{
		UnitID:          unit.ID,
		TenantAccountID: p.ID,
		StartDate:       *start,
		EndDate:         *end,
		Notes:           req.Notes,
		Status:          models.BookingPending,
	}
	if err := repos.BookingRequests.Create(ctx, b); err != nil {
		return nil, internalErr(err)
	}
	utils.Logger.Infof("Booking request %d created by %s for unit %d", b.ID, p.SessionID(), unit.ID)
	return b, nil
}

// List returns every non-rejected request, newest first, with unit and
// requester details attached.
func (s *BookingService) List(ctx context.Context) ([]dtos.BookingRequestView, error) {
	repos := s.store.Repos()
	reqs, err := repos.BookingRequests.ListExcludingStatus(ctx, models.BookingRejected)
	if err != nil {
		return nil, internalErr(err)
	}

	views := make([]dtos.BookingRequestView, 0, len(reqs))
	for _, b := range reqs {
		v := dtos.BookingRequestView{BookingRequest: *b}
		if u, err := repos.Units.GetByID(ctx, b.UnitID); err != nil {
			return nil, internalErr(err)
		} else if u != nil {
			v.UnitNumber = u.Number
		}
		if a, err := repos.TenantAccounts.GetByID(ctx, b.TenantAccountID); err != nil {
			return nil, internalErr(err)
		} else if a != nil {
			v.Username = a.Username
			v.Email = a.Email
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *BookingService) ListForAccount(ctx context.Context, accountID int64) ([]*models.BookingRequest, error) {
	reqs, err := s.store.Repos().BookingRequests.ListByTenantAccountID(ctx, accountID)
	if err != nil {
		return nil, internalErr(err)
	}
	return reqs, nil
}

// Approve turns a pending request into a lease. The tenant lookup or
// insert, the unit flip, the lease insert and the status change commit
// together or not at all. The unit's current status is not re-checked and
// concurrent approvals are not serialised.
func (s *BookingService) Approve(ctx context.Context, id int64) (*ApprovalResult, error) {
	var (
		res     ApprovalResult
		account *models.TenantAccount
	)

	err := s.store.WithTx(ctx, func(tx *repositories.Repos) error {
		b, err := s.loadPending(ctx, tx, id)
		if err != nil {
			return err
		}

		account, err = tx.TenantAccounts.GetByID(ctx, b.TenantAccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return fmt.Errorf("booking request %d references missing account %d", b.ID, b.TenantAccountID)
		}
		unit, err := tx.Units.GetByID(ctx, b.UnitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return fmt.Errorf("booking request %d references missing unit %d", b.ID, b.UnitID)
		}

		tenant, err := tx.Tenants.GetByEmail(ctx, account.Email)
		if err != nil {
			return err
		}
		if tenant == nil {
			tenant = &models.Tenant{
				Name:  account.Username,
				Email: utils.Ptr(account.Email),
				Phone: account.Phone,
			}
			if err := tx.Tenants.Create(ctx, tenant); err != nil {
				return err
			}
			res.TenantCreated = true
		}

		if err := tx.Units.UpdateStatus(ctx, unit.ID, models.UnitOccupied); err != nil {
			return err
		}
		unit.Status = models.UnitOccupied

		lease := &models.Lease{
			UnitID:      unit.ID,
			TenantID:    tenant.ID,
			StartDate:   utils.Ptr(b.StartDate),
			EndDate:     utils.Ptr(b.EndDate),
			MonthlyRent: 0,
		}
		if err := tx.Leases.Create(ctx, lease); err != nil {
			return err
		}

		if err := tx.BookingRequests.UpdateStatus(ctx, b.ID, models.BookingApproved); err != nil {
			return err
		}
		b.Status = models.BookingApproved

		res.Request, res.Unit, res.Tenant, res.Lease = b, unit, tenant, lease
		return nil
	})
	if err != nil {
		return nil, internalErr(err)
	}

	utils.Logger.Infof("Booking request %d approved: lease %d for unit %d", id, res.Lease.ID, res.Unit.ID)
	s.notifier.BookingDecided(ctx, notify.BookingDecision{
		Account: account, Unit: res.Unit, Request: res.Request, Approved: true,
	})
	return &res, nil
}

// Reject marks a pending request rejected and touches nothing else.
func (s *BookingService) Reject(ctx context.Context, id int64) (*models.BookingRequest, error) {
	repos := s.store.Repos()
	b, err := s.loadPending(ctx, repos, id)
	if err != nil {
		return nil, internalErr(err)
	}
	if err := repos.BookingRequests.UpdateStatus(ctx, id, models.BookingRejected); err != nil {
		return nil, notFoundOr(err, "Booking request not found.")
	}
	b.Status = models.BookingRejected
	utils.Logger.Infof("Booking request %d rejected", id)

	account, err := repos.TenantAccounts.GetByID(ctx, b.TenantAccountID)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Booking request %d: loading account %d for notification", id, b.TenantAccountID)
	}
	unit, err := repos.Units.GetByID(ctx, b.UnitID)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Booking request %d: loading unit %d for notification", id, b.UnitID)
	}
	if account != nil {
		s.notifier.BookingDecided(ctx, notify.BookingDecision{
			Account: account, Unit: unit, Request: b, Approved: false,
		})
	}
	return b, nil
}

// PurgeRejected deletes every rejected request in one transaction and
// reports how many went. On failure nothing is deleted.
func (s *BookingService) PurgeRejected(ctx context.Context) (int64, error) {
	var deleted int64
	err := s.store.WithTx(ctx, func(tx *repositories.Repos) error {
		n, err := tx.BookingRequests.DeleteByStatus(ctx, models.BookingRejected)
		deleted = n
		return err
	})
	if err != nil {
		return 0, utils.NewInternal("Error purging rejected requests.", err)
	}
	utils.Logger.Infof("Purged %d rejected booking request(s)", deleted)
	return deleted, nil
}

func (s *BookingService) loadPending(ctx context.Context, repos *repositories.Repos, id int64) (*models.BookingRequest, error) {
	b, err := repos.BookingRequests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NewNotFound("Booking request not found.")
	}
	if b.Status != models.BookingPending {
		return nil, utils.NewConflict(fmt.Sprintf("Booking request is already %s.", b.Status))
	}
	return b, nil
}
