package notify

import (
	"context"
	"fmt"

	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

// BookingDecision is what a requester is told once an admin acts.
type BookingDecision struct {
	Account  *models.TenantAccount
	Unit     *models.Unit
	Request  *models.BookingRequest
	Approved bool
}

func (d BookingDecision) Subject() string {
	if d.Approved {
		return "Your LeaseUp booking was approved"
	}
	return "Your LeaseUp booking was not approved"
}

func (d BookingDecision) Body() string {
	unit := "the requested unit"
	if d.Unit != nil {
		unit = "Unit " + d.Unit.Number
	}
	if d.Approved {
		return fmt.Sprintf(
			"Hi %s, your booking request for %s (%s to %s) was approved. A lease has been created.",
			d.Account.Username, unit,
			d.Request.StartDate.Format(utils.DateLayout), d.Request.EndDate.Format(utils.DateLayout),
		)
	}
	return fmt.Sprintf("Hi %s, your booking request for %s was rejected.", d.Account.Username, unit)
}

// Notifier delivers booking decisions. Implementations log delivery
// failures instead of returning them.
type Notifier interface {
	BookingDecided(ctx context.Context, d BookingDecision)
}

type noop struct{}

func (noop) BookingDecided(context.Context, BookingDecision) {}

// Noop discards every notification.
func Noop() Notifier { return noop{} }

type multi []Notifier

func (m multi) BookingDecided(ctx context.Context, d BookingDecision) {
	for _, n := range m {
		n.BookingDecided(ctx, d)
	}
}

// Multi fans a decision out to every non-nil notifier.
func Multi(ns ...Notifier) Notifier {
	var out multi
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return Noop()
	}
	return out
}
