package services

import (
	"time"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/models"
)

const expiryWindowDays = 30

// MonthsElapsed counts calendar-month boundaries between start and today,
// ignoring the day of month, floored at zero.
func MonthsElapsed(start, today time.Time) int {
	months := (today.Year()-start.Year())*12 + int(today.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// LeaseBalances computes expected-vs-paid for every lease with a start
// date. The end date is not consulted, so a lease keeps accruing after it
// expires.
func LeaseBalances(leases []*models.Lease, paid map[int64]float64, today time.Time) []dtos.LeaseBalance {
	out := make([]dtos.LeaseBalance, 0, len(leases))
	for _, l := range leases {
		if l.StartDate == nil {
			continue
		}
		expected := float64(MonthsElapsed(*l.StartDate, today)) * l.MonthlyRent
		p := paid[l.ID]
		out = append(out, dtos.LeaseBalance{
			Lease:    *l,
			Expected: expected,
			Paid:     p,
			Balance:  expected - p,
		})
	}
	return out
}

// LatestLeases maps each unit id to its highest-id lease.
func LatestLeases(leases []*models.Lease) map[int64]*models.Lease {
	latest := make(map[int64]*models.Lease)
	for _, l := range leases {
		if cur, ok := latest[l.UnitID]; !ok || l.ID > cur.ID {
			latest[l.UnitID] = l
		}
	}
	return latest
}

// UpcomingExpirations lists leases ending within 30 days of today. Leases
// already past their end date are included with a negative day count.
func UpcomingExpirations(leases []*models.Lease, today time.Time) []dtos.UpcomingExpiration {
	today = dateOnly(today)
	var out []dtos.UpcomingExpiration
	for _, l := range leases {
		if l.EndDate == nil {
			continue
		}
		days := DaysBetween(today, *l.EndDate)
		if days <= expiryWindowDays {
			out = append(out, dtos.UpcomingExpiration{Lease: *l, DaysLeft: days})
		}
	}
	return out
}

// DaysBetween is the whole calendar-day difference to - from.
func DaysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

// AvailableUnits annotates every vacant unit with its most recent rent
// and its property's name.
func AvailableUnits(
	units []*models.Unit,
	latest map[int64]*models.Lease,
	properties map[int64]*models.Property,
) []dtos.AvailableUnit {
	out := make([]dtos.AvailableUnit, 0)
	for _, u := range units {
		if u.Status != models.UnitVacant {
			continue
		}
		au := dtos.AvailableUnit{Unit: *u, PropertyName: "Unknown"}
		if l, ok := latest[u.ID]; ok {
			au.MonthlyRent = l.MonthlyRent
		}
		if p, ok := properties[u.PropertyID]; ok {
			au.PropertyName = p.Name
		}
		out = append(out, au)
	}
	return out
}
