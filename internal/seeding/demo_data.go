package seeding

import (
	"context"
	"fmt"
	"time"

	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type demoTenant struct {
	name, phone, email string
}

var (
	demoProperties = []models.Property{
		{Name: "Greenfield Heights", Address: "123 Main St"},
		{Name: "Sunrise Residences", Address: "456 Oak Ave"},
		{Name: "Urban Plaza Apts", Address: "789 Pine Blvd"},
		{Name: "Riverside Towers", Address: "321 Elm Way"},
	}
	demoTenants = []demoTenant{
		{"Juan Dela Cruz", "09171234567", "juan@example.com"},
		{"Maria Santos", "09187654321", "maria@example.com"},
	}
)

// SeedDemoData populates properties, units, tenants, leases, contacts and a
// maintenance ticket in one transaction. It does nothing once any property
// exists.
func SeedDemoData(ctx context.Context, store repositories.Store, now time.Time) error {
	existing, err := store.Repos().Properties.List(ctx)
	if err != nil {
		return fmt.Errorf("error checking for existing properties: %w", err)
	}
	if len(existing) > 0 {
		utils.Logger.Infof("%d properties already exist; skipping demo data seed.", len(existing))
		return nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today.AddDate(0, 0, 365)

	return store.WithTx(ctx, func(tx *repositories.Repos) error {
		units := make([]*models.Unit, 0, len(demoProperties))
		for i := range demoProperties {
			p := demoProperties[i]
			if err := tx.Properties.Create(ctx, &p); err != nil {
				return fmt.Errorf("failed to insert property %q: %w", p.Name, err)
			}
			u := &models.Unit{Number: fmt.Sprintf("Room %d", i+1), Status: models.UnitVacant, PropertyID: p.ID}
			if err := tx.Units.Create(ctx, u); err != nil {
				return fmt.Errorf("failed to insert unit %q: %w", u.Number, err)
			}
			units = append(units, u)
		}

		tenants := make([]*models.Tenant, 0, len(demoTenants))
		for _, dt := range demoTenants {
			t := &models.Tenant{Name: dt.name, Phone: utils.Ptr(dt.phone), Email: utils.Ptr(dt.email)}
			if err := tx.Tenants.Create(ctx, t); err != nil {
				return fmt.Errorf("failed to insert tenant %q: %w", dt.name, err)
			}
			tenants = append(tenants, t)
		}

		leases := []struct {
			unit   *models.Unit
			tenant *models.Tenant
			rent   float64
		}{
			{units[0], tenants[0], 5000},
			{units[3], tenants[1], 6500},
		}
		for _, l := range leases {
			if err := tx.Units.UpdateStatus(ctx, l.unit.ID, models.UnitOccupied); err != nil {
				return err
			}
			lease := &models.Lease{
				UnitID:      l.unit.ID,
				TenantID:    l.tenant.ID,
				StartDate:   utils.Ptr(today),
				EndDate:     utils.Ptr(end),
				MonthlyRent: l.rent,
			}
			if err := tx.Leases.Create(ctx, lease); err != nil {
				return fmt.Errorf("failed to insert lease for %s: %w", l.unit.Number, err)
			}
		}

		for i, u := range units {
			ec := &models.EmergencyContact{
				UnitIdentifier: u.Number,
				Name:           fmt.Sprintf("Property Manager %d", i+1),
				Phone:          fmt.Sprintf("0917123456%d", i+1),
			}
			if i == 0 {
				ec.Name = tenants[0].Name
				ec.Phone = utils.Val(tenants[0].Phone)
			}
			if err := tx.EmergencyContacts.Create(ctx, ec); err != nil {
				return fmt.Errorf("failed to insert emergency contact for %s: %w", u.Number, err)
			}
		}
		lobby := &models.EmergencyContact{UnitIdentifier: "Lobby", Name: "Security Desk", Phone: "09170000000"}
		if err := tx.EmergencyContacts.Create(ctx, lobby); err != nil {
			return fmt.Errorf("failed to insert lobby contact: %w", err)
		}

		mr := &models.MaintenanceRequest{
			UnitID:      utils.Ptr(units[3].ID),
			Description: "Leaky faucet reported in Room 4. Needs plumbing attention.",
			Status:      models.MaintenanceOpen,
		}
		if err := tx.Maintenance.Create(ctx, mr); err != nil {
			return fmt.Errorf("failed to insert maintenance request: %w", err)
		}

		utils.Logger.Infof("Seeded %d properties, %d units, %d tenants and %d leases.",
			len(demoProperties), len(units), len(tenants), len(leases))
		return nil
	})
}
