package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/LLEndaya/LeaseUp/internal/models"
)

/* ───────────── tenants ───────────── */

type TenantRepository interface {
	Create(ctx context.Context, t *models.Tenant) error
	GetByID(ctx context.Context, id int64) (*models.Tenant, error)
	// GetByEmail returns the lowest-id tenant carrying the email, if any.
	GetByEmail(ctx context.Context, email string) (*models.Tenant, error)
	List(ctx context.Context) ([]*models.Tenant, error)
	Update(ctx context.Context, t *models.Tenant) error
	Delete(ctx context.Context, id int64) error
}

type tenantRepo struct{ db DB }

func NewTenantRepository(db DB) TenantRepository {
	return &tenantRepo{db: db}
}

func (r *tenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tenants (name, phone, email) VALUES ($1, $2, $3) RETURNING id`,
		t.Name, t.Phone, t.Email,
	).Scan(&t.ID)
}

func (r *tenantRepo) GetByID(ctx context.Context, id int64) (*models.Tenant, error) {
	return scanTenant(r.db.QueryRow(ctx, baseSelectTenant()+" WHERE id=$1", id))
}

func (r *tenantRepo) GetByEmail(ctx context.Context, email string) (*models.Tenant, error) {
	return scanTenant(r.db.QueryRow(ctx, baseSelectTenant()+" WHERE email=$1 ORDER BY id LIMIT 1", email))
}

func (r *tenantRepo) List(ctx context.Context) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx, baseSelectTenant()+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	return collect(rows, scanTenant)
}

func (r *tenantRepo) Update(ctx context.Context, t *models.Tenant) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tenants SET name=$1, phone=$2, email=$3 WHERE id=$4`,
		t.Name, t.Phone, t.Email, t.ID,
	)
	if err != nil {
		return err
	}
	return affected(tag)
}

func (r *tenantRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tenants WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

func baseSelectTenant() string {
	return `SELECT id, name, phone, email FROM tenants`
}

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var t models.Tenant
	if err := row.Scan(&t.ID, &t.Name, &t.Phone, &t.Email); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

/* ───────────── leases ───────────── */

type LeaseRepository interface {
	Create(ctx context.Context, l *models.Lease) error
	GetByID(ctx context.Context, id int64) (*models.Lease, error)
	List(ctx context.Context) ([]*models.Lease, error)
	ListByUnitID(ctx context.Context, unitID int64) ([]*models.Lease, error)
	ListByTenantID(ctx context.Context, tenantID int64) ([]*models.Lease, error)
	// LatestByUnitID returns the highest-id lease on the unit, if any.
	LatestByUnitID(ctx context.Context, unitID int64) (*models.Lease, error)
	Update(ctx context.Context, l *models.Lease) error
	Delete(ctx context.Context, id int64) error
}

type leaseRepo struct{ db DB }

func NewLeaseRepository(db DB) LeaseRepository {
	return &leaseRepo{db: db}
}

func (r *leaseRepo) Create(ctx context.Context, l *models.Lease) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO leases (unit_id, tenant_id, start_date, end_date, monthly_rent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, l.UnitID, l.TenantID, l.StartDate, l.EndDate, l.MonthlyRent).Scan(&l.ID)
}

func (r *leaseRepo) GetByID(ctx context.Context, id int64) (*models.Lease, error) {
	return scanLease(r.db.QueryRow(ctx, baseSelectLease()+" WHERE id=$1", id))
}

func (r *leaseRepo) List(ctx context.Context) ([]*models.Lease, error) {
	return r.list(ctx, baseSelectLease()+" ORDER BY id")
}

func (r *leaseRepo) ListByUnitID(ctx context.Context, unitID int64) ([]*models.Lease, error) {
	return r.list(ctx, baseSelectLease()+" WHERE unit_id=$1 ORDER BY id", unitID)
}

func (r *leaseRepo) ListByTenantID(ctx context.Context, tenantID int64) ([]*models.Lease, error) {
	return r.list(ctx, baseSelectLease()+" WHERE tenant_id=$1 ORDER BY id", tenantID)
}

func (r *leaseRepo) LatestByUnitID(ctx context.Context, unitID int64) (*models.Lease, error) {
	return scanLease(r.db.QueryRow(ctx, baseSelectLease()+" WHERE unit_id=$1 ORDER BY id DESC LIMIT 1", unitID))
}

func (r *leaseRepo) Update(ctx context.Context, l *models.Lease) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE leases
		SET unit_id=$1, tenant_id=$2, start_date=$3, end_date=$4, monthly_rent=$5
		WHERE id=$6
	`, l.UnitID, l.TenantID, l.StartDate, l.EndDate, l.MonthlyRent, l.ID)
	if err != nil {
		return err
	}
	return affected(tag)
}

func (r *leaseRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM leases WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

func (r *leaseRepo) list(ctx context.Context, sql string, args ...any) ([]*models.Lease, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanLease)
}

func baseSelectLease() string {
	return `SELECT id, unit_id, tenant_id, start_date, end_date, monthly_rent FROM leases`
}

func scanLease(row pgx.Row) (*models.Lease, error) {
	var l models.Lease
	if err := row.Scan(&l.ID, &l.UnitID, &l.TenantID, &l.StartDate, &l.EndDate, &l.MonthlyRent); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

/* ───────────── payments ───────────── */

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	// List returns every payment, newest first.
	List(ctx context.Context) ([]*models.Payment, error)
	ListByLeaseID(ctx context.Context, leaseID int64) ([]*models.Payment, error)
	// TotalsByLease sums payment amounts per lease id.
	TotalsByLease(ctx context.Context) (map[int64]float64, error)
}

type paymentRepo struct{ db DB }

func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) error {
	if p.PaidAt.IsZero() {
		return r.db.QueryRow(ctx,
			`INSERT INTO payments (lease_id, amount, paid_at) VALUES ($1, $2, NOW()) RETURNING id, paid_at`,
			p.LeaseID, p.Amount,
		).Scan(&p.ID, &p.PaidAt)
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO payments (lease_id, amount, paid_at) VALUES ($1, $2, $3) RETURNING id`,
		p.LeaseID, p.Amount, p.PaidAt,
	).Scan(&p.ID)
}

func (r *paymentRepo) List(ctx context.Context) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx, baseSelectPayment()+" ORDER BY paid_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPayment)
}

func (r *paymentRepo) ListByLeaseID(ctx context.Context, leaseID int64) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx, baseSelectPayment()+" WHERE lease_id=$1 ORDER BY paid_at DESC, id DESC", leaseID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPayment)
}

func (r *paymentRepo) TotalsByLease(ctx context.Context) (map[int64]float64, error) {
	rows, err := r.db.Query(ctx, `SELECT lease_id, COALESCE(SUM(amount), 0) FROM payments GROUP BY lease_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[int64]float64)
	for rows.Next() {
		var (
			leaseID int64
			total   float64
		)
		if err := rows.Scan(&leaseID, &total); err != nil {
			return nil, err
		}
		totals[leaseID] = total
	}
	return totals, rows.Err()
}

func baseSelectPayment() string {
	return `SELECT id, lease_id, amount, paid_at FROM payments`
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var p models.Payment
	if err := row.Scan(&p.ID, &p.LeaseID, &p.Amount, &p.PaidAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
