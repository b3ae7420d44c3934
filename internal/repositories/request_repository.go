package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/LLEndaya/LeaseUp/internal/models"
)

/* ───────────── maintenance ───────────── */

type MaintenanceRepository interface {
	Create(ctx context.Context, m *models.MaintenanceRequest) error
	GetByID(ctx context.Context, id int64) (*models.MaintenanceRequest, error)
	// List returns every request, newest first.
	List(ctx context.Context) ([]*models.MaintenanceRequest, error)
	Update(ctx context.Context, m *models.MaintenanceRequest) error
	Delete(ctx context.Context, id int64) error
}

type maintenanceRepo struct{ db DB }

func NewMaintenanceRepository(db DB) MaintenanceRepository {
	return &maintenanceRepo{db: db}
}

func (r *maintenanceRepo) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	if m.Status == "" {
		m.Status = models.MaintenanceOpen
	}
	return r.db.QueryRow(ctx, `
		INSERT INTO maintenance_requests (unit_id, description, status, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`, m.UnitID, m.Description, m.Status).Scan(&m.ID, &m.CreatedAt)
}

func (r *maintenanceRepo) GetByID(ctx context.Context, id int64) (*models.MaintenanceRequest, error) {
	return scanMaintenance(r.db.QueryRow(ctx, baseSelectMaintenance()+" WHERE id=$1", id))
}

func (r *maintenanceRepo) List(ctx context.Context) ([]*models.MaintenanceRequest, error) {
	rows, err := r.db.Query(ctx, baseSelectMaintenance()+" ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	return collect(rows, scanMaintenance)
}

func (r *maintenanceRepo) Update(ctx context.Context, m *models.MaintenanceRequest) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE maintenance_requests SET unit_id=$1, description=$2, status=$3 WHERE id=$4`,
		m.UnitID, m.Description, m.Status, m.ID,
	)
	if err != nil {
		return err
	}
	return affected(tag)
}

func (r *maintenanceRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM maintenance_requests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

func baseSelectMaintenance() string {
	return `SELECT id, unit_id, description, status, created_at FROM maintenance_requests`
}

func scanMaintenance(row pgx.Row) (*models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	if err := row.Scan(&m.ID, &m.UnitID, &m.Description, &m.Status, &m.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

/* ───────────── booking requests ───────────── */

type BookingRequestRepository interface {
	Create(ctx context.Context, b *models.BookingRequest) error
	GetByID(ctx context.Context, id int64) (*models.BookingRequest, error)
	// ListExcludingStatus returns requests not in status, newest first.
	ListExcludingStatus(ctx context.Context, status models.BookingStatus) ([]*models.BookingRequest, error)
	ListByTenantAccountID(ctx context.Context, accountID int64) ([]*models.BookingRequest, error)
	UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) error
	// DeleteByStatus removes every request in status and reports how many rows went.
	DeleteByStatus(ctx context.Context, status models.BookingStatus) (int64, error)
}

type bookingRequestRepo struct{ db DB }

func NewBookingRequestRepository(db DB) BookingRequestRepository {
	return &bookingRequestRepo{db: db}
}

func (r *bookingRequestRepo) Create(ctx context.Context, b *models.BookingRequest) error {
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	return r.db.QueryRow(ctx, `
		INSERT INTO booking_requests (
			unit_id, tenant_account_id, start_date, end_date, notes, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6, NOW())
		RETURNING id, created_at
	`, b.UnitID, b.TenantAccountID, b.StartDate, b.EndDate, b.Notes, b.Status).Scan(&b.ID, &b.CreatedAt)
}

func (r *bookingRequestRepo) GetByID(ctx context.Context, id int64) (*models.BookingRequest, error) {
	return scanBookingRequest(r.db.QueryRow(ctx, baseSelectBookingRequest()+" WHERE id=$1", id))
}

func (r *bookingRequestRepo) ListExcludingStatus(ctx context.Context, status models.BookingStatus) ([]*models.BookingRequest, error) {
	rows, err := r.db.Query(ctx,
		baseSelectBookingRequest()+" WHERE status<>$1 ORDER BY created_at DESC, id DESC", status)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBookingRequest)
}

func (r *bookingRequestRepo) ListByTenantAccountID(ctx context.Context, accountID int64) ([]*models.BookingRequest, error) {
	rows, err := r.db.Query(ctx,
		baseSelectBookingRequest()+" WHERE tenant_account_id=$1 ORDER BY created_at DESC, id DESC", accountID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBookingRequest)
}

func (r *bookingRequestRepo) UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE booking_requests SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

func (r *bookingRequestRepo) DeleteByStatus(ctx context.Context, status models.BookingStatus) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM booking_requests WHERE status=$1`, status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func baseSelectBookingRequest() string {
	return `
		SELECT id, unit_id, tenant_account_id, start_date, end_date,
		notes, status, created_at
		FROM booking_requests`
}

func scanBookingRequest(row pgx.Row) (*models.BookingRequest, error) {
	var b models.BookingRequest
	if err := row.Scan(
		&b.ID, &b.UnitID, &b.TenantAccountID, &b.StartDate, &b.EndDate,
		&b.Notes, &b.Status, &b.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

/* ───────────── emergency contacts ───────────── */

type EmergencyContactRepository interface {
	Create(ctx context.Context, c *models.EmergencyContact) error
	GetByID(ctx context.Context, id int64) (*models.EmergencyContact, error)
	List(ctx context.Context) ([]*models.EmergencyContact, error)
	// Search matches q as a case-sensitive substring of unit identifier, name or phone.
	Search(ctx context.Context, q string) ([]*models.EmergencyContact, error)
	Update(ctx context.Context, c *models.EmergencyContact) error
	Delete(ctx context.Context, id int64) error
}

type emergencyContactRepo struct{ db DB }

func NewEmergencyContactRepository(db DB) EmergencyContactRepository {
	return &emergencyContactRepo{db: db}
}

func (r *emergencyContactRepo) Create(ctx context.Context, c *models.EmergencyContact) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO emergency_contacts (unit_identifier, name, phone) VALUES ($1, $2, $3) RETURNING id`,
		c.UnitIdentifier, c.Name, c.Phone,
	).Scan(&c.ID)
}

func (r *emergencyContactRepo) GetByID(ctx context.Context, id int64) (*models.EmergencyContact, error) {
	return scanEmergencyContact(r.db.QueryRow(ctx, baseSelectEmergencyContact()+" WHERE id=$1", id))
}

func (r *emergencyContactRepo) List(ctx context.Context) ([]*models.EmergencyContact, error) {
	rows, err := r.db.Query(ctx, baseSelectEmergencyContact()+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	return collect(rows, scanEmergencyContact)
}

func (r *emergencyContactRepo) Search(ctx context.Context, q string) ([]*models.EmergencyContact, error) {
	rows, err := r.db.Query(ctx, baseSelectEmergencyContact()+`
		WHERE strpos(unit_identifier, $1) > 0
		   OR strpos(name, $1) > 0
		   OR strpos(phone, $1) > 0
		ORDER BY id`, q)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanEmergencyContact)
}

func (r *emergencyContactRepo) Update(ctx context.Context, c *models.EmergencyContact) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE emergency_contacts SET unit_identifier=$1, name=$2, phone=$3 WHERE id=$4`,
		c.UnitIdentifier, c.Name, c.Phone, c.ID,
	)
	if err != nil {
		return err
	}
	return affected(tag)
}

func (r *emergencyContactRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM emergency_contacts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

func baseSelectEmergencyContact() string {
	return `SELECT id, unit_identifier, name, phone FROM emergency_contacts`
}

func scanEmergencyContact(row pgx.Row) (*models.EmergencyContact, error) {
	var c models.EmergencyContact
	if err := row.Scan(&c.ID, &c.UnitIdentifier, &c.Name, &c.Phone); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
