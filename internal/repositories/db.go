package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// DB is the query surface shared by *pgxpool.Pool and pgx.Tx.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repos bundles every repository bound to one DB handle.
type Repos struct {
	Admins            AdminRepository
	TenantAccounts    TenantAccountRepository
	Properties        PropertyRepository
	Units             UnitRepository
	Tenants           TenantRepository
	Leases            LeaseRepository
	Payments          PaymentRepository
	Maintenance       MaintenanceRepository
	BookingRequests   BookingRequestRepository
	EmergencyContacts EmergencyContactRepository
}

func NewRepos(db DB) *Repos {
	return &Repos{
		Admins:            NewAdminRepository(db),
		TenantAccounts:    NewTenantAccountRepository(db),
		Properties:        NewPropertyRepository(db),
		Units:             NewUnitRepository(db),
		Tenants:           NewTenantRepository(db),
		Leases:            NewLeaseRepository(db),
		Payments:          NewPaymentRepository(db),
		Maintenance:       NewMaintenanceRepository(db),
		BookingRequests:   NewBookingRequestRepository(db),
		EmergencyContacts: NewEmergencyContactRepository(db),
	}
}

// Store hands out repositories and runs units of work atomically.
type Store interface {
	Repos() *Repos
	// WithTx runs fn against repositories bound to one transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx *Repos) error) error
	Ping(ctx context.Context) error
}

type pgStore struct {
	pool  *pgxpool.Pool
	repos *Repos
}

func NewStore(pool *pgxpool.Pool) Store {
	return &pgStore{pool: pool, repos: NewRepos(pool)}
}

func (s *pgStore) Repos() *Repos { return s.repos }

func (s *pgStore) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *pgStore) WithTx(ctx context.Context, fn func(tx *Repos) error) (err error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	return fn(NewRepos(tx))
}

/* ---------- helpers ---------- */

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isPgError(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// IsForeignKeyViolation reports whether err came from a rejected FK reference.
func IsForeignKeyViolation(err error) bool {
	return isPgError(err, pgForeignKeyViolation, "")
}

func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	var out []*T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func affected(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
