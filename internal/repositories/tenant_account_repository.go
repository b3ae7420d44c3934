package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type TenantAccountRepository interface {
	Create(ctx context.Context, t *models.TenantAccount) error
	GetByID(ctx context.Context, id int64) (*models.TenantAccount, error)
	GetByUsername(ctx context.Context, username string) (*models.TenantAccount, error)
	GetByEmail(ctx context.Context, email string) (*models.TenantAccount, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
}

type tenantAccountRepo struct{ db DB }

func NewTenantAccountRepository(db DB) TenantAccountRepository {
	return &tenantAccountRepo{db: db}
}

func (r *tenantAccountRepo) Create(ctx context.Context, t *models.TenantAccount) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO tenant_accounts (username, email, password_hash, phone, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`, t.Username, t.Email, t.PasswordHash, t.Phone).Scan(&t.ID, &t.CreatedAt)
	switch {
	case isPgError(err, pgUniqueViolation, "tenant_accounts_username_key"):
		return utils.ErrUsernameTaken
	case isPgError(err, pgUniqueViolation, "tenant_accounts_email_key"):
		return utils.ErrEmailTaken
	}
	return err
}

func (r *tenantAccountRepo) GetByID(ctx context.Context, id int64) (*models.TenantAccount, error) {
	return r.scan(r.db.QueryRow(ctx, baseSelectTenantAccount()+" WHERE id=$1", id))
}

func (r *tenantAccountRepo) GetByUsername(ctx context.Context, username string) (*models.TenantAccount, error) {
	return r.scan(r.db.QueryRow(ctx, baseSelectTenantAccount()+" WHERE username=$1", username))
}

func (r *tenantAccountRepo) GetByEmail(ctx context.Context, email string) (*models.TenantAccount, error) {
	return r.scan(r.db.QueryRow(ctx, baseSelectTenantAccount()+" WHERE email=$1", email))
}

func (r *tenantAccountRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE tenant_accounts SET password_hash=$1 WHERE id=$2`, hash, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

func baseSelectTenantAccount() string {
	return `SELECT id, username, email, password_hash, phone, created_at FROM tenant_accounts`
}

func (r *tenantAccountRepo) scan(row pgx.Row) (*models.TenantAccount, error) {
	var t models.TenantAccount
	if err := row.Scan(&t.ID, &t.Username, &t.Email, &t.PasswordHash, &t.Phone, &t.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
