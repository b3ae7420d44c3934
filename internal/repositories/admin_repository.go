package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

/* ───────────── public interface ───────────── */

type AdminRepository interface {
	Create(ctx context.Context, a *models.Admin) error
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
}

/* ───────────── implementation ───────────── */

type adminRepo struct{ db DB }

func NewAdminRepository(db DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) Create(ctx context.Context, a *models.Admin) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO admins (username, password_hash, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`, a.Username, a.PasswordHash).Scan(&a.ID, &a.CreatedAt)
	if isPgError(err, pgUniqueViolation, "admins_username_key") {
		return utils.ErrUsernameTaken
	}
	return err
}

func (r *adminRepo) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return r.scanAdmin(r.db.QueryRow(ctx, baseSelectAdmin()+" WHERE id=$1", id))
}

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return r.scanAdmin(r.db.QueryRow(ctx, baseSelectAdmin()+" WHERE username=$1", username))
}

func (r *adminRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE admins SET password_hash=$1 WHERE id=$2`, hash, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

/* ---------- internals ---------- */

func baseSelectAdmin() string {
	return `SELECT id, username, password_hash, created_at FROM admins`
}

func (r *adminRepo) scanAdmin(row pgx.Row) (*models.Admin, error) {
	var a models.Admin
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
