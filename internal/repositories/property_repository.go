package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/LLEndaya/LeaseUp/internal/models"
)

/* ───────────── properties ───────────── */

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error
	GetByID(ctx context.Context, id int64) (*models.Property, error)
	List(ctx context.Context) ([]*models.Property, error)
	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id int64) error
}

type propertyRepo struct{ db DB }

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO properties (name, address) VALUES ($1, $2) RETURNING id`,
		p.Name, p.Address,
	).Scan(&p.ID)
}

func (r *propertyRepo) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	return scanProperty(r.db.QueryRow(ctx, `SELECT id, name, address FROM properties WHERE id=$1`, id))
}

func (r *propertyRepo) List(ctx context.Context) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, address FROM properties ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanProperty)
}

func (r *propertyRepo) Update(ctx context.Context, p *models.Property) error {
	tag, err := r.db.Exec(ctx, `UPDATE properties SET name=$1, address=$2 WHERE id=$3`, p.Name, p.Address, p.ID)
	if err != nil {
		return err
	}
	return affected(tag)
}

func (r *propertyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	if err := row.Scan(&p.ID, &p.Name, &p.Address); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

/* ───────────── units ───────────── */

type UnitRepository interface {
	Create(ctx context.Context, u *models.Unit) error
	GetByID(ctx context.Context, id int64) (*models.Unit, error)
	List(ctx context.Context) ([]*models.Unit, error)
	ListByPropertyID(ctx context.Context, propertyID int64) ([]*models.Unit, error)
	Update(ctx context.Context, u *models.Unit) error
	UpdateStatus(ctx context.Context, id int64, status models.UnitStatus) error
	Delete(ctx context.Context, id int64) error
}

type unitRepo struct{ db DB }

func NewUnitRepository(db DB) UnitRepository {
	return &unitRepo{db: db}
}

func (r *unitRepo) Create(ctx context.Context, u *models.Unit) error {
	if u.Status == "" {
		u.Status = models.UnitVacant
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO units (number, status, property_id) VALUES ($1, $2, $3) RETURNING id`,
		u.Number, u.Status, u.PropertyID,
	).Scan(&u.ID)
}

func (r *unitRepo) GetByID(ctx context.Context, id int64) (*models.Unit, error) {
	return scanUnit(r.db.QueryRow(ctx, baseSelectUnit()+" WHERE id=$1", id))
}

func (r *unitRepo) List(ctx context.Context) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUnit)
}

func (r *unitRepo) ListByPropertyID(ctx context.Context, propertyID int64) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+" WHERE property_id=$1 ORDER BY id", propertyID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUnit)
}

func (r *unitRepo) Update(ctx context.Context, u *models.Unit) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE units SET number=$1, status=$2, property_id=$3 WHERE id=$4`,
		u.Number, u.Status, u.PropertyID, u.ID,
	)
	if err != nil {
		return err
	}
	return affected(tag)
}

func (r *unitRepo) UpdateStatus(ctx context.Context, id int64, status models.UnitStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE units SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

func (r *unitRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM units WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return affected(tag)
}

func baseSelectUnit() string {
	return `SELECT id, number, status, property_id FROM units`
}

func scanUnit(row pgx.Row) (*models.Unit, error) {
	var u models.Unit
	if err := row.Scan(&u.ID, &u.Number, &u.Status, &u.PropertyID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
