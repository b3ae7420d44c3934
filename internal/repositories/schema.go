package repositories

import "context"

// Schema creates every table if missing. Safe to run repeatedly.
const Schema = `
CREATE TABLE IF NOT EXISTS admins (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS tenant_accounts (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	phone         TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS properties (
	id      BIGSERIAL PRIMARY KEY,
	name    TEXT NOT NULL,
	address TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS units (
	id          BIGSERIAL PRIMARY KEY,
	number      TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'vacant' CHECK (status IN ('vacant', 'occupied')),
	property_id BIGINT NOT NULL REFERENCES properties(id)
);

CREATE TABLE IF NOT EXISTS tenants (
	id    BIGSERIAL PRIMARY KEY,
	name  TEXT NOT NULL,
	phone TEXT,
	email TEXT
);
CREATE INDEX IF NOT EXISTS tenants_email_idx ON tenants(email);

CREATE TABLE IF NOT EXISTS leases (
	id           BIGSERIAL PRIMARY KEY,
	unit_id      BIGINT NOT NULL REFERENCES units(id),
	tenant_id    BIGINT NOT NULL REFERENCES tenants(id),
	start_date   DATE,
	end_date     DATE,
	monthly_rent DOUBLE PRECISION NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS leases_unit_idx ON leases(unit_id);

CREATE TABLE IF NOT EXISTS payments (
	id       BIGSERIAL PRIMARY KEY,
	lease_id BIGINT NOT NULL REFERENCES leases(id) ON DELETE CASCADE,
	amount   DOUBLE PRECISION NOT NULL,
	paid_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS maintenance_requests (
	id          BIGSERIAL PRIMARY KEY,
	unit_id     BIGINT,
	description TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'in_progress', 'completed')),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS booking_requests (
	id                BIGSERIAL PRIMARY KEY,
	unit_id           BIGINT NOT NULL REFERENCES units(id) ON DELETE CASCADE,
	tenant_account_id BIGINT NOT NULL REFERENCES tenant_accounts(id) ON DELETE CASCADE,
	start_date        DATE NOT NULL,
	end_date          DATE NOT NULL,
	notes             TEXT NOT NULL DEFAULT '',
	status            TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS emergency_contacts (
	id              BIGSERIAL PRIMARY KEY,
	unit_identifier TEXT NOT NULL DEFAULT '',
	name            TEXT NOT NULL DEFAULT '',
	phone           TEXT NOT NULL DEFAULT ''
);
`

// CreateSchema applies Schema in one round trip.
func CreateSchema(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, Schema)
	return err
}
