//go:build integration

package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/LLEndaya/LeaseUp/internal/config"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

var (
	pool  *pgxpool.Pool
	store repositories.Store
)

// TestMain runs every test inside a throwaway Postgres schema so parallel
// runners sharing one database do not collide.
func TestMain(m *testing.M) {
	config.LoadDotEnv()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required for integration tests")
	}
	utils.InitLogger(utils.AppName+"-it", config.LogLevel(os.Getenv))
	utils.PasswordHashCost = 4

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	schema := "leaseup_it_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	admin, err := pgxpool.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	if _, err := admin.Exec(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema)); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	poolCfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatalf("parse url: %v", err)
	}
	poolCfg.ConnConfig.RuntimeParams["search_path"] = schema
	pool, err = pgxpool.ConnectConfig(ctx, poolCfg)
	if err != nil {
		log.Fatalf("connect to schema: %v", err)
	}
	if err := repositories.CreateSchema(ctx, pool); err != nil {
		log.Fatalf("apply schema: %v", err)
	}
	store = repositories.NewStore(pool)

	code := m.Run()

	pool.Close()
	if _, err := admin.Exec(context.Background(), fmt.Sprintf("DROP SCHEMA %s CASCADE", schema)); err != nil {
		log.Printf("drop schema: %v", err)
	}
	admin.Close()
	os.Exit(code)
}

// truncate empties every table and restarts ids at 1.
func truncate(t *testing.T) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		TRUNCATE admins, tenant_accounts, properties, units, tenants, leases,
		         payments, maintenance_requests, booking_requests, emergency_contacts
		RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}
