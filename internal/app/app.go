package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/LLEndaya/LeaseUp/internal/config"
	"github.com/LLEndaya/LeaseUp/internal/notify"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/services"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

type App struct {
	Config   *config.Config
	DB       *pgxpool.Pool
	Store    repositories.Store
	Services *Services
}

func NewApp(cfg *config.Config) (*App, error) {
	dbPool, err := ConnectDB(cfg.DBUrl)
	if err != nil {
		return nil, err
	}

	store := repositories.NewStore(dbPool)
	return &App{
		Config:   cfg,
		DB:       dbPool,
		Store:    store,
		Services: NewServices(cfg, store, Notifier(cfg)),
	}, nil
}

// ConnectDB opens the pool, retrying with exponential backoff.
func ConnectDB(databaseURL string) (*pgxpool.Pool, error) {
	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		dbPool, err = newDBPool(ctx, databaseURL)
		cancel()
		if err == nil {
			utils.Logger.Infof("Successfully connected to database on attempt %d", i)
			return dbPool, nil
		}

		utils.Logger.WithError(err).Warnf(
			"Failed to connect to database on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)
		if i < maxRetries {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("Database connection closed.")
	}
}

// newDBPool constructs the pgx pool.
//
//   - MaxConnIdleTime retires idle sockets before an upstream proxy drops them
//   - HealthCheckPeriod keeps pooled connections warm
func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	return pgxpool.ConnectConfig(ctx, cfg)
}

// Services is every domain service the router needs.
type Services struct {
	Auth        *services.AuthService
	JWT         services.JWTService
	Booking     *services.BookingService
	Dashboard   *services.DashboardService
	Properties  *services.PropertyService
	Tenants     *services.TenantService
	Leases      *services.LeaseService
	Maintenance *services.MaintenanceService
	Emergency   *services.EmergencyContactService
}

func NewServices(cfg *config.Config, store repositories.Store, notifier notify.Notifier) *Services {
	return &Services{
		Auth:        services.NewAuthService(store, cfg.AdminAutologinEnabled),
		JWT:         services.NewJWTService(cfg.SessionSecret, cfg.SessionTTL),
		Booking:     services.NewBookingService(store, notifier),
		Dashboard:   services.NewDashboardService(store),
		Properties:  services.NewPropertyService(store),
		Tenants:     services.NewTenantService(store),
		Leases:      services.NewLeaseService(store),
		Maintenance: services.NewMaintenanceService(store),
		Emergency:   services.NewEmergencyContactService(store),
	}
}

// Notifier fans booking decisions out to every configured channel.
func Notifier(cfg *config.Config) notify.Notifier {
	var channels []notify.Notifier
	if email := notify.NewEmailNotifier(cfg.SendgridAPIKey, cfg.SendgridFromEmail, cfg.SendgridSandbox); email != nil {
		utils.Logger.Info("Booking decision emails enabled (SendGrid)")
		channels = append(channels, email)
	}
	if sms := notify.NewSMSNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromPhone); sms != nil {
		utils.Logger.Info("Booking decision SMS enabled (Twilio)")
		channels = append(channels, sms)
	}
	return notify.Multi(channels...)
}
