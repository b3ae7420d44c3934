package services

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type AuthService struct {
	store            repositories.Store
	autologinEnabled bool
}

func NewAuthService(store repositories.Store, autologinEnabled bool) *AuthService {
	return &AuthService{store: store, autologinEnabled: autologinEnabled}
}

// RestorePrincipal resolves a stored session identifier. A "user_" or
// "tenant_" prefix selects exactly one table; anything else probes the
// admin table and then the tenant-account table by the raw id.
// It returns (nil, nil) when no principal matches.
func (s *AuthService) RestorePrincipal(ctx context.Context, sessionID string) (*models.Principal, error) {
	ref, err := models.ParseSessionID(sessionID)
	if err != nil {
		utils.Logger.WithError(err).Debug("Unparseable session identifier")
		return nil, nil
	}

	switch ref.Role {
	case models.RoleAdmin:
		return s.adminPrincipal(ctx, ref.ID)
	case models.RoleTenant:
		return s.tenantPrincipal(ctx, ref.ID)
	}

	p, err := s.adminPrincipal(ctx, ref.ID)
	if err != nil || p != nil {
		return p, err
	}
	return s.tenantPrincipal(ctx, ref.ID)
}

func (s *AuthService) adminPrincipal(ctx context.Context, id int64) (*models.Principal, error) {
	a, err := s.store.Repos().Admins.GetByID(ctx, id)
	if err != nil || a == nil {
		return nil, err
	}
	return models.AdminPrincipal(a), nil
}

func (s *AuthService) tenantPrincipal(ctx context.Context, id int64) (*models.Principal, error) {
	t, err := s.store.Repos().TenantAccounts.GetByID(ctx, id)
	if err != nil || t == nil {
		return nil, err
	}
	return models.TenantPrincipal(t), nil
}

var errInvalidCredentials = &utils.AppError{
	StatusCode: http.StatusUnauthorized,
	Code:       utils.ErrCodeInvalidCredentials,
	Message:    "Invalid credentials.",
}

func (s *AuthService) LoginAdmin(ctx context.Context, req dtos.LoginRequest) (*models.Principal, error) {
	a, err := s.store.Repos().Admins.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, internalErr(err)
	}
	if a == nil || !utils.CheckPasswordHash(req.Password, a.PasswordHash) {
		utils.Logger.Infof("Failed admin login for %q", req.Username)
		return nil, errInvalidCredentials
	}
	return models.AdminPrincipal(a), nil
}

func (s *AuthService) LoginTenant(ctx context.Context, req dtos.LoginRequest) (*models.Principal, error) {
	t, err := s.store.Repos().TenantAccounts.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, internalErr(err)
	}
	if t == nil || !utils.CheckPasswordHash(req.Password, t.PasswordHash) {
		utils.Logger.Infof("Failed tenant login for %q", req.Username)
		return nil, errInvalidCredentials
	}
	return models.TenantPrincipal(t), nil
}

// Autologin signs in the seeded "admin" account by password alone.
func (s *AuthService) Autologin(ctx context.Context, req dtos.AutologinRequest) (*models.Principal, error) {
	if !s.autologinEnabled {
		return nil, utils.NewNotFound("Not found.")
	}
	if req.Password == "" {
		return nil, utils.NewBadRequest("Password required.")
	}
	a, err := s.store.Repos().Admins.GetByUsername(ctx, utils.DefaultAdmin)
	if err != nil {
		return nil, internalErr(err)
	}
	if a == nil {
		return nil, utils.NewNotFound("Admin user not found.")
	}
	if !utils.CheckPasswordHash(req.Password, a.PasswordHash) {
		return nil, &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeInvalidCredentials,
			Message:    "Incorrect password.",
		}
	}
	return models.AdminPrincipal(a), nil
}

func (s *AuthService) SignupTenant(ctx context.Context, req dtos.TenantSignupRequest) (*models.TenantAccount, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username == "" || email == "" || req.Password == "" {
		return nil, utils.NewBadRequest("Username, email, and password are required.")
	}
	if req.Password != req.ConfirmPassword {
		return nil, utils.NewBadRequest("Passwords do not match.")
	}
	if len(req.Password) < utils.MinPasswordLength {
		return nil, utils.NewBadRequest("Password must be at least 6 characters.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, utils.NewBadRequest("Invalid email address.")
	}

	repo := s.store.Repos().TenantAccounts
	if existing, err := repo.GetByUsername(ctx, username); err != nil {
		return nil, internalErr(err)
	} else if existing != nil {
		return nil, utils.NewConflict("Username already exists.")
	}
	if existing, err := repo.GetByEmail(ctx, email); err != nil {
		return nil, internalErr(err)
	} else if existing != nil {
		return nil, utils.NewConflict("Email already registered.")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, internalErr(err)
	}
	acct := &models.TenantAccount{Username: username, Email: email, PasswordHash: hash}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		acct.Phone = &phone
	}

	if err := repo.Create(ctx, acct); err != nil {
		switch {
		case errors.Is(err, utils.ErrUsernameTaken):
			return nil, utils.NewConflict("Username already exists.")
		case errors.Is(err, utils.ErrEmailTaken):
			return nil, utils.NewConflict("Email already registered.")
		}
		return nil, internalErr(err)
	}
	utils.Logger.Infof("Tenant account %d (%s) signed up", acct.ID, acct.Username)
	return acct, nil
}

// ChangePassword updates the password of p in p's own table.
func (s *AuthService) ChangePassword(ctx context.Context, p *models.Principal, req dtos.ChangePasswordRequest) error {
	repos := s.store.Repos()

	var currentHash string
	switch p.Role {
	case models.RoleAdmin:
		a, err := repos.Admins.GetByID(ctx, p.ID)
		if err != nil {
			return internalErr(err)
		}
		if a == nil {
			return utils.NewUnauthorized("Session expired.")
		}
		currentHash = a.PasswordHash
	case models.RoleTenant:
		t, err := repos.TenantAccounts.GetByID(ctx, p.ID)
		if err != nil {
			return internalErr(err)
		}
		if t == nil {
			return utils.NewUnauthorized("Session expired.")
		}
		currentHash = t.PasswordHash
	default:
		return utils.NewUnauthorized("Session expired.")
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, currentHash) {
		return utils.NewBadRequest("Current password is incorrect.")
	}
	if req.NewPassword != req.ConfirmPassword {
		return utils.NewBadRequest("New passwords do not match.")
	}
	if len(req.NewPassword) < utils.MinPasswordLength {
		return utils.NewBadRequest("New password must be at least 6 characters.")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return internalErr(err)
	}
	if p.Role == models.RoleAdmin {
		err = repos.Admins.UpdatePassword(ctx, p.ID, hash)
	} else {
		err = repos.TenantAccounts.UpdatePassword(ctx, p.ID, hash)
	}
	if err != nil {
		return notFoundOr(err, "Account not found.")
	}
	utils.Logger.Infof("Password changed for %s", p.SessionID())
	return nil
}
