package controllers

import (
	"context"
	"net/http"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/routes"
	"github.com/LLEndaya/LeaseUp/internal/services"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type AuthController struct {
	authService   *services.AuthService
	jwtService    services.JWTService
	secureCookies bool
}

func NewAuthController(auth *services.AuthService, jwt services.JWTService, secureCookies bool) *AuthController {
	return &AuthController{authService: auth, jwtService: jwt, secureCookies: secureCookies}
}

// POST /tenant-signup
func (c *AuthController) TenantSignup(w http.ResponseWriter, r *http.Request) {
	var req dtos.TenantSignupRequest
	if !decodeAndValidate(w, r, &req, routes.TenantSignup) {
		return
	}
	if _, err := c.authService.SignupTenant(r.Context(), req); err != nil {
		fail(w, r, err, routes.TenantSignup)
		return
	}
	respondAction(w, r, http.StatusCreated, "Account created! Please log in.", routes.TenantLogin)
}

// POST /login
func (c *AuthController) AdminLogin(w http.ResponseWriter, r *http.Request) {
	c.login(w, r, routes.AdminLogin, "Logged in.", c.authService.LoginAdmin)
}

// POST /tenant-login
func (c *AuthController) TenantLogin(w http.ResponseWriter, r *http.Request) {
	c.login(w, r, routes.TenantLogin, "Logged in as tenant.", c.authService.LoginTenant)
}

type loginFunc func(ctx context.Context, req dtos.LoginRequest) (*models.Principal, error)

func (c *AuthController) login(w http.ResponseWriter, r *http.Request, back, okMsg string, fn loginFunc) {
	var req dtos.LoginRequest
	if err := decodeRequest(w, r, &req); err != nil {
		fail(w, r, utils.NewBadRequest("Invalid request"), back)
		return
	}
	if err := validate.Struct(req); err != nil {
		fail(w, r, utils.NewBadRequest("Username and password are required."), back)
		return
	}

	p, err := fn(r.Context(), req)
	if err != nil {
		fail(w, r, err, back)
		return
	}
	if err := c.issueSession(w, p); err != nil {
		fail(w, r, err, back)
		return
	}
	respondAction(w, r, http.StatusOK, okMsg, utils.SafeRedirect(nextParam(r), routes.Dashboard))
}

// POST /admin-autologin
func (c *AuthController) AdminAutologin(w http.ResponseWriter, r *http.Request) {
	var req dtos.AutologinRequest
	if err := decodeRequest(w, r, &req); err != nil {
		fail(w, r, utils.NewBadRequest("Invalid request"), routes.Home)
		return
	}
	p, err := c.authService.Autologin(r.Context(), req)
	if err != nil {
		fail(w, r, err, routes.Home)
		return
	}
	if err := c.issueSession(w, p); err != nil {
		fail(w, r, err, routes.Home)
		return
	}
	respondAction(w, r, http.StatusOK, "Logged in.", routes.Dashboard)
}

// GET /logout and GET /tenant-logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	utils.ClearSessionCookie(w, c.secureCookies)
	respondAction(w, r, http.StatusOK, "Logged out.", routes.Home)
}

// POST /change-password
func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req dtos.ChangePasswordRequest
	if !decodeAndValidate(w, r, &req, routes.Dashboard) {
		return
	}
	if err := c.authService.ChangePassword(r.Context(), principal(r), req); err != nil {
		fail(w, r, err, routes.Dashboard)
		return
	}
	respondAction(w, r, http.StatusOK, "Password changed successfully.", routes.Dashboard)
}

func (c *AuthController) issueSession(w http.ResponseWriter, p *models.Principal) error {
	token, err := c.jwtService.GenerateSessionToken(p)
	if err != nil {
		return utils.NewInternal("Could not start session", err)
	}
	utils.SetSessionCookie(w, token, c.jwtService.TTL(), c.secureCookies)
	return nil
}

// nextParam reads ?next= from the query or a posted form field.
func nextParam(r *http.Request) string {
	if next := r.URL.Query().Get("next"); next != "" {
		return next
	}
	return r.PostFormValue("next")
}
