package services_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/services"
	"github.com/LLEndaya/LeaseUp/internal/testhelpers"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

func newAuthFixture(t *testing.T) (*testhelpers.MemStore, *services.AuthService) {
	testhelpers.FastHashing(t)
	store := testhelpers.NewMemStore()
	return store, services.NewAuthService(store, true)
}

func TestRestoreTenantPrefixQueriesOnlyTenantTable(t *testing.T) {
	store, svc := newAuthFixture(t)
	for i := 1; i <= 7; i++ {
		store.MustTenantAccount(t, fmt.Sprintf("u%d", i), fmt.Sprintf("u%d@example.com", i), "secret1")
	}
	store.MustAdmin(t, "admin", "admin1234")
	store.ResetCalls()

	p, err := svc.RestorePrincipal(context.Background(), "tenant_7")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, models.RoleTenant, p.Role)
	assert.EqualValues(t, 7, p.ID)
	assert.Equal(t, "u7", p.Username)
	assert.Equal(t, []string{"TenantAccounts.GetByID"}, store.Calls())
}

func TestRestoreUserPrefixQueriesOnlyAdminTable(t *testing.T) {
	store, svc := newAuthFixture(t)
	store.MustTenantAccount(t, "u1", "u1@example.com", "secret1")
	store.ResetCalls()

	p, err := svc.RestorePrincipal(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, []string{"Admins.GetByID"}, store.Calls())
}

func TestRestoreWithoutPrefixProbesAdminThenTenant(t *testing.T) {
	store, svc := newAuthFixture(t)
	store.MustTenantAccount(t, "u1", "u1@example.com", "secret1")
	store.ResetCalls()

	p, err := svc.RestorePrincipal(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, models.RoleTenant, p.Role)
	assert.Equal(t, []string{"Admins.GetByID", "TenantAccounts.GetByID"}, store.Calls())

	store.MustAdmin(t, "admin", "admin1234")
	p, err = svc.RestorePrincipal(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, p.Role)

	p, err = svc.RestorePrincipal(context.Background(), "99")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = svc.RestorePrincipal(context.Background(), "garbage")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSignupTenantCheckOrder(t *testing.T) {
	store, svc := newAuthFixture(t)
	store.MustTenantAccount(t, "taken", "taken@example.com", "secret1")
	ctx := context.Background()

	signup := func(user, email, pw, confirm string) dtos.TenantSignupRequest {
		return dtos.TenantSignupRequest{Username: user, Email: email, Password: pw, ConfirmPassword: confirm}
	}
	cases := []struct {
		name string
		req  dtos.TenantSignupRequest
		code int
		msg  string
	}{
		{"missing email", signup("u1", "", "secret1", "secret1"), http.StatusBadRequest, "Username, email, and password are required."},
		{"mismatch", signup("u1", "u1@example.com", "secret1", "secret2"), http.StatusBadRequest, "Passwords do not match."},
		{"short", signup("u1", "u1@example.com", "abc", "abc"), http.StatusBadRequest, "Password must be at least 6 characters."},
		{"username taken", signup("taken", "new@example.com", "secret1", "secret1"), http.StatusConflict, "Username already exists."},
		{"email taken", signup("fresh", "taken@example.com", "secret1", "secret1"), http.StatusConflict, "Email already registered."},
		{"bad email", signup("fresh", "not-an-email", "secret1", "secret1"), http.StatusBadRequest, "Invalid email address."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SignupTenant(ctx, tc.req)
			requireAppError(t, err, tc.code, tc.msg)
		})
	}

	req := signup("u1", "u1@example.com", "secret1", "secret1")
	req.Phone = "09170001111"
	acct, err := svc.SignupTenant(ctx, req)
	require.NoError(t, err)
	assert.NotZero(t, acct.ID)
	require.NotNil(t, acct.Phone)
	assert.Equal(t, "09170001111", *acct.Phone)
	assert.NotEqual(t, "secret1", acct.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret1", acct.PasswordHash))
}

func TestLoginsKeepIdentitySpacesApart(t *testing.T) {
	store, svc := newAuthFixture(t)
	store.MustAdmin(t, "admin", "admin1234")
	store.MustTenantAccount(t, "tenant", "tenant@example.com", "tenant123")
	ctx := context.Background()

	p, err := svc.LoginAdmin(ctx, dtos.LoginRequest{Username: "admin", Password: "admin1234"})
	require.NoError(t, err)
	assert.Equal(t, "user_1", p.SessionID())

	p, err = svc.LoginTenant(ctx, dtos.LoginRequest{Username: "tenant", Password: "tenant123"})
	require.NoError(t, err)
	assert.Equal(t, "tenant_1", p.SessionID())

	_, err = svc.LoginTenant(ctx, dtos.LoginRequest{Username: "admin", Password: "admin1234"})
	requireAppError(t, err, http.StatusUnauthorized, "Invalid credentials.")

	_, err = svc.LoginAdmin(ctx, dtos.LoginRequest{Username: "admin", Password: "wrong-pass"})
	requireAppError(t, err, http.StatusUnauthorized, "Invalid credentials.")
}

func TestAutologin(t *testing.T) {
	store, svc := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Autologin(ctx, dtos.AutologinRequest{})
	requireAppError(t, err, http.StatusBadRequest, "Password required.")

	_, err = svc.Autologin(ctx, dtos.AutologinRequest{Password: "admin1234"})
	requireAppError(t, err, http.StatusNotFound, "Admin user not found.")

	store.MustAdmin(t, "admin", "admin1234")
	_, err = svc.Autologin(ctx, dtos.AutologinRequest{Password: "nope"})
	requireAppError(t, err, http.StatusUnauthorized, "Incorrect password.")

	p, err := svc.Autologin(ctx, dtos.AutologinRequest{Password: "admin1234"})
	require.NoError(t, err)
	assert.True(t, p.IsAdmin())

	disabled := services.NewAuthService(store, false)
	_, err = disabled.Autologin(ctx, dtos.AutologinRequest{Password: "admin1234"})
	requireAppError(t, err, http.StatusNotFound, "")
}

func TestChangePassword(t *testing.T) {
	store, svc := newAuthFixture(t)
	acct := store.MustTenantAccount(t, "u1", "u1@example.com", "secret1")
	admin := store.MustAdmin(t, "admin", "admin1234")
	ctx := context.Background()
	p := models.TenantPrincipal(acct)

	change := func(cur, next, confirm string) dtos.ChangePasswordRequest {
		return dtos.ChangePasswordRequest{CurrentPassword: cur, NewPassword: next, ConfirmPassword: confirm}
	}

	err := svc.ChangePassword(ctx, p, change("wrong1", "newpass", "newpass"))
	requireAppError(t, err, http.StatusBadRequest, "Current password is incorrect.")

	err = svc.ChangePassword(ctx, p, change("secret1", "newpass", "newpas"))
	requireAppError(t, err, http.StatusBadRequest, "New passwords do not match.")

	err = svc.ChangePassword(ctx, p, change("secret1", "abc", "abc"))
	requireAppError(t, err, http.StatusBadRequest, "New password must be at least 6 characters.")

	require.NoError(t, svc.ChangePassword(ctx, p, change("secret1", "newpass", "newpass")))
	_, err = svc.LoginTenant(ctx, dtos.LoginRequest{Username: "u1", Password: "newpass"})
	require.NoError(t, err)

	// The admin sharing id 1 keeps its own password.
	_, err = svc.LoginAdmin(ctx, dtos.LoginRequest{Username: admin.Username, Password: "admin1234"})
	require.NoError(t, err)
}
