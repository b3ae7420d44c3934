package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSafeRedirect(t *testing.T) {
	cases := map[string]string{
		"":                     "/dashboard",
		"/leases":              "/leases",
		"/leases?page=2":       "/leases?page=2",
		"//evil.example":       "/dashboard",
		"/\\evil.example":      "/dashboard",
		"https://evil.example": "/dashboard",
		"leases":               "/dashboard",
	}
	for next, want := range cases {
		assert.Equal(t, want, SafeRedirect(next, "/dashboard"), next)
	}
}

func TestWantsJSON(t *testing.T) {
	req := func(header, value string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/book-unit", nil)
		if header != "" {
			r.Header.Set(header, value)
		}
		return r
	}
	assert.True(t, WantsJSON(req("Accept", "text/html, application/json")))
	assert.True(t, WantsJSON(req("Content-Type", "application/json; charset=utf-8")))
	assert.True(t, WantsJSON(req("X-Requested-With", "XMLHttpRequest")))
	assert.False(t, WantsJSON(req("Content-Type", "application/x-www-form-urlencoded")))
	assert.False(t, WantsJSON(req("", "")))
}

func TestFlashRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	RedirectWithFlash(rec, httptest.NewRequest(http.MethodPost, "/login", nil), "/dashboard", "Booking request approved! Lease created for Unit Room 5.")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	next := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	assert.Equal(t, "Booking request approved! Lease created for Unit Room 5.", PopFlash(rec, next))

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, FlashCookieName, cleared[0].Name)
	assert.Negative(t, cleared[0].MaxAge)

	assert.Empty(t, PopFlash(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestSessionCookieFlags(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "tok", time.Hour, true)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestHandleAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleAppError(rec, fmt.Errorf("wrapped: %w", NewConflict("Unit still has leases.")))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrCodeConflict, body.Code)
	assert.Equal(t, "Unit still has leases.", body.Message)

	rec = httptest.NewRecorder()
	HandleAppError(rec, errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestPasswordHash(t *testing.T) {
	old := PasswordHashCost
	PasswordHashCost = bcrypt.MinCost
	t.Cleanup(func() { PasswordHashCost = old })

	hash, err := HashPassword("admin1234")
	require.NoError(t, err)
	assert.NotEqual(t, "admin1234", hash)
	assert.True(t, CheckPasswordHash("admin1234", hash))
	assert.False(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("admin1234", "not-a-hash"))
}

func TestPtrVal(t *testing.T) {
	assert.Equal(t, 5, Val(Ptr(5)))
	var missing *string
	assert.Equal(t, "", Val(missing))
}

func TestInitLoggerTakesConfiguredLevel(t *testing.T) {
	prev := Logger.GetLevel()
	t.Cleanup(func() { Logger.SetLevel(prev) })

	InitLogger(AppName, "debug")
	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())

	InitLogger(AppName, " WARN ")
	assert.Equal(t, logrus.WarnLevel, Logger.GetLevel())

	InitLogger(AppName, "")
	assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())

	InitLogger(AppName, "chatty")
	assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())
}
