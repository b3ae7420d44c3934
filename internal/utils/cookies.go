package utils

import (
	"net/http"
	"net/url"
	"time"
)

const (
	SessionCookieName = "leaseup_session"
	FlashCookieName   = "leaseup_flash"
)

// SetSessionCookie writes the session token and the security headers every
// token-bearing response carries.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	Logger.Debugf("[cookies] SetSessionCookie: ttl=%s secure=%t", ttl, secure)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl).UTC(),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	addSecurityHeaders(w)
}

// ClearSessionCookie expires the session cookie (logout).
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	addSecurityHeaders(w)
}

// SetFlash queues one notice for the next page the browser loads.
func SetFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads the queued notice, if any, and clears it.
func PopFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(FlashCookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: FlashCookieName, Value: "", Path: "/", MaxAge: -1})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}

// RedirectWithFlash is the browser-side reply to a form post.
func RedirectWithFlash(w http.ResponseWriter, r *http.Request, to, msg string) {
	if msg != "" {
		SetFlash(w, msg)
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func addSecurityHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
}
