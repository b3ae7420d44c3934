package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

// PrincipalResolver maps a stored session identifier back to a principal.
type PrincipalResolver interface {
	RestorePrincipal(ctx context.Context, sessionID string) (*models.Principal, error)
}

// SessionMiddleware restores the principal from the session cookie when one
// is present. Requests without a usable session continue anonymously and
// a stale cookie is cleared.
func SessionMiddleware(secret []byte, resolver PrincipalResolver, secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(utils.SessionCookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			sub, err := ValidateSessionToken(c.Value, secret)
			if err != nil {
				utils.Logger.WithError(err).Debug("Discarding invalid session cookie")
				utils.ClearSessionCookie(w, secureCookies)
				next.ServeHTTP(w, r)
				return
			}

			p, err := resolver.RestorePrincipal(r.Context(), sub)
			if err != nil {
				utils.HandleAppError(w, err)
				return
			}
			if p == nil {
				utils.ClearSessionCookie(w, secureCookies)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireLogin rejects anonymous requests: 401 for JSON callers, a login
// redirect carrying ?next= for browsers.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if PrincipalFrom(r.Context()) == nil {
			if utils.WantsJSON(r) {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Please log in.", nil)
				return
			}
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole admits only principals of role. Others get 403 as JSON or a
// redirect to the dashboard with msg flashed.
func RequireRole(role models.Role, msg string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := PrincipalFrom(r.Context())
			if p.Role != role {
				if utils.WantsJSON(r) {
					utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeForbidden, msg, nil)
					return
				}
				utils.RedirectWithFlash(w, r, "/dashboard", msg)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

func RequireAdmin(msg string) func(http.Handler) http.Handler {
	return RequireRole(models.RoleAdmin, msg)
}

// RequireRoleJSON gates endpoints that always answer with a JSON payload:
// anonymous callers get 401 pointing at the login page and other roles get
// 403 pointing at the dashboard.
func RequireRoleJSON(role models.Role, msg string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := PrincipalFrom(r.Context())
			switch {
			case p == nil:
				utils.RespondErrorWithRedirect(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Please log in.",
					"/login?next="+url.QueryEscape(r.URL.RequestURI()))
			case p.Role != role:
				utils.RespondErrorWithRedirect(w, http.StatusForbidden, utils.ErrCodeForbidden, msg, "/dashboard")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
