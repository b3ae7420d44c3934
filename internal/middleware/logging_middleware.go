package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// AccessLog logs one line per request once the handler returns.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		fields := logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}
		if p := PrincipalFrom(r.Context()); p != nil {
			fields["principal"] = p.SessionID()
		}
		utils.Logger.WithFields(fields).Info("request")
	})
}
