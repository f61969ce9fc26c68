package mw

import (
	"net/http"

	"github.com/MrSnakeDoc/linkshelf/internal/logger"
)

// AllowOnlyCIDRS restricts a route to the listed IPs/CIDRs. An empty list lets everything through.
// trustProxy should be true only behind a trusted reverse proxy or tunnel.
func AllowOnlyCIDRS(allowed []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	m := newIPMatcher(allowed)
	if m.empty() {
		log.Debug("AllowOnlyCIDRS: empty matcher, passthrough mode")
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r, trustProxy)
			if !m.allow(ip) {
				log.Debug("AllowOnlyCIDRS: rejected",
					logger.String("ip", ip),
					logger.String("path", r.URL.Path))
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
