package mw

import (
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/linkshelf/internal/logger"
)

// EnforceHost rejects requests whose Host header matches none of allowedHosts.
// Patterns may be exact ("links.example.com") or wildcards ("*.example.com").
// An empty list lets everything through.
func EnforceHost(allowedHosts []string, log logger.Logger) func(http.Handler) http.Handler {
	if len(allowedHosts) == 0 {
		log.Debug("EnforceHost: empty allowedHosts, passthrough mode")
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, pattern := range allowedHosts {
				if matchHost(r.Host, pattern) {
					next.ServeHTTP(w, r)
					return
				}
			}
			log.Debug("EnforceHost: rejected", logger.String("host", r.Host))
			w.WriteHeader(http.StatusForbidden)
		})
	}
}

// matchHost compares case-insensitively; "*.example.com" matches any subdomain but not example.com itself.
func matchHost(host, pattern string) bool {
	host, pattern = strings.ToLower(host), strings.ToLower(pattern)
	if host == pattern {
		return true
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok && strings.HasPrefix(suffix, ".") {
		return strings.HasSuffix(host, suffix)
	}
	return false
}
