package mw

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MrSnakeDoc/linkshelf/internal/logger"
)

// SessionCookieName holds the signed session token.
const SessionCookieName = "linkshelf_session"

type ctxKey string

const userIDKey ctxKey = "user_id"

// SessionConfig configures the session middleware.
type SessionConfig struct {
	Secret        []byte        // HS256 signing key
	DefaultUserID string        // when set, new sessions belong to this user instead of a fresh UUID
	TTL           time.Duration // cookie and token lifetime (default 30 days)
	Secure        bool          // mark the cookie Secure (HTTPS only)
}

type sessionClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Session identifies the current user from a signed cookie, issuing a new one
// when the cookie is missing, expired or tampered with. The user id is stored
// in the request context (see UserID).
func Session(cfg SessionConfig, log logger.Logger) func(http.Handler) http.Handler {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * 24 * time.Hour
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := readSession(r, cfg.Secret); ok {
				next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
				return
			}

			userID := cfg.DefaultUserID
			if userID == "" {
				userID = uuid.NewString()
			}
			token, err := signSession(userID, cfg.Secret, time.Now(), cfg.TTL)
			if err != nil {
				log.Error("failed to sign session", logger.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(cfg.TTL.Seconds()),
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})
			log.Debug("new session issued", logger.String("user_id", userID))

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func readSession(r *http.Request, secret []byte) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}

func signSession(userID string, secret []byte, now time.Time, ttl time.Duration) (string, error) {
	claims := &sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// WithUserID returns ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the user id stored by Session.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
