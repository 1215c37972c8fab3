// Package auth extracts the caller identity from a bearer token issued
// by the external auth provider. The engine never manages sessions; it
// only decodes the already-established identity and hands the raw
// subject to the tenant guard downstream.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity fields the engine consumes: the subject
// is the tenant id, email and name seed profile creation.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Identity is the decoded caller identity stored on the request context.
// TenantID is passed on as-is; validation happens in the tenant guard.
type Identity struct {
	TenantID string
	Email    string
	Name     string
}

type contextKey struct{}

var identityKey contextKey

// Middleware verifies the Authorization bearer token with the shared
// secret and stores the caller identity in the request context.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing or invalid Authorization header", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			var claims Claims

			token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}

				return secret, nil
			})
			if err != nil || !token.Valid || claims.Subject == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			identity := Identity{
				TenantID: claims.Subject,
				Email:    claims.Email,
				Name:     claims.Name,
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromRequest returns the caller identity carried by the request. The
// zero Identity means the middleware did not run.
func FromRequest(r *http.Request) Identity {
	if v, ok := r.Context().Value(identityKey).(Identity); ok {
		return v
	}

	return Identity{}
}
