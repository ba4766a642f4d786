package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ray-remotestate/restro-cart/config"
)

// Claims carries the tenant/table scope an upstream gatekeeper minted
// into the session token. The cart subsystem trusts it as-is and does
// no further authorization.
type Claims struct {
	TenantID uuid.UUID `json:"tenant_id"`
	TableID  uuid.UUID `json:"table_id"`
	jwt.RegisteredClaims
}

type ContextKey string

const sessionContextKey ContextKey = "table_session"

func TableSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr, err := extractBearerToken(r)
		if err != nil {
			http.Error(w, "unauthorized: missing token", http.StatusUnauthorized)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(config.SecretKey), nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "unauthorized: invalid token", http.StatusUnauthorized)
			return
		}
		if claims.TenantID == uuid.Nil || claims.TableID == uuid.Nil {
			http.Error(w, "unauthorized: token has no table scope", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetTableSession(r *http.Request) (*Claims, error) {
	claims, ok := r.Context().Value(sessionContextKey).(*Claims)
	if !ok {
		return nil, errors.New("no table session in context")
	}
	return claims, nil
}

func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization format")
	}
	return parts[1], nil
}
