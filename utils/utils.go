package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ray-remotestate/restro-cart/config"
	"github.com/ray-remotestate/restro-cart/middlewares"
)

const tableTokenLifetime = 12 * time.Hour

// GenerateTableToken mints the session token a table gets when it is
// seated (the QR-code flow upstream ends up here). All cart calls for
// that sitting carry it.
func GenerateTableToken(tenantID, tableID uuid.UUID) (string, error) {
	now := time.Now()

	claims := &middlewares.Claims{
		TenantID: tenantID,
		TableID:  tableID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   tableID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tableTokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := tokenObj.SignedString([]byte(config.SecretKey))
	if err != nil {
		return "", err
	}

	return token, nil
}
