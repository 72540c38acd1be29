package auth

import (
	"errors"
	"time"

	"food-marketplace-api/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed payload, expiry, unknown role. Callers get no finer detail.
var ErrInvalidToken = errors.New("invalid token")

// TokenLifetime is how long an issued session token stays valid
const TokenLifetime = 7 * 24 * time.Hour

type Claims struct {
	UserID       uint            `json:"user_id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	Role         models.UserRole `json:"role"`
	RestaurantID *uint           `json:"restaurant_id,omitempty"`
	Permissions  []string        `json:"permissions"`
	jwt.RegisteredClaims
}

// Issue creates a signed session token for a given user. The permission
// list is snapshotted from the role table at issue time.
func Issue(user *models.User, secret []byte) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         user.Role,
		RestaurantID: user.RestaurantID,
		Permissions:  PermissionsFor(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Verify checks signature and expiry and returns the embedded claims.
func Verify(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	// Reject role values outside the closed enum at the boundary
	if _, err := ParseRole(string(claims.Role)); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
