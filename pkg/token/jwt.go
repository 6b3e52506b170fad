package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the identity and role of an authenticated user.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

// JWT issues and validates bearer tokens backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
}

func NewJWT(secretKey string, expiryHours int) *JWT {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &JWT{
		secretKey: secretKey,
		ttl:       time.Duration(expiryHours) * time.Hour,
	}
}

// Generate creates a signed, time-limited token embedding identity and role.
func (j *JWT) Generate(userID uuid.UUID, email, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(j.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Parse validates signature and expiry and extracts the claims. Any
// malformed, expired, or wrongly signed token is rejected.
func (j *JWT) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("token has no subject")
	}

	return claims, nil
}
