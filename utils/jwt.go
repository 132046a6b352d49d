package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// JWTSecret lazily reads JWT_SECRET_KEY so godotenv has a chance to
// run first. The fallback secret only exists for local development.
func JWTSecret() []byte {
	if jwtSecret == nil {
		secret := os.Getenv("JWT_SECRET_KEY")
		if secret == "" {
			ErrorLogger.Println("Warning: JWT_SECRET_KEY not set, using development secret")
			secret = "HjortDevSecretKey"
		}
		jwtSecret = []byte(secret)
	}
	return jwtSecret
}

type AdminClaims struct {
	ID uint `json:"id"`
	jwt.RegisteredClaims
}

// GenerateToken mints an HS256 token carrying the admin user's id,
// valid for one hour.
func GenerateToken(adminID uint) (string, error) {
	claims := &AdminClaims{
		ID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret())
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
