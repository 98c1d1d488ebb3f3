package services

import (
	"errors"
	"os"
	"strings"
	"time"

	"frontdesk-backend/models"

	"github.com/dgrijalva/jwt-go"
)

var ErrInvalidToken = errors.New("invalid_token")

type Claims struct {
	UserID uint   `json:"userID"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

func jwtSecret() []byte {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "frontdesk-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken issues a signed JWT carrying the user's id and role.
func GenerateToken(user models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
