package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"jardin/entities"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("auth: invalid token")

type Claims struct {
	UserID    string
	Role      entities.Role
	CanManage bool
}

func IssueToken(secret string, u *entities.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        u.ID,
		"role":       string(u.Role),
		"can_manage": u.CanManage(),
		"exp":        time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, raw string) (*Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	canManage, _ := claims["can_manage"].(bool)
	return &Claims{UserID: sub, Role: entities.Role(role), CanManage: canManage}, nil
}
