package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
)

const tokenTTL = 24 * time.Hour

type Claims struct {
	UserID uint
	Role   string
}

// Tokens issues and verifies the HS256 bearer tokens used by the API.
type Tokens struct {
	secret []byte
	now    func() time.Time
}

func NewTokens(secret string) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (t *Tokens) Issue(userID uint, role string) (string, error) {
	now := t.now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *Tokens) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !token.Valid {
		return nil, httperr.ErrUnauthenticated("invalid_token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, httperr.ErrUnauthenticated("invalid_token")
	}

	userID, ok1 := claims["sub"].(float64)
	role, ok2 := claims["role"].(string)
	if !ok1 || !ok2 || userID <= 0 {
		return nil, httperr.ErrUnauthenticated("invalid_token")
	}

	return &Claims{UserID: uint(userID), Role: role}, nil
}
