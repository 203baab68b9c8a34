package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// Session is what the signed token carries: the owner identity plus the
// Google access token used for Classroom calls on their behalf. Keeping the
// access token inside the session avoids any server-side token storage.
type Session struct {
	Email       string
	Name        string
	Picture     string
	GoogleToken string
}

func InitJWT() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET is not set")
	}
	jwtSecret = []byte(secret)
}

func GenerateSession(s Session) (string, error) {
	now := time.Now().Unix()
	claims := jwt.MapClaims{
		"email":        s.Email,
		"name":         s.Name,
		"picture":      s.Picture,
		"google_token": s.GoogleToken,
		"exp":          time.Now().Add(24 * time.Hour).Unix(),
		"iat":          now,
		"nbf":          now,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseSession(tokenString string) (Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return Session{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, errors.New("invalid claims")
	}

	// validate time-based claims
	now := time.Now().Unix()
	if exp, ok := claims["exp"].(float64); ok {
		if int64(exp) < now {
			return Session{}, errors.New("token expired")
		}
	}
	if nbf, ok := claims["nbf"].(float64); ok {
		if int64(nbf) > now {
			return Session{}, errors.New("token not valid yet")
		}
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return Session{}, errors.New("email not found")
	}

	s := Session{Email: email}
	s.Name, _ = claims["name"].(string)
	s.Picture, _ = claims["picture"].(string)
	s.GoogleToken, _ = claims["google_token"].(string)
	return s, nil
}
