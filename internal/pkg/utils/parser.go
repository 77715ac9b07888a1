package utils

import (
	"cancer-prediction-service/internal/pkg/constvars"
	"errors"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

func ParseJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims[constvars.JWTClaimSessionID].(string); ok {
			return sessionID, nil
		}
	}

	return "", errors.New("invalid token")
}

// ParseAge returns the age as a positive integer, or 0 when the input is
// empty, not a number, or not positive.
func ParseAge(input string) int {
	age, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || age <= 0 {
		return 0
	}
	return age
}

func ParseBearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
