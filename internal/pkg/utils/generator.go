package utils

import (
	"cancer-prediction-service/internal/pkg/constvars"
	"crypto/rand"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func GenerateSessionJWT(sessionID, secret string, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.JWTClaimSessionID: sessionID,
		constvars.JWTClaimExpiry:    expiresAt.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GenerateUserID returns a random lowercase base36 identifier of the given length.
func GenerateUserID(length int) (string, error) {
	max := big.NewInt(int64(len(base36Alphabet)))

	id := make([]byte, length)
	for i := range id {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		id[i] = base36Alphabet[num.Int64()]
	}

	return string(id), nil
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}
