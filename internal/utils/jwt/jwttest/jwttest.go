// Package jwttest выпускает токены операторов для тестов.
// В рабочем коде токены выпускает сервис аутентификации.
package jwttest

import (
	"fmt"
	"time"

	"github.com/avc/payout-console/internal/utils/jwt"
	gojwt "github.com/golang-jwt/jwt/v5"
)

// Sign подписывает токен оператора секретом HS256
func Sign(secretKey, operatorID, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.Claims{
		Name: name,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   operatorID,
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  gojwt.NewNumericDate(now),
		},
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}
