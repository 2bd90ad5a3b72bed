package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingOperator возвращается для токена без идентификатора оператора
var ErrMissingOperator = errors.New("token has no operator id")

// Claims представляет JWT claims оператора.
// Идентификатор оператора хранится в поле sub.
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Manager проверяет токены операторов.
// Токены выпускает внешний сервис аутентификации, консоль их только проверяет.
type Manager struct {
	secretKey string
}

// NewManager создает новый JWT manager
func NewManager(secretKey string) *Manager {
	return &Manager{secretKey: secretKey}
}

// Validate валидирует токен и возвращает идентификатор оператора
func (m *Manager) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем метод подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	if claims.Subject == "" {
		return "", ErrMissingOperator
	}

	return claims.Subject, nil
}
