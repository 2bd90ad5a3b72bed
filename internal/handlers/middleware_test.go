package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/payout-console/internal/utils/jwt"
	"github.com/avc/payout-console/internal/utils/jwt/jwttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	middleware := RequestIDMiddleware()

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем, что request ID добавлен в контекст
		requestID, ok := r.Context().Value(RequestIDKey).(string)
		assert.True(t, ok)
		assert.NotEmpty(t, requestID)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestLoggingMiddleware(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	middleware := LoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	middleware := RecoveryMiddleware(logger)

	t.Run("No panic", func(t *testing.T) {
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("With panic", func(t *testing.T) {
		handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("test panic")
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		// Не должно паниковать
		assert.NotPanics(t, func() {
			handler.ServeHTTP(w, req)
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	incoming := "3f1c2b9e-8d4a-4c6e-9b1a-2f6d7e8c9a0b"
	handler := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(RequestIDKey).(string)
		assert.Equal(t, incoming, requestID)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", incoming)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get("X-Request-ID"))

	// Произвольная строка заменяется новым идентификатором
	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "<script>")
	w = httptest.NewRecorder()

	RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Header().Get("X-Request-ID"))
}

func TestAuthMiddleware(t *testing.T) {
	manager := jwt.NewManager("secret")
	token, err := jwttest.Sign("secret", "op-1", "Alice", time.Hour)
	require.NoError(t, err)

	handler := AuthMiddleware(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operatorID, ok := GetOperatorID(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "op-1", operatorID)
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "Valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "Missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "Invalid token", header: "Bearer invalid", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/payouts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGetOperatorID(t *testing.T) {
	t.Run("Operator present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), OperatorIDKey, "op-1")

		operatorID, ok := GetOperatorID(ctx)
		assert.True(t, ok)
		assert.Equal(t, "op-1", operatorID)
	})

	t.Run("Operator not present", func(t *testing.T) {
		_, ok := GetOperatorID(context.Background())
		assert.False(t, ok)
	})

	t.Run("Empty operator", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), OperatorIDKey, "")

		_, ok := GetOperatorID(ctx)
		assert.False(t, ok)
	})
}

func TestSessionID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/payouts", nil)
	req = req.WithContext(context.WithValue(req.Context(), OperatorIDKey, "op-1"))
	assert.Empty(t, sessionID(req))

	req.Header.Set(ConsoleSessionHeader, "tab-2")
	assert.Equal(t, "op-1:tab-2", sessionID(req))
}
