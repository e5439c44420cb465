package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/quick4lio/internal/api/services"
	"github.com/rohits-web03/quick4lio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuth(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "ann"}
	valid, _, err := services.IssueToken("secret", user, time.Now())
	require.NoError(t, err)
	forged, _, err := services.IssueToken("other", user, time.Now())
	require.NoError(t, err)

	var seen uuid.UUID
	h := Auth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		method string
		cookie string
		want   int
	}{
		{"no cookie", http.MethodGet, "", http.StatusUnauthorized},
		{"garbage", http.MethodGet, "not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", http.MethodGet, forged, http.StatusUnauthorized},
		{"preflight", http.MethodOptions, "", http.StatusNoContent},
		{"valid", http.MethodGet, valid, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/v1/me", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: TokenCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
	assert.Equal(t, user.ID, seen)
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/health", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
}
