package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"waffer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotEmpty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}

func TestLogger(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestIdentity(t *testing.T) {
	identity := &entity.Identity{Email: "amel@example.com"}

	assert.Nil(t, GetIdentity(context.Background()))
	assert.Same(t, identity, GetIdentity(WithIdentity(context.Background(), identity)))
}

func TestNormalizeRequestID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		keep bool
	}{
		{name: "empty", in: "", keep: false},
		{name: "client id", in: "req-abc_123", keep: true},
		{name: "newline injection", in: "req\nlevel=ERROR", keep: false},
		{name: "space", in: "req 1", keep: false},
		{name: "too long", in: strings.Repeat("a", 129), keep: false},
		{name: "max length", in: strings.Repeat("a", 128), keep: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRequestID(tt.in)
			if tt.keep {
				assert.Equal(t, tt.in, got)

				return
			}
			assert.NotEqual(t, tt.in, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestSessionID(t *testing.T) {
	assert.Empty(t, GetSessionID(context.Background()))
	assert.Equal(t, "s-1", GetSessionID(WithSessionID(context.Background(), "s-1")))
}
