package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "waffer/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const sessionRoutePrefix = "/api/v1/sessions/:id"

// RequestIDMiddleware assigns every request an id and a request-scoped logger.
// Requests on a map session route also carry the session id in both.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process must run after routing so session route params are resolved.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := deliverycontext.NormalizeRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		reqLogger := m.logger.With(slog.String("request_id", requestID))

		if sessionID := sessionParam(c); sessionID != "" {
			ctx = deliverycontext.WithSessionID(ctx, sessionID)
			reqLogger = reqLogger.With(slog.String("session_id", sessionID))
		}

		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func sessionParam(c echo.Context) string {
	if !strings.HasPrefix(c.Path(), sessionRoutePrefix) {
		return ""
	}

	return c.Param("id")
}
