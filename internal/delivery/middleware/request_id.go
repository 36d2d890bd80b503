package middleware

import (
	"log/slog"

	deliverycontext "nutrisheet/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied request IDs.
const maxRequestIDLength = 64

// RequestIDMiddleware generates or extracts a unique Request ID for each request and creates a request-scoped logger
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id when it is reasonable, otherwise
// generates one, and stores it with a child logger on the request.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = deliverycontext.NewRequestID()
		}

		deliverycontext.BindRequestID(c, requestID, m.logger)

		return next(c)
	}
}
