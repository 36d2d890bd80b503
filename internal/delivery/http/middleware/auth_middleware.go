package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "nutrisheet/internal/delivery/context"
	"nutrisheet/internal/delivery/http/response"
	domainerrors "nutrisheet/internal/domain/errors"
	"nutrisheet/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderUserEmail names the signed-in user when the server runs against a
// local workbook and no identity provider is involved.
const HeaderUserEmail = "X-User-Email"

// AuthMiddleware carries the caller's Google access token down to the
// spreadsheet adapter and resolves the caller's email when a route needs it.
type AuthMiddleware struct {
	tokens   service.RequestTokenProvider
	resolver service.UserInfoResolver
	offline  bool
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware. In offline mode
// the bearer token is optional and the email comes from HeaderUserEmail.
func NewAuthMiddleware(tokens service.RequestTokenProvider, resolver service.UserInfoResolver, offline bool, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, resolver: resolver, offline: offline, logger: logger}
}

// Authenticate requires a bearer token and attaches it to the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			if m.offline {
				return next(c)
			}

			return response.HandleAppError(c, errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails("missing bearer token")))
		}

		ctx := m.tokens.WithToken(c.Request().Context(), token)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireUser resolves the signed-in user's email. It must be used after
// Authenticate.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.offline {
			email := strings.TrimSpace(c.Request().Header.Get(HeaderUserEmail))
			if email == "" {
				return response.HandleAppError(c, errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails("missing "+HeaderUserEmail+" header")))
			}
			deliverycontext.SetUserEmail(c, email)

			return next(c)
		}

		ctx := c.Request().Context()
		user, err := m.resolver.Resolve(ctx, m.tokens)
		if err != nil {
			deliverycontext.LoggerOrDefault(ctx, m.logger).Warn("Failed to resolve signed-in user", slog.Any("error", err))

			return response.HandleAppError(c, err)
		}

		deliverycontext.SetUserEmail(c, user.Email)

		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
