package google

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "nutrisheet/internal/domain/errors"
	"nutrisheet/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, status int, body string) (service.UserInfoResolver, *[]string) {
	t.Helper()

	var auth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = append(auth, r.Header.Get("Authorization"))
		assert.Equal(t, "/oauth2/v2/userinfo", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	resolver, err := NewUserInfoResolver(context.Background(), UserInfoOptions{
		Endpoint:   srv.URL + "/",
		HTTPClient: srv.Client(),
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return resolver, &auth
}

func TestUserInfoResolver_Resolve(t *testing.T) {
	resolver, auth := newTestResolver(t, http.StatusOK,
		`{"id":"1234","email":"ana@example.com","name":"Ana","verified_email":true,"locale":"fr"}`)
	ctx := WithBearerToken(context.Background(), "ya29.token")

	user, err := resolver.Resolve(ctx, NewRequestTokens())

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "1234", user.ID)
	assert.True(t, user.EmailVerified)
	assert.Equal(t, "fr", user.Locale)
	assert.Equal(t, []string{"Bearer ya29.token"}, *auth)
}

func TestUserInfoResolver_Unauthorized(t *testing.T) {
	resolver, _ := newTestResolver(t, http.StatusUnauthorized, `{"error":{"code":401,"message":"Invalid Credentials"}}`)
	tokens := NewRequestTokens()
	ctx := WithBearerToken(context.Background(), "expired")

	_, err := resolver.Resolve(ctx, tokens)

	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
	assert.False(t, tokens.IsAuthenticated(ctx))
}

func TestUserInfoResolver_NoEmail(t *testing.T) {
	resolver, _ := newTestResolver(t, http.StatusOK, `{"id":"1234"}`)
	ctx := WithBearerToken(context.Background(), "tok")

	_, err := resolver.Resolve(ctx, NewRequestTokens())

	assert.Equal(t, domainerrors.KindUnauthenticated, domainerrors.KindOf(err))
}

func TestUserInfoResolver_NoToken(t *testing.T) {
	resolver, auth := newTestResolver(t, http.StatusOK, `{}`)

	_, err := resolver.Resolve(context.Background(), NewRequestTokens())

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	assert.Empty(t, *auth)
}
