package google

import (
	"context"
	"testing"

	domainerrors "nutrisheet/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestRequestTokens(t *testing.T) {
	tokens := NewRequestTokens()

	t.Run("no token on context", func(t *testing.T) {
		ctx := context.Background()

		assert.False(t, tokens.IsAuthenticated(ctx))
		_, err := tokens.BearerToken(ctx)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("token then sign out", func(t *testing.T) {
		ctx := WithBearerToken(context.Background(), "ya29.token")

		require.True(t, tokens.IsAuthenticated(ctx))
		tok, err := tokens.BearerToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ya29.token", tok)

		tokens.SignOut(ctx)

		assert.False(t, tokens.IsAuthenticated(ctx))
		_, err = tokens.BearerToken(ctx)
		assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
	})

	t.Run("sign out is scoped to the request", func(t *testing.T) {
		first := WithBearerToken(context.Background(), "a")
		second := WithBearerToken(context.Background(), "b")

		tokens.SignOut(first)

		assert.False(t, tokens.IsAuthenticated(first))
		assert.True(t, tokens.IsAuthenticated(second))
	})
}

type countingSource struct {
	calls int
}

func (c *countingSource) Token() (*oauth2.Token, error) {
	c.calls++

	return &oauth2.Token{AccessToken: "rotated", TokenType: "Bearer"}, nil
}

func TestSourceTokens(t *testing.T) {
	ctx := context.Background()
	src := &countingSource{}
	tokens := NewSourceTokens(src)

	tok, err := tokens.BearerToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rotated", tok)

	// A token without expiry stays valid, so the source is asked once.
	_, err = tokens.BearerToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)

	tokens.SignOut(ctx)
	assert.False(t, tokens.IsAuthenticated(ctx))
	_, err = tokens.BearerToken(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestStaticTokens(t *testing.T) {
	tok, err := NewStaticTokens("fixed").BearerToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "fixed", tok)
}

func TestNewCredentialsFileTokens_MissingFile(t *testing.T) {
	_, err := NewCredentialsFileTokens(context.Background(), "/nonexistent/credentials.json")

	assert.ErrorContains(t, err, "failed to read credentials file")
}
