// Package google provides the identity collaborators backed by Google:
// bearer token providers and the signed-in user lookup.
package google

import (
	"context"
	"os"
	"sync"

	domainerrors "nutrisheet/internal/domain/errors"
	"nutrisheet/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

// SpreadsheetScopes are requested when credentials are loaded from a file.
var SpreadsheetScopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/userinfo.email",
}

// requestToken is the token presented by one HTTP caller.
type requestToken struct {
	mu      sync.Mutex
	value   string
	expired bool
}

type requestTokenKey struct{}

// WithBearerToken attaches the caller's access token to ctx.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, requestTokenKey{}, &requestToken{value: token})
}

func tokenFrom(ctx context.Context) *requestToken {
	tok, _ := ctx.Value(requestTokenKey{}).(*requestToken)

	return tok
}

// RequestTokens serves the token attached by WithBearerToken. The server
// never stores tokens: each request brings its own.
type RequestTokens struct{}

// NewRequestTokens creates the request-scoped provider.
func NewRequestTokens() service.RequestTokenProvider {
	return RequestTokens{}
}

func (RequestTokens) WithToken(ctx context.Context, token string) context.Context {
	return WithBearerToken(ctx, token)
}

func (RequestTokens) BearerToken(ctx context.Context) (string, error) {
	tok := tokenFrom(ctx)
	if tok == nil {
		return "", errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	tok.mu.Lock()
	defer tok.mu.Unlock()

	if tok.expired {
		return "", errors.WithStack(domainerrors.ErrSessionExpired)
	}
	if tok.value == "" {
		return "", errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return tok.value, nil
}

func (RequestTokens) IsAuthenticated(ctx context.Context) bool {
	tok := tokenFrom(ctx)
	if tok == nil {
		return false
	}

	tok.mu.Lock()
	defer tok.mu.Unlock()

	return tok.value != "" && !tok.expired
}

// SignOut marks the request token as rejected for the rest of the request.
func (RequestTokens) SignOut(ctx context.Context) {
	if tok := tokenFrom(ctx); tok != nil {
		tok.mu.Lock()
		tok.expired = true
		tok.mu.Unlock()
	}
}

// SourceTokens adapts an oauth2.TokenSource, refreshing as the source sees
// fit. Once signed out it stays signed out.
type SourceTokens struct {
	mu        sync.Mutex
	src       oauth2.TokenSource
	signedOut bool
}

// NewSourceTokens wraps src in a caching source.
func NewSourceTokens(src oauth2.TokenSource) *SourceTokens {
	return &SourceTokens{src: oauth2.ReuseTokenSource(nil, src)}
}

// NewStaticTokens serves a fixed access token, e.g. one minted by gcloud.
func NewStaticTokens(accessToken string) *SourceTokens {
	return NewSourceTokens(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}))
}

// NewCredentialsFileTokens loads a service account or authorized user JSON
// file and requests scopes.
func NewCredentialsFileTokens(ctx context.Context, path string, scopes ...string) (*SourceTokens, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read credentials file %s", path)
	}

	if len(scopes) == 0 {
		scopes = SpreadsheetScopes
	}

	creds, err := googleoauth.CredentialsFromJSON(ctx, data, scopes...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse credentials")
	}

	return NewSourceTokens(creds.TokenSource), nil
}

func (s *SourceTokens) BearerToken(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.signedOut {
		return "", errors.WithStack(domainerrors.ErrSessionExpired)
	}

	tok, err := s.src.Token()
	if err != nil {
		return "", domainerrors.NewRemoteCallError(domainerrors.ErrUnauthenticated, err, "token source")
	}

	return tok.AccessToken, nil
}

func (s *SourceTokens) IsAuthenticated(context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.signedOut
}

func (s *SourceTokens) SignOut(context.Context) {
	s.mu.Lock()
	s.signedOut = true
	s.mu.Unlock()
}
