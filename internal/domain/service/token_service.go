package service

import (
	"context"
)

// TokenProvider is the bridge to the external identity provider. The
// spreadsheet adapter asks it for a bearer token right before every call,
// because the provider may rotate tokens at any time.
type TokenProvider interface {
	// BearerToken returns the current access token, or an Unauthenticated
	// error when no user is signed in.
	BearerToken(ctx context.Context) (string, error)

	// IsAuthenticated reports whether a token is currently available.
	IsAuthenticated(ctx context.Context) bool

	// SignOut drops the current token after the service rejected it, so the
	// next call asks for authorization again.
	SignOut(ctx context.Context)
}

// RequestTokenProvider is a TokenProvider fed by each inbound request.
type RequestTokenProvider interface {
	TokenProvider

	// WithToken attaches the caller's access token to ctx.
	WithToken(ctx context.Context, token string) context.Context
}
