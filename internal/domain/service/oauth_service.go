package service

import (
	"context"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string // User's email address
	Name          string // User's display name
	EmailVerified bool   // Whether the email is verified by the provider
	Locale        string // User's locale/language preference
}

// UserInfoResolver looks up the signed-in user behind an access token.
// Profiles are keyed by the returned email.
type UserInfoResolver interface {
	Resolve(ctx context.Context, tokens TokenProvider) (*OAuthUser, error)
}
