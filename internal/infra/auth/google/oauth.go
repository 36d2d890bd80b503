package google

import (
	"context"
	"log/slog"
	"net/http"

	domainerrors "nutrisheet/internal/domain/errors"
	"nutrisheet/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// UserInfoOptions configures the userinfo client.
type UserInfoOptions struct {
	// Endpoint overrides the API base URL (tests).
	Endpoint   string
	HTTPClient *http.Client
}

// userInfoResolver looks up the signed-in user with the OAuth2 v2 API.
type userInfoResolver struct {
	svc    *goauth2.Service
	logger *slog.Logger
}

// NewUserInfoResolver creates the resolver. Like the spreadsheet adapter, the
// token is set per call and never bound to the client.
func NewUserInfoResolver(ctx context.Context, opts UserInfoOptions, logger *slog.Logger) (service.UserInfoResolver, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	clientOpts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}

	svc, err := goauth2.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create oauth2 service")
	}

	return &userInfoResolver{svc: svc, logger: logger}, nil
}

// Resolve returns the user behind the current token.
func (r *userInfoResolver) Resolve(ctx context.Context, tokens service.TokenProvider) (*service.OAuthUser, error) {
	token, err := tokens.BearerToken(ctx)
	if err != nil {
		return nil, err
	}

	call := r.svc.Userinfo.Get().Context(ctx)
	call.Header().Set("Authorization", "Bearer "+token)

	info, err := call.Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
			tokens.SignOut(ctx)

			return nil, domainerrors.NewRemoteCallError(domainerrors.ErrSessionExpired, err, "userinfo")
		}

		r.logger.Error("Userinfo call failed", slog.Any("error", err))

		return nil, domainerrors.NewRemoteCallError(domainerrors.ErrRemoteUnavailable, err, "userinfo")
	}

	if info.Email == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails("token carries no email scope"))
	}

	user := &service.OAuthUser{
		ID:     info.Id,
		Email:  info.Email,
		Name:   info.Name,
		Locale: info.Locale,
	}
	if info.VerifiedEmail != nil {
		user.EmailVerified = *info.VerifiedEmail
	}

	r.logger.Debug("Resolved signed-in user", slog.String("email", user.Email))

	return user, nil
}
