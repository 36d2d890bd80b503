package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"nutrisheet/config"
	"nutrisheet/internal/delivery"
	httpdelivery "nutrisheet/internal/delivery/http"
	"nutrisheet/internal/delivery/http/middleware"
	"nutrisheet/internal/delivery/http/router/handler"
	"nutrisheet/internal/domain/service"
	"nutrisheet/internal/infra/auth/google"
	logs "nutrisheet/internal/infra/log"
	"nutrisheet/internal/infra/persistence/spreadsheet"
	"nutrisheet/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return spreadsheet.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			google.NewRequestTokens,
			newTokenProvider,
			newUserInfoResolver,
		),
	)
}

// newTokenProvider exposes the request-scoped tokens to the adapter.
func newTokenProvider(tokens service.RequestTokenProvider) service.TokenProvider {
	return tokens
}

func newUserInfoResolver(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.UserInfoResolver, error) {
	return google.NewUserInfoResolver(ctx, google.UserInfoOptions{
		Endpoint:   cfg.Auth.UserInfoEndpoint,
		HTTPClient: &http.Client{Timeout: cfg.Sheets.Timeout},
	}, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIngredientService,
			impl.NewRecipeService,
			impl.NewJournalService,
			impl.NewProfileService,
			impl.NewMenuService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			newAuthMiddleware,
		),
	)
}

// newAuthMiddleware runs offline against a local workbook, where there is no
// identity provider.
func newAuthMiddleware(
	cfg *config.Config,
	tokens service.RequestTokenProvider,
	resolver service.UserInfoResolver,
	logger *slog.Logger,
) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(tokens, resolver, cfg.Sheets.Backend == config.BackendXLSX, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIngredientHandler,
			handler.NewRecipeHandler,
			handler.NewJournalHandler,
			handler.NewProfileHandler,
			handler.NewMenuHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				httpdelivery.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
