package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"time"

	"nutrisheet/config"
	"nutrisheet/internal/domain/service"
	"nutrisheet/internal/infra/auth/google"
	logs "nutrisheet/internal/infra/log"
	"nutrisheet/internal/infra/persistence/model"
	"nutrisheet/internal/infra/persistence/spreadsheet"
	"nutrisheet/internal/infra/sheets"
	"nutrisheet/internal/infra/snapshot"
	"nutrisheet/internal/usecase"
	"nutrisheet/internal/usecase/impl"

	"github.com/pkg/errors"
)

// app is the command line counterpart of the fx graph in cmd/nutrisheet.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	out       io.Writer
	adapter   sheets.RangeAdapter
	layouts   *model.Layouts
	ingredUC  usecase.IngredientUsecase
	journalUC usecase.JournalUsecase
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	layouts, err := spreadsheet.NewLayouts(cfg)
	if err != nil {
		return nil, err
	}

	tokens, err := cliTokens(ctx, cfg.Sheets)
	if err != nil {
		return nil, err
	}

	adapter, err := spreadsheet.OpenAdapter(ctx, cfg.Sheets, layouts, tokens, logger)
	if err != nil {
		return nil, err
	}

	ingredientRepo := spreadsheet.NewIngredientRepository(adapter, layouts, logger)
	recipeRepo := spreadsheet.NewRecipeRepository(adapter, layouts, logger)
	journalRepo := spreadsheet.NewJournalRepository(adapter, layouts, logger)
	menuRepo := spreadsheet.NewMenuRepository(adapter, layouts, logger)

	return &app{
		cfg:       cfg,
		logger:    logger,
		out:       os.Stdout,
		adapter:   adapter,
		layouts:   layouts,
		ingredUC:  impl.NewIngredientService(ingredientRepo, menuRepo, logger),
		journalUC: impl.NewJournalService(journalRepo, ingredientRepo, recipeRepo, logger),
	}, nil
}

// cliTokens prefers a credentials file over a raw access token. The xlsx
// backend needs neither.
func cliTokens(ctx context.Context, cfg config.SheetsConfig) (service.TokenProvider, error) {
	if cfg.Backend != config.BackendGoogle {
		return nil, nil
	}

	switch {
	case cfg.CredentialsFile != "":
		return google.NewCredentialsFileTokens(ctx, cfg.CredentialsFile)
	case cfg.AccessToken != "":
		return google.NewStaticTokens(cfg.AccessToken), nil
	default:
		return nil, errors.New("sheets.credentialsFile or sheets.accessToken is required for the google backend")
	}
}

func runTotals(ctx context.Context, a *app, date string, week bool) error {
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	}

	if week {
		totals, err := a.journalUC.WeekTotals(ctx, date)
		if err != nil {
			return err
		}

		return a.print(totals)
	}

	totals, err := a.journalUC.DayTotals(ctx, date)
	if err != nil {
		return err
	}

	return a.print(totals)
}

func runSearch(ctx context.Context, a *app, query string) error {
	ingredients, err := a.ingredUC.SearchIngredients(ctx, query)
	if err != nil {
		return err
	}

	a.logger.Debug("Search done", slog.String("query", query), slog.Int("matches", len(ingredients)))

	return a.print(ingredients)
}

func runExport(ctx context.Context, a *app) error {
	exporter, err := snapshot.Open(ctx, a.cfg.Snapshot, a.adapter, a.layouts, a.logger)
	if err != nil {
		return err
	}
	defer exporter.Close()

	res, err := exporter.Export(ctx)
	if err != nil {
		return err
	}

	return a.print(res)
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
