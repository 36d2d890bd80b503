package spreadsheet

import (
	"context"
	"log/slog"
	"net/http"

	"nutrisheet/config"
	"nutrisheet/internal/domain/service"
	"nutrisheet/internal/infra/persistence/model"
	"nutrisheet/internal/infra/sheets"
	"nutrisheet/internal/infra/sheets/schema"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NewLayouts builds the sheet layouts from configuration. Empty sheet names
// fall back to the workbook template.
func NewLayouts(cfg *config.Config) (*model.Layouts, error) {
	ingredientOwner, err := schema.ParseOwner(cfg.Sheets.Ownership.IngredientDerived)
	if err != nil {
		return nil, errors.Wrap(err, "sheets.ownership.ingredientDerived")
	}
	recipeOwner, err := schema.ParseOwner(cfg.Sheets.Ownership.RecipeTotals)
	if err != nil {
		return nil, errors.Wrap(err, "sheets.ownership.recipeTotals")
	}

	return model.NewLayouts(model.LayoutOptions{
		Names:             sheetNames(cfg.Sheets.Names),
		IngredientDerived: ingredientOwner,
		RecipeTotals:      recipeOwner,
	})
}

func sheetNames(c config.SheetNamesConfig) model.SheetNames {
	names := model.DefaultSheetNames
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&names.Ingredients, c.Ingredients)
	override(&names.Recipes, c.Recipes)
	override(&names.Journal, c.Journal)
	override(&names.Profile, c.Profile)
	override(&names.Menus, c.Menus)

	return names
}

// AdapterParams holds dependencies for the range adapter, injected by Fx.
type AdapterParams struct {
	fx.In

	Ctx     context.Context
	Config  *config.Config
	Layouts *model.Layouts
	Tokens  service.TokenProvider
	Logger  *slog.Logger
}

// NewRangeAdapter picks the backend named by sheets.backend.
func NewRangeAdapter(params AdapterParams) (sheets.RangeAdapter, error) {
	return OpenAdapter(params.Ctx, params.Config.Sheets, params.Layouts, params.Tokens, params.Logger)
}

// OpenAdapter is NewRangeAdapter without the container, for command line
// tools. tokens is ignored by the xlsx backend and may be nil there.
func OpenAdapter(
	ctx context.Context,
	cfg config.SheetsConfig,
	layouts *model.Layouts,
	tokens service.TokenProvider,
	logger *slog.Logger,
) (sheets.RangeAdapter, error) {
	switch cfg.Backend {
	case config.BackendGoogle:
		if tokens == nil {
			return nil, errors.New("token provider is required for google backend")
		}
		logger.Info("Using Google Sheets backend",
			slog.String("spreadsheet_id", cfg.SpreadsheetID),
		)

		return sheets.NewGoogleAdapter(ctx, sheets.GoogleOptions{
			SpreadsheetID: cfg.SpreadsheetID,
			Endpoint:      cfg.Endpoint,
			HTTPClient:    &http.Client{Timeout: cfg.Timeout},
		}, tokens, logger)

	case config.BackendXLSX:
		logger.Info("Using local workbook backend",
			slog.String("path", cfg.WorkbookPath),
		)

		names := make([]string, 0, len(layouts.All()))
		for _, s := range layouts.All() {
			names = append(names, s.Sheet)
		}

		return sheets.NewWorkbookAdapter(cfg.WorkbookPath, names, logger)

	default:
		return nil, errors.Errorf("unknown sheets backend: %s", cfg.Backend)
	}
}

// Module provides the layouts, the adapter and every repository.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewLayouts,
		NewRangeAdapter,
		NewIngredientRepository,
		NewRecipeRepository,
		NewJournalRepository,
		NewProfileRepository,
		NewMenuRepository,
	),
)
