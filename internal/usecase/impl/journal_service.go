package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"nutrisheet/internal/domain/entity"
	"nutrisheet/internal/domain/repository"
	"nutrisheet/internal/usecase"

	"github.com/pkg/errors"
)

// journalService implements the JournalUsecase interface.
type journalService struct {
	journalRepo    repository.JournalRepository
	ingredientRepo repository.IngredientRepository
	recipeRepo     repository.RecipeRepository
	logger         *slog.Logger
	now            func() time.Time
}

// NewJournalService is the constructor for journalService.
func NewJournalService(
	journalRepo repository.JournalRepository,
	ingredientRepo repository.IngredientRepository,
	recipeRepo repository.RecipeRepository,
	logger *slog.Logger,
) usecase.JournalUsecase {
	return &journalService{
		journalRepo:    journalRepo,
		ingredientRepo: ingredientRepo,
		recipeRepo:     recipeRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// ListJournal returns the entries between the optional bounds.
func (srv *journalService) ListJournal(ctx context.Context, start, end *string) ([]*entity.JournalEntry, error) {
	var from, to time.Time
	var err error
	if start != nil {
		if from, err = parseDate("start", *start); err != nil {
			return nil, err
		}
	}
	if end != nil {
		if to, err = parseDate("end", *end); err != nil {
			return nil, err
		}
	}
	if start != nil && end != nil && to.Before(from) {
		return nil, validationError("end %s is before start %s", *end, *start)
	}

	entries, err := srv.journalRepo.List(ctx, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list journal")
	}

	return entries, nil
}

// AddJournalEntry fills the defaults, estimates kcal when none is given and
// appends the entry.
func (srv *journalService) AddJournalEntry(ctx context.Context, input *usecase.JournalEntryInput) (*entity.JournalEntry, error) {
	if input == nil {
		return nil, validationError("entry is required")
	}

	entry := &entity.JournalEntry{
		Date:      strings.TrimSpace(input.Date),
		Meal:      strings.TrimSpace(input.Meal),
		Reference: strings.TrimSpace(input.Reference),
		Quantity:  input.Quantity,
		Kcal:      input.Kcal,
		Note:      strings.TrimSpace(input.Note),
	}

	if entry.Date == "" {
		entry.Date = srv.now().Format(isoDate)
	} else if _, err := parseDate("date", entry.Date); err != nil {
		return nil, err
	}

	kind, ok := entity.ParseEntryKind(string(input.Kind))
	if !ok {
		return nil, validationError("unknown entry kind %q", input.Kind)
	}
	entry.Kind = kind

	if err := srv.completeEntry(ctx, entry, input.Unit); err != nil {
		return nil, err
	}

	if err := srv.journalRepo.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to add journal entry")
	}

	srv.logger.Info("Journal entry added",
		slog.String("date", entry.Date),
		slog.String("meal", entry.Meal),
		slog.Float64("kcal", entry.Kcal),
	)

	return entry, nil
}

func (srv *journalService) completeEntry(ctx context.Context, entry *entity.JournalEntry, unit string) error {
	if entry.Kcal < 0 || entry.Quantity < 0 {
		return validationError("quantity and kcal cannot be negative")
	}

	switch entry.Kind {
	case entity.EntryNote:
		if entry.Note == "" {
			return validationError("note is required")
		}

		return nil
	case entity.EntryManual:
		if entry.Reference == "" {
			return validationError("a manual entry needs a label")
		}
		if entry.Kcal <= 0 {
			return validationError("a manual entry needs its kcal")
		}
		if entry.Quantity == 0 {
			entry.Quantity = 1
		}
	case entity.EntryIngredient, entity.EntryRecipe:
		if entry.Reference == "" {
			return validationError("reference is required")
		}
		if entry.Quantity <= 0 {
			return validationError("quantity must be positive")
		}
		if entry.Kcal == 0 {
			kcal, err := srv.estimateKcal(ctx, entry, unit)
			if err != nil {
				return err
			}
			entry.Kcal = kcal
		}
	}

	if entry.Meal == "" {
		return validationError("meal is required")
	}
	if _, ok := entity.ClassifyMeal(entry.Meal); !ok {
		srv.logger.Debug("Meal outside the tracked slots", slog.String("meal", entry.Meal))
	}

	return nil
}

// estimateKcal derives the energy of an entry from the referenced
// ingredient (per gram) or recipe (per portion), rounded to whole kcal.
func (srv *journalService) estimateKcal(ctx context.Context, entry *entity.JournalEntry, unit string) (float64, error) {
	if entry.Kind == entity.EntryRecipe {
		recipe, err := srv.recipeRepo.FindByNumber(ctx, entry.Reference)
		if err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				return 0, validationError("unknown recipe %q", entry.Reference)
			}

			return 0, errors.Wrap(err, "failed to look up recipe")
		}

		return math.Round(recipe.KcalPerPortion() * entry.Quantity), nil
	}

	ing, err := srv.ingredientRepo.FindByReference(ctx, entry.Reference)
	if err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return 0, validationError("unknown ingredient %q", entry.Reference)
		}

		return 0, errors.Wrap(err, "failed to look up ingredient")
	}

	return math.Round(ing.KcalFor(entry.Quantity, unit)), nil
}

// DeleteJournalEntry blanks an entry row.
func (srv *journalService) DeleteJournalEntry(ctx context.Context, id int) error {
	if err := srv.journalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJournalEntryNotFound) || errors.Is(err, repository.ErrRowOutOfRange) {
			return notFound(err, "journal entry %d", id)
		}

		return errors.Wrap(err, "failed to delete journal entry")
	}

	srv.logger.Info("Journal entry deleted", slog.Int("row", id))

	return nil
}

// DayTotals sums one day.
func (srv *journalService) DayTotals(ctx context.Context, date string) (*entity.DayTotals, error) {
	week, err := srv.totals(ctx, date, 1)
	if err != nil {
		return nil, err
	}

	return week[0], nil
}

// WeekTotals sums seven days from start with a single read.
func (srv *journalService) WeekTotals(ctx context.Context, start string) ([]*entity.DayTotals, error) {
	return srv.totals(ctx, start, 7)
}

func (srv *journalService) totals(ctx context.Context, start string, days int) ([]*entity.DayTotals, error) {
	first, err := parseDate("date", start)
	if err != nil {
		return nil, err
	}

	from := first.Format(isoDate)
	to := first.AddDate(0, 0, days-1).Format(isoDate)

	entries, err := srv.journalRepo.List(ctx, &from, &to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read journal for totals")
	}

	result := make([]*entity.DayTotals, days)
	byDate := make(map[string]*entity.DayTotals, days)
	for i := range days {
		d := first.AddDate(0, 0, i).Format(isoDate)
		result[i] = &entity.DayTotals{Date: d}
		byDate[d] = result[i]
	}

	for _, e := range entries {
		if t, ok := byDate[e.Date]; ok {
			t.Add(e)
		}
	}

	return result, nil
}
