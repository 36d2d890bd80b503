package spreadsheet

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nutrisheet/internal/domain/entity"
	domainerrors "nutrisheet/internal/domain/errors"
	"nutrisheet/internal/domain/repository"
	"nutrisheet/internal/infra/persistence/model"
	"nutrisheet/internal/infra/sheets"
	"nutrisheet/internal/infra/sheets/refgen"
	"nutrisheet/internal/infra/sheets/schema"

	"github.com/pkg/errors"
)

// ingredientRepository implements the repository.IngredientRepository interface.
type ingredientRepository struct {
	table
	now func() time.Time
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(adapter sheets.RangeAdapter, layouts *model.Layouts, logger *slog.Logger) repository.IngredientRepository {
	return &ingredientRepository{
		table: newTable(adapter, layouts.Ingredients, logger),
		now:   time.Now,
	}
}

// List returns every ingredient with a label.
func (repo *ingredientRepository) List(ctx context.Context) ([]*entity.Ingredient, error) {
	records, err := repo.readAll(ctx)
	if err != nil {
		return nil, err
	}

	ingredients := make([]*entity.Ingredient, 0, len(records))
	for _, rec := range records {
		ingredients = append(ingredients, toIngredientDomain(rec))
	}

	return ingredients, nil
}

// FindByReference returns the first ingredient whose reference matches.
func (repo *ingredientRepository) FindByReference(ctx context.Context, reference string) (*entity.Ingredient, error) {
	ingredients, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	reference = strings.TrimSpace(reference)
	for _, ing := range ingredients {
		if strings.EqualFold(ing.Reference, reference) {
			return ing, nil
		}
	}

	return nil, errors.Wrapf(repository.ErrIngredientNotFound, "reference %s", reference)
}

// Create appends the ingredient. Formula-owned columns are left blank for
// the sheet to fill in.
func (repo *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	return repo.append(ctx, fromIngredientDomain(ingredient, 0))
}

// Update rewrites the owned cells of an existing ingredient row.
func (repo *ingredientRepository) Update(ctx context.Context, id int, ingredient *entity.Ingredient) error {
	_, ok, err := repo.readRow(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(repository.ErrIngredientNotFound, "row %d", id)
	}

	if err := repo.writeOwned(ctx, fromIngredientDomain(ingredient, id)); err != nil {
		return err
	}
	ingredient.ID = id

	return nil
}

// NextReference scans the reference column for the highest sequence.
func (repo *ingredientRepository) NextReference(ctx context.Context) (string, error) {
	existing, readErr := repo.readColumn(ctx, model.IngredientReference)

	res := refgen.IngredientReferences.NextOrFallback(existing, readErr, repo.now())
	if res.Degraded {
		return res.Value, errors.Wrap(domainerrors.ErrGenerationFallback.WithDetails(res.Reason), "ingredient reference")
	}

	return res.Value, nil
}

func toIngredientDomain(rec schema.Record) *entity.Ingredient {
	f := rec.Fields

	return &entity.Ingredient{
		ID:            rec.Row,
		Category:      f.Text(model.IngredientCategory),
		Reference:     f.Text(model.IngredientReference),
		Label:         f.Text(model.IngredientLabel),
		Notes:         f.Text(model.IngredientNotes),
		Supplier:      f.Text(model.IngredientSupplier),
		Packaging:     f.Text(model.IngredientPackaging),
		Unit:          f.Text(model.IngredientUnit),
		WeightPerUnit: f.Number(model.IngredientWeightPerUnit),
		UnitPrice:     f.Number(model.IngredientUnitPrice),
		Kcal100g:      f.Number(model.IngredientKcal100g),
		PricePerUnit:  f.Number(model.IngredientPricePerUnit),
		KcalPerUnit:   f.Number(model.IngredientKcalPerUnit),
		PricePerKcal:  f.Number(model.IngredientPricePerKcal),
	}
}

func fromIngredientDomain(ing *entity.Ingredient, row int) schema.Record {
	rec := schema.NewRecord(row)
	rec.Fields = schema.Values{
		model.IngredientCategory:      ing.Category,
		model.IngredientReference:     ing.Reference,
		model.IngredientLabel:         ing.Label,
		model.IngredientNotes:         ing.Notes,
		model.IngredientSupplier:      ing.Supplier,
		model.IngredientPackaging:     ing.Packaging,
		model.IngredientUnit:          ing.Unit,
		model.IngredientWeightPerUnit: ing.WeightPerUnit,
		model.IngredientUnitPrice:     ing.UnitPrice,
		model.IngredientKcal100g:      ing.Kcal100g,
		model.IngredientPricePerUnit:  ing.PricePerUnit,
		model.IngredientKcalPerUnit:   ing.KcalPerUnit,
		model.IngredientPricePerKcal:  ing.PricePerKcal,
	}

	return rec
}
