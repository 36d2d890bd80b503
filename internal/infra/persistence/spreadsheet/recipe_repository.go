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

// recipeRepository implements the repository.RecipeRepository interface.
type recipeRepository struct {
	table
	now func() time.Time
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(adapter sheets.RangeAdapter, layouts *model.Layouts, logger *slog.Logger) repository.RecipeRepository {
	return &recipeRepository{
		table: newTable(adapter, layouts.Recipes, logger),
		now:   time.Now,
	}
}

// List returns every recipe with a label.
func (repo *recipeRepository) List(ctx context.Context) ([]*entity.Recipe, error) {
	records, err := repo.readAll(ctx)
	if err != nil {
		return nil, err
	}

	recipes := make([]*entity.Recipe, 0, len(records))
	for _, rec := range records {
		recipes = append(recipes, toRecipeDomain(rec))
	}

	return recipes, nil
}

// FindByNumber returns the recipe with the given number.
func (repo *recipeRepository) FindByNumber(ctx context.Context, number string) (*entity.Recipe, error) {
	recipes, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	number = strings.TrimSpace(number)
	for _, r := range recipes {
		if strings.EqualFold(r.Number, number) {
			return r, nil
		}
	}

	return nil, errors.Wrapf(repository.ErrRecipeNotFound, "number %s", number)
}

// Create appends the recipe with its ingredient slots.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	return repo.append(ctx, fromRecipeDomain(recipe, 0))
}

// Update rewrites the owned header cells and all fifteen ingredient slots.
func (repo *recipeRepository) Update(ctx context.Context, id int, recipe *entity.Recipe) error {
	_, ok, err := repo.readRow(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(repository.ErrRecipeNotFound, "row %d", id)
	}

	if err := repo.writeOwned(ctx, fromRecipeDomain(recipe, id)); err != nil {
		return err
	}
	recipe.ID = id

	return nil
}

// NextNumber scans the number column for the highest R sequence.
func (repo *recipeRepository) NextNumber(ctx context.Context) (string, error) {
	existing, readErr := repo.readColumn(ctx, model.RecipeNumber)

	res := refgen.RecipeNumbers.NextOrFallback(existing, readErr, repo.now())
	if res.Degraded {
		return res.Value, errors.Wrap(domainerrors.ErrGenerationFallback.WithDetails(res.Reason), "recipe number")
	}

	return res.Value, nil
}

func toRecipeDomain(rec schema.Record) *entity.Recipe {
	f := rec.Fields

	recipe := &entity.Recipe{
		ID:           rec.Row,
		Number:       f.Text(model.RecipeNumber),
		Label:        f.Text(model.RecipeLabel),
		Validated:    f.Bool(model.RecipeValidated),
		Portions:     f.Number(model.RecipePortions),
		Instructions: f.Text(model.RecipeInstructions),
		TotalWeight:  f.Number(model.RecipeTotalWeight),
		TotalKcal:    f.Number(model.RecipeTotalKcal),
		TotalPrice:   f.Number(model.RecipeTotalPrice),
		Lines:        make([]entity.RecipeLine, 0, len(rec.Groups)),
	}
	if recipe.Portions <= 0 {
		recipe.Portions = 1
	}

	for _, g := range rec.Groups {
		recipe.Lines = append(recipe.Lines, entity.RecipeLine{
			Reference: g.Text(model.LineReference),
			Name:      g.Text(model.LineName),
			Quantity:  g.Number(model.LineQuantity),
			Unit:      g.Text(model.LineUnit),
			Kcal:      g.Number(model.LineKcal),
			Price:     g.Number(model.LinePrice),
		})
	}

	return recipe
}

func fromRecipeDomain(r *entity.Recipe, row int) schema.Record {
	rec := schema.NewRecord(row)
	rec.Fields = schema.Values{
		model.RecipeNumber:       r.Number,
		model.RecipeLabel:        r.Label,
		model.RecipeValidated:    r.Validated,
		model.RecipePortions:     r.Portions,
		model.RecipeInstructions: r.Instructions,
		model.RecipeTotalWeight:  r.TotalWeight,
		model.RecipeTotalKcal:    r.TotalKcal,
		model.RecipeTotalPrice:   r.TotalPrice,
	}

	for _, line := range r.Lines {
		rec.Groups = append(rec.Groups, schema.Values{
			model.LineReference: line.Reference,
			model.LineName:      line.Name,
			model.LineQuantity:  line.Quantity,
			model.LineUnit:      line.Unit,
			model.LineKcal:      line.Kcal,
			model.LinePrice:     line.Price,
		})
	}

	return rec
}
