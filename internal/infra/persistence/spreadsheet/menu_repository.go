package spreadsheet

import (
	"context"
	"log/slog"

	"nutrisheet/internal/domain/entity"
	"nutrisheet/internal/domain/repository"
	"nutrisheet/internal/infra/persistence/model"
	"nutrisheet/internal/infra/sheets"
)

// menuRepository implements the repository.MenuRepository interface.
type menuRepository struct {
	table
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(adapter sheets.RangeAdapter, layouts *model.Layouts, logger *slog.Logger) repository.MenuRepository {
	return &menuRepository{
		table: newTable(adapter, layouts.Menus, logger),
	}
}

// Get collects the non-empty cells of each list column.
func (repo *menuRepository) Get(ctx context.Context) (*entity.MenuOptions, error) {
	records, err := repo.readAll(ctx)
	if err != nil {
		return nil, err
	}

	opts := &entity.MenuOptions{}
	lists := []struct {
		field string
		dst   *[]string
	}{
		{model.MenuCategories, &opts.Categories},
		{model.MenuSuppliers, &opts.Suppliers},
		{model.MenuUnits, &opts.Units},
		{model.MenuKcalBuckets, &opts.KcalBuckets},
		{model.MenuPriceBuckets, &opts.PriceBuckets},
	}

	for _, rec := range records {
		for _, l := range lists {
			if v := rec.Fields.Text(l.field); v != "" {
				*l.dst = append(*l.dst, v)
			}
		}
	}

	return opts, nil
}
