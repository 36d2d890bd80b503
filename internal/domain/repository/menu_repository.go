package repository

import (
	"context"

	"nutrisheet/internal/domain/entity"
)

// MenuRepository reads the drop-down lists of the menus sheet.
type MenuRepository interface {
	Get(ctx context.Context) (*entity.MenuOptions, error)
}
