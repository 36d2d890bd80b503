package usecase

import (
	"context"

	"nutrisheet/internal/domain/entity"
)

// MenuUsecase exposes the drop-down lists used by input forms.
type MenuUsecase interface {
	GetMenuOptions(ctx context.Context) (*entity.MenuOptions, error)
}
