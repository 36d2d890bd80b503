package impl

import (
	"context"
	"log/slog"

	"nutrisheet/internal/domain/entity"
	"nutrisheet/internal/domain/repository"
	"nutrisheet/internal/usecase"

	"github.com/pkg/errors"
)

type menuService struct {
	menuRepo repository.MenuRepository
	logger   *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(menuRepo repository.MenuRepository, logger *slog.Logger) usecase.MenuUsecase {
	return &menuService{menuRepo: menuRepo, logger: logger}
}

func (srv *menuService) GetMenuOptions(ctx context.Context) (*entity.MenuOptions, error) {
	opts, err := srv.menuRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read menu options")
	}

	return opts, nil
}
