package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nutrisheet/internal/domain/entity"
	"nutrisheet/internal/domain/repository"
	"nutrisheet/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// GetProfile returns the stored profile or the defaults for a new user.
func (srv *profileService) GetProfile(ctx context.Context, email string) (*entity.Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, validationError("email is required")
	}

	srv.logger.Debug("Getting profile", slog.String("email", email))

	profile, err := srv.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return srv.defaultProfile(email), nil
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpsertProfile applies the non-nil fields of input and stores the profile.
func (srv *profileService) UpsertProfile(ctx context.Context, email string, input *usecase.ProfileInput) (*entity.Profile, error) {
	if input == nil {
		return nil, validationError("profile is required")
	}

	profile, err := srv.GetProfile(ctx, email)
	if err != nil {
		return nil, err
	}

	if input.DailyKcalTarget != nil {
		if *input.DailyKcalTarget <= 0 {
			return nil, validationError("daily kcal target must be positive")
		}
		profile.DailyKcalTarget = *input.DailyKcalTarget
	}
	if input.StartDate != nil {
		if _, err := parseDate("start_date", *input.StartDate); err != nil {
			return nil, err
		}
		profile.StartDate = strings.TrimSpace(*input.StartDate)
	}
	if input.InitialWeight != nil {
		profile.InitialWeight = positiveOrNil(*input.InitialWeight)
	}
	if input.TargetWeight != nil {
		profile.TargetWeight = positiveOrNil(*input.TargetWeight)
	}

	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to store profile")
	}

	srv.logger.Info("Profile updated", slog.String("email", profile.Email), slog.Int("row", profile.ID))

	return profile, nil
}

func (srv *profileService) defaultProfile(email string) *entity.Profile {
	return &entity.Profile{
		Email:           email,
		DailyKcalTarget: entity.DefaultKcalTarget,
		StartDate:       srv.now().Format(isoDate),
	}
}

// positiveOrNil clears a weight when zero or less is sent.
func positiveOrNil(f float64) *float64 {
	if f <= 0 {
		return nil
	}

	return &f
}
