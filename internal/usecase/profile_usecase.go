package usecase

import (
	"context"

	"nutrisheet/internal/domain/entity"
)

// ProfileInput carries the editable goals of a profile. Nil fields keep
// their stored value.
type ProfileInput struct {
	DailyKcalTarget *float64 `json:"daily_kcal_target"`
	StartDate       *string  `json:"start_date"`
	InitialWeight   *float64 `json:"initial_weight"`
	TargetWeight    *float64 `json:"target_weight"`
}

// ProfileUsecase defines the interface for user goals.
type ProfileUsecase interface {
	// GetProfile returns the stored profile, or defaults when there is none.
	GetProfile(ctx context.Context, email string) (*entity.Profile, error)

	// UpsertProfile applies input to the profile of email and stores it.
	UpsertProfile(ctx context.Context, email string, input *ProfileInput) (*entity.Profile, error)
}
