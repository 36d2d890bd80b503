package spreadsheet

import (
	"context"
	"log/slog"
	"strings"

	"nutrisheet/internal/domain/entity"
	domainerrors "nutrisheet/internal/domain/errors"
	"nutrisheet/internal/domain/repository"
	"nutrisheet/internal/infra/persistence/model"
	"nutrisheet/internal/infra/sheets"
	"nutrisheet/internal/infra/sheets/schema"

	"github.com/pkg/errors"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	table
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(adapter sheets.RangeAdapter, layouts *model.Layouts, logger *slog.Logger) repository.ProfileRepository {
	return &profileRepository{
		table: newTable(adapter, layouts.Profile, logger),
	}
}

// FindByEmail scans the few profile rows for the email.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	records, err := repo.readAll(ctx)
	if err != nil {
		return nil, err
	}

	if p := findProfile(records, email); p != nil {
		return p, nil
	}

	return nil, errors.Wrapf(repository.ErrProfileNotFound, "email %s", email)
}

// Upsert writes the profile over its existing row or appends a new one.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	grid, err := repo.adapter.ReadRange(ctx, repo.schema.Sheet, repo.schema.DataRange())
	if err != nil {
		return errors.Wrapf(err, "failed to read sheet %s", repo.schema.Sheet)
	}

	if existing := findProfile(repo.decodeGrid(grid), profile.Email); existing != nil {
		profile.ID = existing.ID

		return repo.writeOwned(ctx, fromProfileDomain(profile))
	}

	capacity := repo.schema.LastRow - repo.schema.FirstRow + 1
	if len(grid) >= capacity {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("profile sheet is full"))
	}

	profile.ID = 0

	return repo.append(ctx, fromProfileDomain(profile))
}

func findProfile(records []schema.Record, email string) *entity.Profile {
	email = strings.TrimSpace(email)
	for _, rec := range records {
		if strings.EqualFold(rec.Fields.Text(model.ProfileEmail), email) {
			return toProfileDomain(rec)
		}
	}

	return nil
}

func toProfileDomain(rec schema.Record) *entity.Profile {
	f := rec.Fields

	p := &entity.Profile{
		ID:              rec.Row,
		Email:           f.Text(model.ProfileEmail),
		DailyKcalTarget: f.Number(model.ProfileKcalTarget),
		StartDate:       f.Text(model.ProfileStartDate),
		InitialWeight:   optionalNumber(f.Number(model.ProfileInitialWeight)),
		TargetWeight:    optionalNumber(f.Number(model.ProfileTargetWeight)),
	}
	if p.DailyKcalTarget <= 0 {
		p.DailyKcalTarget = entity.DefaultKcalTarget
	}

	return p
}

func fromProfileDomain(p *entity.Profile) schema.Record {
	rec := schema.NewRecord(p.ID)
	rec.Fields = schema.Values{
		model.ProfileEmail:         p.Email,
		model.ProfileKcalTarget:    p.DailyKcalTarget,
		model.ProfileStartDate:     p.StartDate,
		model.ProfileInitialWeight: derefNumber(p.InitialWeight),
		model.ProfileTargetWeight:  derefNumber(p.TargetWeight),
	}

	return rec
}

func optionalNumber(f float64) *float64 {
	if f == 0 {
		return nil
	}

	return &f
}

func derefNumber(f *float64) float64 {
	if f == nil {
		return 0
	}

	return *f
}
