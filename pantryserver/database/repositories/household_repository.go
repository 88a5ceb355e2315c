package repositories

import (
	"context"
	"time"

	"github.com/pantrybook/pantry-server/pantryserver/database/models"
	"github.com/uptrace/bun"
)

type HouseholdRepository interface {
	Create(ctx context.Context, household *models.Household) error
	GetByID(ctx context.Context, id int64) (*models.Household, error)
	GetAll(ctx context.Context) ([]*models.Household, error)
	Update(ctx context.Context, household *models.Household) error
}

type householdRepository struct {
	*BaseRepository
	db *bun.DB
}

func NewHouseholdRepository(db *bun.DB) HouseholdRepository {
	return &householdRepository{
		BaseRepository: NewBaseRepository(db),
		db:             db,
	}
}

func (r *householdRepository) Create(ctx context.Context, household *models.Household) error {
	household.CreatedAt = time.Now()
	household.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(household).Exec(ctx)
	return r.HandleError("create", "household", err)
}

func (r *householdRepository) GetByID(ctx context.Context, id int64) (*models.Household, error) {
	household := new(models.Household)
	err := r.db.NewSelect().Model(household).Where("hh.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "household", id, err)
	}
	return household, nil
}

func (r *householdRepository) GetAll(ctx context.Context) ([]*models.Household, error) {
	var households []*models.Household
	err := r.db.NewSelect().Model(&households).Scan(ctx)
	return households, r.HandleError("get_all", "household", err)
}

func (r *householdRepository) Update(ctx context.Context, household *models.Household) error {
	household.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().Model(household).WherePK().Exec(ctx)
	return r.HandleError("update", "household", err)
}
