package repositories

import (
	"context"
	"time"

	"github.com/pantrybook/pantry-server/pantryserver/database/models"
	"github.com/uptrace/bun"
)

type IngredientRepository interface {
	Create(ctx context.Context, ingredient *models.Ingredient) error
	GetByID(ctx context.Context, id int64) (*models.Ingredient, error)
	GetByHouseholdID(ctx context.Context, householdID int64) ([]*models.Ingredient, error)
	GetPublic(ctx context.Context) ([]*models.Ingredient, error)
	Update(ctx context.Context, ingredient *models.Ingredient) error
	Delete(ctx context.Context, id int64) error
}

type ingredientRepository struct {
	*BaseRepository
	db *bun.DB
}

func NewIngredientRepository(db *bun.DB) IngredientRepository {
	return &ingredientRepository{
		BaseRepository: NewBaseRepository(db),
		db:             db,
	}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	ingredient.CreatedAt = time.Now()
	ingredient.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(ingredient).Exec(ctx)
	return r.HandleError("create", "ingredient", err)
}

func (r *ingredientRepository) GetByID(ctx context.Context, id int64) (*models.Ingredient, error) {
	ingredient := new(models.Ingredient)
	err := r.db.NewSelect().Model(ingredient).Where("ing.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "ingredient", id, err)
	}
	return ingredient, nil
}

func (r *ingredientRepository) GetByHouseholdID(ctx context.Context, householdID int64) ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	err := r.db.NewSelect().
		Model(&ingredients).
		Where("ing.household_id = ?", householdID).
		Order("ing.name ASC").
		Scan(ctx)
	return ingredients, r.HandleError("get_by_household", "ingredient", err)
}

func (r *ingredientRepository) GetPublic(ctx context.Context) ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	err := r.db.NewSelect().
		Model(&ingredients).
		Where("ing.is_public = TRUE").
		Order("ing.name ASC").
		Scan(ctx)
	return ingredients, r.HandleError("get_public", "ingredient", err)
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *models.Ingredient) error {
	ingredient.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().Model(ingredient).WherePK().Exec(ctx)
	return r.HandleError("update", "ingredient", err)
}

func (r *ingredientRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().Model((*models.Ingredient)(nil)).Where("id = ?", id).Exec(ctx)
	return r.HandleError("delete", "ingredient", err)
}
