package repositories

import (
	"context"
	"time"

	"github.com/pantrybook/pantry-server/pantryserver/database/models"
	"github.com/uptrace/bun"
)

type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	GetByHouseholdID(ctx context.Context, householdID int64) ([]*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id int64) error

	GetIngredients(ctx context.Context, recipeID int64) ([]*models.RecipeIngredient, error)
	AddIngredient(ctx context.Context, link *models.RecipeIngredient) error
	RemoveIngredient(ctx context.Context, recipeID, ingredientID int64) error
	SetImageKey(ctx context.Context, recipeID int64, imageKey string) error
}

type recipeRepository struct {
	*BaseRepository
	db *bun.DB
}

func NewRecipeRepository(db *bun.DB) RecipeRepository {
	return &recipeRepository{
		BaseRepository: NewBaseRepository(db),
		db:             db,
	}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(recipe).Exec(ctx)
	return r.HandleError("create", "recipe", err)
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	recipe := new(models.Recipe)
	err := r.db.NewSelect().Model(recipe).Where("rec.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "recipe", id, err)
	}
	return recipe, nil
}

func (r *recipeRepository) GetByHouseholdID(ctx context.Context, householdID int64) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := r.db.NewSelect().
		Model(&recipes).
		Where("rec.household_id = ?", householdID).
		Order("rec.name ASC").
		Scan(ctx)
	return recipes, r.HandleError("get_by_household", "recipe", err)
}

func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	recipe.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().Model(recipe).WherePK().Exec(ctx)
	return r.HandleError("update", "recipe", err)
}

func (r *recipeRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().Model((*models.Recipe)(nil)).Where("id = ?", id).Exec(ctx)
	return r.HandleError("delete", "recipe", err)
}

func (r *recipeRepository) GetIngredients(ctx context.Context, recipeID int64) ([]*models.RecipeIngredient, error) {
	var joins []*models.RecipeIngredient
	err := r.db.NewSelect().
		Model(&joins).
		Relation("Ingredient").
		Where("ri.recipe_id = ?", recipeID).
		Scan(ctx)
	return joins, r.HandleError("get_ingredients", "recipe", err)
}

func (r *recipeRepository) AddIngredient(ctx context.Context, link *models.RecipeIngredient) error {
	_, err := r.db.NewInsert().Model(link).Exec(ctx)
	return r.HandleError("add_ingredient", "recipe_ingredient", err)
}

func (r *recipeRepository) RemoveIngredient(ctx context.Context, recipeID, ingredientID int64) error {
	_, err := r.db.NewDelete().
		Model((*models.RecipeIngredient)(nil)).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Exec(ctx)
	return r.HandleError("remove_ingredient", "recipe_ingredient", err)
}

func (r *recipeRepository) SetImageKey(ctx context.Context, recipeID int64, imageKey string) error {
	_, err := r.db.NewUpdate().
		Model((*models.Recipe)(nil)).
		Set("image_key = ?", imageKey).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", recipeID).
		Exec(ctx)
	return r.HandleError("set_image_key", "recipe", err)
}
