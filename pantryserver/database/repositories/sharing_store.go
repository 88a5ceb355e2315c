package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pantrybook/pantry-server/internal/domain/sharing"
	"github.com/pantrybook/pantry-server/pantryserver/database/models"
	"github.com/uptrace/bun"
)

// SharingStore implements sharing.Store over bun. Atomic wraps the callback in
// a single RunInTx transaction and hands it a store bound to that transaction,
// so every statement of a fork either commits together or rolls back together
// and the connection is always released.
type SharingStore struct {
	db bun.IDB
}

func NewSharingStore(db *bun.DB) *SharingStore {
	return &SharingStore{db: db}
}

// mapErr translates driver-level failures into the sharing package's error
// contract: missing rows wrap sharing.ErrNotFound, unique violations wrap
// sharing.ErrConflict, anything else surfaces as a store error with context.
func mapErr(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", operation, sharing.ErrNotFound)
	}
	if IsUniqueViolation(err) {
		return fmt.Errorf("%s: %w", operation, sharing.ErrConflict)
	}
	return fmt.Errorf("%s: %w", operation, err)
}

func (s *SharingStore) GetCollection(ctx context.Context, id int64) (*models.Collection, error) {
	collection := new(models.Collection)
	err := s.db.NewSelect().Model(collection).Where("col.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, mapErr("get collection", err)
	}
	return collection, nil
}

func (s *SharingStore) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	recipe := new(models.Recipe)
	err := s.db.NewSelect().Model(recipe).Where("rec.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, mapErr("get recipe", err)
	}
	return recipe, nil
}

func (s *SharingStore) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	ingredient := new(models.Ingredient)
	err := s.db.NewSelect().Model(ingredient).Where("ing.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, mapErr("get ingredient", err)
	}
	return ingredient, nil
}

func (s *SharingStore) IsSubscribed(ctx context.Context, householdID, collectionID int64) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*models.CollectionSubscription)(nil)).
		Where("household_id = ? AND collection_id = ?", householdID, collectionID).
		Exists(ctx)
	if err != nil {
		return false, mapErr("check subscription", err)
	}
	return exists, nil
}

func (s *SharingStore) CollectionsContaining(ctx context.Context, recipeID int64) ([]*models.Collection, error) {
	var collections []*models.Collection
	err := s.db.NewSelect().
		Model(&collections).
		Join("JOIN collection_recipes AS cr ON cr.collection_id = col.id").
		Where("cr.recipe_id = ?", recipeID).
		Scan(ctx)
	if err != nil {
		return nil, mapErr("collections containing recipe", err)
	}
	return collections, nil
}

func (s *SharingStore) RecipesUsing(ctx context.Context, ingredientID int64) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := s.db.NewSelect().
		Model(&recipes).
		Join("JOIN recipe_ingredients AS ri ON ri.recipe_id = rec.id").
		Where("ri.ingredient_id = ?", ingredientID).
		Scan(ctx)
	if err != nil {
		return nil, mapErr("recipes using ingredient", err)
	}
	return recipes, nil
}

func (s *SharingStore) IngredientsOf(ctx context.Context, recipeID int64) ([]*models.RecipeIngredient, error) {
	var joins []*models.RecipeIngredient
	err := s.db.NewSelect().
		Model(&joins).
		Where("ri.recipe_id = ?", recipeID).
		Scan(ctx)
	if err != nil {
		return nil, mapErr("ingredients of recipe", err)
	}
	return joins, nil
}

func (s *SharingStore) FindCollectionFork(ctx context.Context, householdID, sourceID int64) (*models.Collection, error) {
	collection := new(models.Collection)
	err := s.db.NewSelect().
		Model(collection).
		Where("col.household_id = ? AND col.forked_from = ?", householdID, sourceID).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapErr("find collection fork", err)
	}
	return collection, nil
}

func (s *SharingStore) FindRecipeFork(ctx context.Context, householdID, sourceID int64) (*models.Recipe, error) {
	recipe := new(models.Recipe)
	err := s.db.NewSelect().
		Model(recipe).
		Where("rec.household_id = ? AND rec.forked_from = ?", householdID, sourceID).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapErr("find recipe fork", err)
	}
	return recipe, nil
}

func (s *SharingStore) InsertCollection(ctx context.Context, collection *models.Collection) error {
	collection.CreatedAt = time.Now()
	collection.UpdatedAt = time.Now()
	_, err := s.db.NewInsert().Model(collection).Exec(ctx)
	return mapErr("insert collection", err)
}

func (s *SharingStore) InsertRecipe(ctx context.Context, recipe *models.Recipe) error {
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = time.Now()
	_, err := s.db.NewInsert().Model(recipe).Exec(ctx)
	return mapErr("insert recipe", err)
}

func (s *SharingStore) InsertIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	ingredient.CreatedAt = time.Now()
	ingredient.UpdatedAt = time.Now()
	_, err := s.db.NewInsert().Model(ingredient).Exec(ctx)
	return mapErr("insert ingredient", err)
}

func (s *SharingStore) LinkCollectionRecipe(ctx context.Context, link *models.CollectionRecipe) error {
	link.CreatedAt = time.Now()
	_, err := s.db.NewInsert().Model(link).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	return mapErr("link collection recipe", err)
}

func (s *SharingStore) LinkRecipeIngredient(ctx context.Context, link *models.RecipeIngredient) error {
	_, err := s.db.NewInsert().Model(link).Exec(ctx)
	return mapErr("link recipe ingredient", err)
}

func (s *SharingStore) Atomic(ctx context.Context, fn func(ctx context.Context, tx sharing.Store) error) error {
	db, ok := s.db.(*bun.DB)
	if !ok {
		// Already transaction-bound; nested Atomic joins the outer one.
		return fn(ctx, s)
	}
	err := db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, &SharingStore{db: tx})
	})
	if err != nil && IsUniqueViolation(err) {
		// The commit itself can surface the duplicate-fork race.
		return fmt.Errorf("atomic fork: %w", sharing.ErrConflict)
	}
	return err
}
