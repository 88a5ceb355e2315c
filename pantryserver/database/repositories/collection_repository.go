package repositories

import (
	"context"
	"time"

	"github.com/pantrybook/pantry-server/pantryserver/database/models"
	"github.com/uptrace/bun"
)

type CollectionRepository interface {
	Create(ctx context.Context, collection *models.Collection) error
	GetByID(ctx context.Context, id int64) (*models.Collection, error)
	GetByHouseholdID(ctx context.Context, householdID int64) ([]*models.Collection, error)
	Update(ctx context.Context, collection *models.Collection) error
	Delete(ctx context.Context, id int64) error

	// ListVisible returns every collection the household can read: owned,
	// subscribed, or public.
	ListVisible(ctx context.Context, householdID int64) ([]*models.Collection, error)

	Subscribe(ctx context.Context, householdID, collectionID int64) error
	Unsubscribe(ctx context.Context, householdID, collectionID int64) error

	AddRecipe(ctx context.Context, collectionID, recipeID int64) error
	RemoveRecipe(ctx context.Context, collectionID, recipeID int64) error
	GetRecipes(ctx context.Context, collectionID int64) ([]*models.Recipe, error)
}

type collectionRepository struct {
	*BaseRepository
	db *bun.DB
}

func NewCollectionRepository(db *bun.DB) CollectionRepository {
	return &collectionRepository{
		BaseRepository: NewBaseRepository(db),
		db:             db,
	}
}

func (r *collectionRepository) Create(ctx context.Context, collection *models.Collection) error {
	collection.CreatedAt = time.Now()
	collection.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(collection).Exec(ctx)
	return r.HandleError("create", "collection", err)
}

func (r *collectionRepository) GetByID(ctx context.Context, id int64) (*models.Collection, error) {
	collection := new(models.Collection)
	err := r.db.NewSelect().Model(collection).Where("col.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "collection", id, err)
	}
	return collection, nil
}

func (r *collectionRepository) GetByHouseholdID(ctx context.Context, householdID int64) ([]*models.Collection, error) {
	var collections []*models.Collection
	err := r.db.NewSelect().
		Model(&collections).
		Where("col.household_id = ?", householdID).
		Order("col.name ASC").
		Scan(ctx)
	return collections, r.HandleError("get_by_household", "collection", err)
}

func (r *collectionRepository) Update(ctx context.Context, collection *models.Collection) error {
	collection.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().Model(collection).WherePK().Exec(ctx)
	return r.HandleError("update", "collection", err)
}

func (r *collectionRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().Model((*models.Collection)(nil)).Where("id = ?", id).Exec(ctx)
	return r.HandleError("delete", "collection", err)
}

func (r *collectionRepository) ListVisible(ctx context.Context, householdID int64) ([]*models.Collection, error) {
	var collections []*models.Collection
	err := r.db.NewSelect().
		Model(&collections).
		Where("col.household_id = ?", householdID).
		WhereOr("col.is_public = TRUE").
		WhereOr("col.id IN (SELECT collection_id FROM collection_subscriptions WHERE household_id = ?)", householdID).
		Order("col.name ASC").
		Scan(ctx)
	return collections, r.HandleError("list_visible", "collection", err)
}

func (r *collectionRepository) Subscribe(ctx context.Context, householdID, collectionID int64) error {
	sub := &models.CollectionSubscription{
		HouseholdID:  householdID,
		CollectionID: collectionID,
		CreatedAt:    time.Now(),
	}
	_, err := r.db.NewInsert().Model(sub).Exec(ctx)
	return r.HandleError("subscribe", "collection_subscription", err)
}

func (r *collectionRepository) Unsubscribe(ctx context.Context, householdID, collectionID int64) error {
	_, err := r.db.NewDelete().
		Model((*models.CollectionSubscription)(nil)).
		Where("household_id = ? AND collection_id = ?", householdID, collectionID).
		Exec(ctx)
	return r.HandleError("unsubscribe", "collection_subscription", err)
}

func (r *collectionRepository) AddRecipe(ctx context.Context, collectionID, recipeID int64) error {
	link := &models.CollectionRecipe{
		CollectionID: collectionID,
		RecipeID:     recipeID,
		CreatedAt:    time.Now(),
	}
	_, err := r.db.NewInsert().Model(link).Exec(ctx)
	return r.HandleError("add_recipe", "collection_recipe", err)
}

func (r *collectionRepository) RemoveRecipe(ctx context.Context, collectionID, recipeID int64) error {
	_, err := r.db.NewDelete().
		Model((*models.CollectionRecipe)(nil)).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		Exec(ctx)
	return r.HandleError("remove_recipe", "collection_recipe", err)
}

func (r *collectionRepository) GetRecipes(ctx context.Context, collectionID int64) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := r.db.NewSelect().
		Model(&recipes).
		Join("JOIN collection_recipes AS cr ON cr.recipe_id = rec.id").
		Where("cr.collection_id = ?", collectionID).
		Order("rec.name ASC").
		Scan(ctx)
	return recipes, r.HandleError("get_recipes", "collection", err)
}
