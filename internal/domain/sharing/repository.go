package sharing

import (
	"context"

	"github.com/pantrybook/pantry-server/pantryserver/database/models"
)

//go:generate mockgen -source=repository.go -destination=mock/store.go -package=mock

// Store is the transactional resource store the sharing engine runs against.
//
// Contract: entity getters return an error wrapping ErrNotFound when the row
// does not exist; fork lookups return (nil, nil) when no fork exists; writes
// surface uniqueness violations as errors wrapping ErrConflict. Any other
// failure is a store error and is returned as-is, never coerced to a "no
// access" answer.
type Store interface {
	GetCollection(ctx context.Context, id int64) (*models.Collection, error)
	GetRecipe(ctx context.Context, id int64) (*models.Recipe, error)
	GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error)

	// IsSubscribed reports whether the household holds a subscription row
	// for the collection.
	IsSubscribed(ctx context.Context, householdID, collectionID int64) (bool, error)

	// CollectionsContaining returns every collection the recipe is listed in.
	CollectionsContaining(ctx context.Context, recipeID int64) ([]*models.Collection, error)

	// RecipesUsing returns every recipe referencing the ingredient.
	RecipesUsing(ctx context.Context, ingredientID int64) ([]*models.Recipe, error)

	// IngredientsOf returns the recipe's ingredient join rows.
	IngredientsOf(ctx context.Context, recipeID int64) ([]*models.RecipeIngredient, error)

	// FindCollectionFork looks up the household's prior fork of the source
	// collection via the forked_from provenance marker.
	FindCollectionFork(ctx context.Context, householdID, sourceID int64) (*models.Collection, error)
	FindRecipeFork(ctx context.Context, householdID, sourceID int64) (*models.Recipe, error)

	InsertCollection(ctx context.Context, collection *models.Collection) error
	InsertRecipe(ctx context.Context, recipe *models.Recipe) error
	InsertIngredient(ctx context.Context, ingredient *models.Ingredient) error

	// LinkCollectionRecipe adds the membership row; linking an already linked
	// pair is a no-op, so re-linking existing forks is safe.
	LinkCollectionRecipe(ctx context.Context, link *models.CollectionRecipe) error
	LinkRecipeIngredient(ctx context.Context, link *models.RecipeIngredient) error

	// Atomic runs fn inside a single transaction. The Store passed to fn is
	// bound to that transaction; rollback on error, commit otherwise. Partial
	// writes are never visible outside the transaction.
	Atomic(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}
