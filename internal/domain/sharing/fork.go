package sharing

import (
	"context"
	"errors"
	"fmt"

	"github.com/pantrybook/pantry-server/pantryserver/database/models"
)

// Forker performs the copy-on-write cascade: when a household tries to mutate
// a (collection, recipe) pair it can read but does not own, Forker deep-copies
// the minimal dependency subgraph into the household's ownership and returns
// the new ids for the caller to mutate instead.
//
// The whole fork runs inside one Store.Atomic transaction. Row ordering is
// mandatory: collection before recipe before ingredients before joins, because
// later rows hold foreign keys to earlier ones.
type Forker struct {
	store Store
}

func NewForker(store Store) *Forker {
	return &Forker{store: store}
}

// ForkForMutation copies the (collection, recipe) pair into householdID's
// ownership and returns the new ids. Re-forking the same pair returns the
// existing fork's ids instead of creating a duplicate. The source rows and
// their joins are never touched.
//
// Errors: ErrNotFound when either source is missing, ErrAccessDenied when the
// household cannot even read the pair, ErrConflict when a concurrent fork won
// the uniqueness race (retry lands on the winner's copy).
func (f *Forker) ForkForMutation(ctx context.Context, householdID, collectionID, recipeID int64) (*ForkResult, error) {
	var result *ForkResult
	err := f.store.Atomic(ctx, func(ctx context.Context, tx Store) error {
		forked, err := f.forkInTx(ctx, tx, householdID, collectionID, recipeID)
		if err != nil {
			return err
		}
		result = forked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (f *Forker) forkInTx(ctx context.Context, tx Store, householdID, collectionID, recipeID int64) (*ForkResult, error) {
	source, recipe, err := f.loadSources(ctx, tx, collectionID, recipeID)
	if err != nil {
		return nil, err
	}

	// Defensive re-validation inside the transaction: the caller is expected
	// to have checked read access already, but the fork must not trust it.
	if err := f.requireReadAccess(ctx, tx, householdID, source, recipe); err != nil {
		return nil, err
	}

	// Known-fork lookups, re-evaluated inside the transaction. Both lookups
	// are independent: forking a second recipe out of an already forked
	// collection reuses the collection copy, and a recipe forked through
	// another collection earlier is reused here. Existing copies skip the
	// inserts but never the membership link below: a collection and a recipe
	// forked through different earlier pairs may both pre-exist without a
	// row joining them.
	forkedCollection, err := tx.FindCollectionFork(ctx, householdID, collectionID)
	if err != nil {
		return nil, fmt.Errorf("lookup collection fork: %w", err)
	}
	forkedRecipe, err := tx.FindRecipeFork(ctx, householdID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("lookup recipe fork: %w", err)
	}

	if forkedCollection == nil {
		forkedCollection = &models.Collection{
			HouseholdID: householdID,
			Name:        source.Name,
			Description: source.Description,
			IsPublic:    false, // forks are always private
			ForkedFrom:  &source.ID,
		}
		if err := tx.InsertCollection(ctx, forkedCollection); err != nil {
			return nil, fmt.Errorf("insert collection copy: %w", err)
		}
	}

	if forkedRecipe == nil {
		forkedRecipe, err = f.copyRecipe(ctx, tx, householdID, recipe)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.LinkCollectionRecipe(ctx, &models.CollectionRecipe{
		CollectionID: forkedCollection.ID,
		RecipeID:     forkedRecipe.ID,
	}); err != nil {
		return nil, fmt.Errorf("link collection recipe: %w", err)
	}

	return &ForkResult{CollectionID: forkedCollection.ID, RecipeID: forkedRecipe.ID}, nil
}

func (f *Forker) loadSources(ctx context.Context, tx Store, collectionID, recipeID int64) (*models.Collection, *models.Recipe, error) {
	source, err := tx.GetCollection(ctx, collectionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, fmt.Errorf("source collection %d: %w", collectionID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("load source collection: %w", err)
	}
	recipe, err := tx.GetRecipe(ctx, recipeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, fmt.Errorf("source recipe %d: %w", recipeID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("load source recipe: %w", err)
	}
	return source, recipe, nil
}

func (f *Forker) requireReadAccess(ctx context.Context, tx Store, householdID int64, collection *models.Collection, recipe *models.Recipe) error {
	resolver := NewResolver(tx)
	collectionLevel, err := resolver.collectionLevel(ctx, householdID, collection)
	if err != nil {
		return err
	}
	if !collectionLevel.Readable() {
		return fmt.Errorf("collection %d: %w", collection.ID, ErrAccessDenied)
	}
	recipeLevel, err := resolver.resolveRecipe(ctx, householdID, recipe.ID)
	if err != nil {
		return err
	}
	if !recipeLevel.Readable() {
		return fmt.Errorf("recipe %d: %w", recipe.ID, ErrAccessDenied)
	}
	return nil
}

// copyRecipe clones the recipe row and its ingredient joins. Ingredients the
// household already owns or that are public are reused by reference; anything
// else is copied into a private ingredient first. Quantity, unit and
// preparation carry over verbatim. The image key is copied by reference: data
// rows fork here, binary assets only when the household later edits them.
func (f *Forker) copyRecipe(ctx context.Context, tx Store, householdID int64, source *models.Recipe) (*models.Recipe, error) {
	forked := &models.Recipe{
		HouseholdID:     householdID,
		Name:            source.Name,
		Description:     source.Description,
		PrepTimeMinutes: source.PrepTimeMinutes,
		CookTimeMinutes: source.CookTimeMinutes,
		Servings:        source.Servings,
		ImageKey:        source.ImageKey,
		ForkedFrom:      &source.ID,
	}
	if err := tx.InsertRecipe(ctx, forked); err != nil {
		return nil, fmt.Errorf("insert recipe copy: %w", err)
	}

	joins, err := tx.IngredientsOf(ctx, source.ID)
	if err != nil {
		return nil, fmt.Errorf("load recipe ingredients: %w", err)
	}
	for _, join := range joins {
		ingredientID, err := f.resolveIngredient(ctx, tx, householdID, join.IngredientID)
		if err != nil {
			return nil, err
		}
		if err := tx.LinkRecipeIngredient(ctx, &models.RecipeIngredient{
			RecipeID:     forked.ID,
			IngredientID: ingredientID,
			Quantity:     join.Quantity,
			Unit:         join.Unit,
			Preparation:  join.Preparation,
		}); err != nil {
			return nil, fmt.Errorf("link recipe ingredient: %w", err)
		}
	}
	return forked, nil
}

func (f *Forker) resolveIngredient(ctx context.Context, tx Store, householdID, ingredientID int64) (int64, error) {
	ingredient, err := tx.GetIngredient(ctx, ingredientID)
	if err != nil {
		return 0, fmt.Errorf("load ingredient %d: %w", ingredientID, err)
	}
	if ingredient.HouseholdID == householdID || ingredient.IsPublic {
		// Dimension-like data already visible to the household is reused,
		// not duplicated.
		return ingredient.ID, nil
	}
	copied := &models.Ingredient{
		HouseholdID: householdID,
		Name:        ingredient.Name,
		IsPublic:    false,
	}
	if err := tx.InsertIngredient(ctx, copied); err != nil {
		return 0, fmt.Errorf("insert ingredient copy: %w", err)
	}
	return copied.ID, nil
}
