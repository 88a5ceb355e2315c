package sharing

import (
	"context"
	"errors"
	"testing"

	"github.com/pantrybook/pantry-server/pantryserver/database/models"
)

// fixture: household A owns collection C1 containing recipe R1 which uses
// ingredient I1 (owned by A). Household B subscribes to C1.
type forkFixture struct {
	store *memStore

	householdA, householdB int64
	collection, recipe     int64
	ingredient             int64
}

func newForkFixture(t *testing.T, ingredientPublic bool) *forkFixture {
	t.Helper()
	store := newMemStore()

	f := &forkFixture{store: store, householdA: 1, householdB: 2}
	store.nextID = 10

	f.collection = store.addCollection(f.householdA, "Weeknight Dinners", false)
	f.recipe = store.addRecipe(f.householdA, "Lentil Soup")
	f.ingredient = store.addIngredient(f.householdA, "Red Lentils", ingredientPublic)
	store.collectionRecipes[[2]int64{f.collection, f.recipe}] = true
	store.recipeIngredients = append(store.recipeIngredients, models.RecipeIngredient{
		RecipeID:     f.recipe,
		IngredientID: f.ingredient,
		Quantity:     250,
		Unit:         "g",
		Preparation:  "rinsed",
	})
	store.subscriptions[[2]int64{f.householdB, f.collection}] = true
	return f
}

func TestForker_ForkForMutation_CopiesPrivateIngredient(t *testing.T) {
	f := newForkFixture(t, false)
	forker := NewForker(f.store)

	result, err := forker.ForkForMutation(context.Background(), f.householdB, f.collection, f.recipe)
	if err != nil {
		t.Fatalf("ForkForMutation() error = %v", err)
	}

	newCollection := f.store.collections[result.CollectionID]
	if newCollection.HouseholdID != f.householdB {
		t.Errorf("forked collection owner = %d, want %d", newCollection.HouseholdID, f.householdB)
	}
	if newCollection.IsPublic {
		t.Error("forked collection must be private")
	}
	if newCollection.ForkedFrom == nil || *newCollection.ForkedFrom != f.collection {
		t.Error("forked collection missing provenance marker")
	}

	newRecipe := f.store.recipes[result.RecipeID]
	if newRecipe.HouseholdID != f.householdB {
		t.Errorf("forked recipe owner = %d, want %d", newRecipe.HouseholdID, f.householdB)
	}
	if newRecipe.Name != "Lentil Soup" {
		t.Errorf("forked recipe name = %q, want copy of source", newRecipe.Name)
	}

	// Private ingredient is copied, and the join points at the copy with
	// quantity/unit/preparation carried over verbatim.
	var forkedJoin *models.RecipeIngredient
	for i := range f.store.recipeIngredients {
		if f.store.recipeIngredients[i].RecipeID == result.RecipeID {
			forkedJoin = &f.store.recipeIngredients[i]
		}
	}
	if forkedJoin == nil {
		t.Fatal("forked recipe has no ingredient join")
	}
	if forkedJoin.IngredientID == f.ingredient {
		t.Error("private ingredient was reused, want a copy")
	}
	copied := f.store.ingredients[forkedJoin.IngredientID]
	if copied.HouseholdID != f.householdB || copied.IsPublic {
		t.Errorf("ingredient copy = %+v, want private copy owned by %d", copied, f.householdB)
	}
	if forkedJoin.Quantity != 250 || forkedJoin.Unit != "g" || forkedJoin.Preparation != "rinsed" {
		t.Errorf("join values = %+v, want verbatim copy", forkedJoin)
	}

	// Source rows are untouched.
	source := f.store.collections[f.collection]
	if source.HouseholdID != f.householdA || source.ForkedFrom != nil {
		t.Error("source collection was mutated")
	}
	sourceRecipe := f.store.recipes[f.recipe]
	if sourceRecipe.HouseholdID != f.householdA {
		t.Error("source recipe was mutated")
	}
	sourceIngredient := f.store.ingredients[f.ingredient]
	if sourceIngredient.HouseholdID != f.householdA {
		t.Error("source ingredient was mutated")
	}
	if !f.store.collectionRecipes[[2]int64{f.collection, f.recipe}] {
		t.Error("source collection membership was removed")
	}
}

func TestForker_ForkForMutation_ReusesPublicIngredient(t *testing.T) {
	f := newForkFixture(t, true)
	forker := NewForker(f.store)

	result, err := forker.ForkForMutation(context.Background(), f.householdB, f.collection, f.recipe)
	if err != nil {
		t.Fatalf("ForkForMutation() error = %v", err)
	}

	for _, join := range f.store.recipeIngredients {
		if join.RecipeID == result.RecipeID && join.IngredientID != f.ingredient {
			t.Errorf("join references ingredient %d, want shared %d", join.IngredientID, f.ingredient)
		}
	}
	if len(f.store.ingredients) != 1 {
		t.Errorf("ingredient count = %d, want 1 (no copy of a public ingredient)", len(f.store.ingredients))
	}
}

func TestForker_ForkForMutation_Idempotent(t *testing.T) {
	f := newForkFixture(t, false)
	forker := NewForker(f.store)
	ctx := context.Background()

	first, err := forker.ForkForMutation(ctx, f.householdB, f.collection, f.recipe)
	if err != nil {
		t.Fatalf("first fork: %v", err)
	}
	collections, recipes := len(f.store.collections), len(f.store.recipes)

	second, err := forker.ForkForMutation(ctx, f.householdB, f.collection, f.recipe)
	if err != nil {
		t.Fatalf("second fork: %v", err)
	}
	if *first != *second {
		t.Errorf("second fork = %+v, want %+v", second, first)
	}
	if len(f.store.collections) != collections || len(f.store.recipes) != recipes {
		t.Error("second fork created duplicate rows")
	}
}

func TestForker_ForkForMutation_ReusesCollectionForkForSecondRecipe(t *testing.T) {
	f := newForkFixture(t, false)
	secondRecipe := f.store.addRecipe(f.householdA, "Garlic Bread")
	f.store.collectionRecipes[[2]int64{f.collection, secondRecipe}] = true

	forker := NewForker(f.store)
	ctx := context.Background()

	first, err := forker.ForkForMutation(ctx, f.householdB, f.collection, f.recipe)
	if err != nil {
		t.Fatalf("first fork: %v", err)
	}
	second, err := forker.ForkForMutation(ctx, f.householdB, f.collection, secondRecipe)
	if err != nil {
		t.Fatalf("second fork: %v", err)
	}

	if first.CollectionID != second.CollectionID {
		t.Errorf("collection fork ids differ: %d vs %d, want reuse", first.CollectionID, second.CollectionID)
	}
	if first.RecipeID == second.RecipeID {
		t.Error("distinct source recipes must fork to distinct copies")
	}
}

func TestForker_ForkForMutation_LinksPreexistingForks(t *testing.T) {
	// Collection C holds R1 and R2; collection D also holds R1. Forking
	// (C, R2) and then (D, R1) leaves B with a fork of C and a fork of R1
	// created through unrelated pairs. Forking (C, R1) last must reuse both
	// copies and still join them.
	f := newForkFixture(t, false)
	secondRecipe := f.store.addRecipe(f.householdA, "Garlic Bread")
	f.store.collectionRecipes[[2]int64{f.collection, secondRecipe}] = true
	otherCollection := f.store.addCollection(f.householdA, "Sunday Lunches", false)
	f.store.collectionRecipes[[2]int64{otherCollection, f.recipe}] = true
	f.store.subscriptions[[2]int64{f.householdB, otherCollection}] = true

	forker := NewForker(f.store)
	ctx := context.Background()

	if _, err := forker.ForkForMutation(ctx, f.householdB, f.collection, secondRecipe); err != nil {
		t.Fatalf("fork (C, R2): %v", err)
	}
	if _, err := forker.ForkForMutation(ctx, f.householdB, otherCollection, f.recipe); err != nil {
		t.Fatalf("fork (D, R1): %v", err)
	}
	collections, recipes := len(f.store.collections), len(f.store.recipes)

	result, err := forker.ForkForMutation(ctx, f.householdB, f.collection, f.recipe)
	if err != nil {
		t.Fatalf("fork (C, R1): %v", err)
	}

	forkedCollection := f.store.collections[result.CollectionID]
	if forkedCollection.ForkedFrom == nil || *forkedCollection.ForkedFrom != f.collection {
		t.Errorf("result collection %d is not B's fork of %d", result.CollectionID, f.collection)
	}
	forkedRecipe := f.store.recipes[result.RecipeID]
	if forkedRecipe.ForkedFrom == nil || *forkedRecipe.ForkedFrom != f.recipe {
		t.Errorf("result recipe %d is not B's fork of %d", result.RecipeID, f.recipe)
	}
	if !f.store.collectionRecipes[[2]int64{result.CollectionID, result.RecipeID}] {
		t.Error("returned pair is not linked in collection_recipes")
	}
	if len(f.store.collections) != collections || len(f.store.recipes) != recipes {
		t.Error("reusing existing forks must not create new rows")
	}
}

func TestForker_ForkForMutation_DeniedWithoutReadAccess(t *testing.T) {
	f := newForkFixture(t, false)
	// Revoke B's subscription; the private collection becomes invisible.
	delete(f.store.subscriptions, [2]int64{f.householdB, f.collection})

	forker := NewForker(f.store)
	before := len(f.store.collections) + len(f.store.recipes) + len(f.store.ingredients)

	_, err := forker.ForkForMutation(context.Background(), f.householdB, f.collection, f.recipe)
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("error = %v, want ErrAccessDenied", err)
	}
	after := len(f.store.collections) + len(f.store.recipes) + len(f.store.ingredients)
	if before != after {
		t.Error("denied fork left rows behind")
	}
}

func TestForker_ForkForMutation_MissingSources(t *testing.T) {
	f := newForkFixture(t, false)
	forker := NewForker(f.store)
	ctx := context.Background()

	if _, err := forker.ForkForMutation(ctx, f.householdB, 999, f.recipe); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing collection: error = %v, want ErrNotFound", err)
	}
	if _, err := forker.ForkForMutation(ctx, f.householdB, f.collection, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing recipe: error = %v, want ErrNotFound", err)
	}
}

func TestForker_ForkForMutation_PublicCollectionWithoutSubscription(t *testing.T) {
	f := newForkFixture(t, false)
	delete(f.store.subscriptions, [2]int64{f.householdB, f.collection})
	source := f.store.collections[f.collection]
	source.IsPublic = true
	f.store.collections[f.collection] = source

	forker := NewForker(f.store)
	result, err := forker.ForkForMutation(context.Background(), f.householdB, f.collection, f.recipe)
	if err != nil {
		t.Fatalf("ForkForMutation() error = %v", err)
	}
	if f.store.collections[result.CollectionID].IsPublic {
		t.Error("fork of a public collection must still be private")
	}
}
