package sharing

import (
	"context"
	"fmt"

	"github.com/pantrybook/pantry-server/pantryserver/database/models"
)

// memStore is an in-memory Store with transactional semantics: Atomic runs
// the callback against a deep copy and only folds the copy back on success,
// so a failed fork leaves no partial rows. The provenance uniqueness of the
// real schema is emulated on insert.
type memStore struct {
	nextID            int64
	collections       map[int64]models.Collection
	recipes           map[int64]models.Recipe
	ingredients       map[int64]models.Ingredient
	subscriptions     map[[2]int64]bool // (household, collection)
	collectionRecipes map[[2]int64]bool // (collection, recipe)
	recipeIngredients []models.RecipeIngredient
}

func newMemStore() *memStore {
	return &memStore{
		nextID:            1,
		collections:       make(map[int64]models.Collection),
		recipes:           make(map[int64]models.Recipe),
		ingredients:       make(map[int64]models.Ingredient),
		subscriptions:     make(map[[2]int64]bool),
		collectionRecipes: make(map[[2]int64]bool),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	c.nextID = s.nextID
	for k, v := range s.collections {
		c.collections[k] = v
	}
	for k, v := range s.recipes {
		c.recipes[k] = v
	}
	for k, v := range s.ingredients {
		c.ingredients[k] = v
	}
	for k, v := range s.subscriptions {
		c.subscriptions[k] = v
	}
	for k, v := range s.collectionRecipes {
		c.collectionRecipes[k] = v
	}
	c.recipeIngredients = append([]models.RecipeIngredient(nil), s.recipeIngredients...)
	return c
}

func (s *memStore) addCollection(householdID int64, name string, public bool) int64 {
	id := s.nextID
	s.nextID++
	s.collections[id] = models.Collection{ID: id, HouseholdID: householdID, Name: name, IsPublic: public}
	return id
}

func (s *memStore) addRecipe(householdID int64, name string) int64 {
	id := s.nextID
	s.nextID++
	s.recipes[id] = models.Recipe{ID: id, HouseholdID: householdID, Name: name}
	return id
}

func (s *memStore) addIngredient(householdID int64, name string, public bool) int64 {
	id := s.nextID
	s.nextID++
	s.ingredients[id] = models.Ingredient{ID: id, HouseholdID: householdID, Name: name, IsPublic: public}
	return id
}

func (s *memStore) GetCollection(_ context.Context, id int64) (*models.Collection, error) {
	if c, ok := s.collections[id]; ok {
		return &c, nil
	}
	return nil, fmt.Errorf("collection %d: %w", id, ErrNotFound)
}

func (s *memStore) GetRecipe(_ context.Context, id int64) (*models.Recipe, error) {
	if r, ok := s.recipes[id]; ok {
		return &r, nil
	}
	return nil, fmt.Errorf("recipe %d: %w", id, ErrNotFound)
}

func (s *memStore) GetIngredient(_ context.Context, id int64) (*models.Ingredient, error) {
	if i, ok := s.ingredients[id]; ok {
		return &i, nil
	}
	return nil, fmt.Errorf("ingredient %d: %w", id, ErrNotFound)
}

func (s *memStore) IsSubscribed(_ context.Context, householdID, collectionID int64) (bool, error) {
	return s.subscriptions[[2]int64{householdID, collectionID}], nil
}

func (s *memStore) CollectionsContaining(_ context.Context, recipeID int64) ([]*models.Collection, error) {
	var out []*models.Collection
	for key := range s.collectionRecipes {
		if key[1] == recipeID {
			c := s.collections[key[0]]
			out = append(out, &c)
		}
	}
	return out, nil
}

func (s *memStore) RecipesUsing(_ context.Context, ingredientID int64) ([]*models.Recipe, error) {
	var out []*models.Recipe
	for _, join := range s.recipeIngredients {
		if join.IngredientID == ingredientID {
			r := s.recipes[join.RecipeID]
			out = append(out, &r)
		}
	}
	return out, nil
}

func (s *memStore) IngredientsOf(_ context.Context, recipeID int64) ([]*models.RecipeIngredient, error) {
	var out []*models.RecipeIngredient
	for _, join := range s.recipeIngredients {
		if join.RecipeID == recipeID {
			j := join
			out = append(out, &j)
		}
	}
	return out, nil
}

func (s *memStore) FindCollectionFork(_ context.Context, householdID, sourceID int64) (*models.Collection, error) {
	for _, c := range s.collections {
		if c.HouseholdID == householdID && c.ForkedFrom != nil && *c.ForkedFrom == sourceID {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindRecipeFork(_ context.Context, householdID, sourceID int64) (*models.Recipe, error) {
	for _, r := range s.recipes {
		if r.HouseholdID == householdID && r.ForkedFrom != nil && *r.ForkedFrom == sourceID {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memStore) InsertCollection(_ context.Context, collection *models.Collection) error {
	if collection.ForkedFrom != nil {
		for _, c := range s.collections {
			if c.HouseholdID == collection.HouseholdID && c.ForkedFrom != nil && *c.ForkedFrom == *collection.ForkedFrom {
				return fmt.Errorf("insert collection: %w", ErrConflict)
			}
		}
	}
	collection.ID = s.nextID
	s.nextID++
	s.collections[collection.ID] = *collection
	return nil
}

func (s *memStore) InsertRecipe(_ context.Context, recipe *models.Recipe) error {
	if recipe.ForkedFrom != nil {
		for _, r := range s.recipes {
			if r.HouseholdID == recipe.HouseholdID && r.ForkedFrom != nil && *r.ForkedFrom == *recipe.ForkedFrom {
				return fmt.Errorf("insert recipe: %w", ErrConflict)
			}
		}
	}
	recipe.ID = s.nextID
	s.nextID++
	s.recipes[recipe.ID] = *recipe
	return nil
}

func (s *memStore) InsertIngredient(_ context.Context, ingredient *models.Ingredient) error {
	ingredient.ID = s.nextID
	s.nextID++
	s.ingredients[ingredient.ID] = *ingredient
	return nil
}

func (s *memStore) LinkCollectionRecipe(_ context.Context, link *models.CollectionRecipe) error {
	s.collectionRecipes[[2]int64{link.CollectionID, link.RecipeID}] = true
	return nil
}

func (s *memStore) LinkRecipeIngredient(_ context.Context, link *models.RecipeIngredient) error {
	for _, join := range s.recipeIngredients {
		if join.RecipeID == link.RecipeID && join.IngredientID == link.IngredientID {
			return fmt.Errorf("link recipe ingredient: %w", ErrConflict)
		}
	}
	s.recipeIngredients = append(s.recipeIngredients, *link)
	return nil
}

func (s *memStore) Atomic(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	tx := s.clone()
	if err := fn(ctx, tx); err != nil {
		return err
	}
	*s = *tx
	return nil
}
