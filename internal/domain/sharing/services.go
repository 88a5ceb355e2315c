package sharing

import (
	"context"
	"errors"
	"fmt"

	"github.com/pantrybook/pantry-server/pantryserver/database/models"
)

// Resolver classifies a household's access to a resource. Pure read path: it
// never writes and never caches, so a revoked subscription or cleared public
// flag takes effect on the next call.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// ResolveAccess returns the strongest access level the household holds on the
// referenced resource. A missing resource resolves to AccessNone; a store
// failure is returned as an error, never folded into AccessNone.
func (r *Resolver) ResolveAccess(ctx context.Context, householdID int64, ref ResourceRef) (AccessLevel, error) {
	switch ref.Type {
	case ResourceCollection:
		return r.resolveCollection(ctx, householdID, ref.ID)
	case ResourceRecipe:
		return r.resolveRecipe(ctx, householdID, ref.ID)
	case ResourceIngredient:
		return r.resolveIngredient(ctx, householdID, ref.ID)
	default:
		return AccessNone, fmt.Errorf("unknown resource type %q", ref.Type)
	}
}

func (r *Resolver) resolveCollection(ctx context.Context, householdID, collectionID int64) (AccessLevel, error) {
	collection, err := r.store.GetCollection(ctx, collectionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AccessNone, nil
		}
		return AccessNone, fmt.Errorf("resolve collection access: %w", err)
	}
	return r.collectionLevel(ctx, householdID, collection)
}

// collectionLevel ranks an already-loaded collection. Ownership is checked
// first so an owner never resolves weaker even when a stray subscription row
// exists for the same pair.
func (r *Resolver) collectionLevel(ctx context.Context, householdID int64, collection *models.Collection) (AccessLevel, error) {
	if collection.HouseholdID == householdID {
		return AccessOwned, nil
	}
	subscribed, err := r.store.IsSubscribed(ctx, householdID, collection.ID)
	if err != nil {
		return AccessNone, fmt.Errorf("check subscription: %w", err)
	}
	if subscribed {
		return AccessSubscribed, nil
	}
	if collection.IsPublic {
		return AccessPublic, nil
	}
	return AccessNone, nil
}

// resolveRecipe unions direct ownership with the access level of every
// collection that both contains the recipe and is visible to the household.
func (r *Resolver) resolveRecipe(ctx context.Context, householdID, recipeID int64) (AccessLevel, error) {
	recipe, err := r.store.GetRecipe(ctx, recipeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AccessNone, nil
		}
		return AccessNone, fmt.Errorf("resolve recipe access: %w", err)
	}
	if recipe.HouseholdID == householdID {
		return AccessOwned, nil
	}

	collections, err := r.store.CollectionsContaining(ctx, recipeID)
	if err != nil {
		return AccessNone, fmt.Errorf("list containing collections: %w", err)
	}
	best := AccessNone
	for _, collection := range collections {
		level, err := r.collectionLevel(ctx, householdID, collection)
		if err != nil {
			return AccessNone, err
		}
		if level > AccessSubscribed {
			// Listing somebody else's recipe in an owned collection grants
			// read, never ownership of the recipe row itself.
			level = AccessSubscribed
		}
		if level > best {
			best = level
		}
		if best == AccessSubscribed {
			// Strongest level a containing collection can confer.
			break
		}
	}
	return best, nil
}

// resolveIngredient unions direct ownership, the public flag, and
// reachability through any recipe the household can access. The traversal is
// fixed at ingredient -> recipe -> collection, never deeper.
func (r *Resolver) resolveIngredient(ctx context.Context, householdID, ingredientID int64) (AccessLevel, error) {
	ingredient, err := r.store.GetIngredient(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AccessNone, nil
		}
		return AccessNone, fmt.Errorf("resolve ingredient access: %w", err)
	}
	if ingredient.HouseholdID == householdID {
		return AccessOwned, nil
	}

	best := AccessNone
	if ingredient.IsPublic {
		best = AccessPublic
	}

	recipes, err := r.store.RecipesUsing(ctx, ingredientID)
	if err != nil {
		return AccessNone, fmt.Errorf("list using recipes: %w", err)
	}
	for _, recipe := range recipes {
		if recipe.HouseholdID == householdID {
			// The household's own recipe uses it; readable, but reachability
			// never confers ownership of somebody else's ingredient.
			if AccessSubscribed > best {
				best = AccessSubscribed
			}
			continue
		}
		collections, err := r.store.CollectionsContaining(ctx, recipe.ID)
		if err != nil {
			return AccessNone, fmt.Errorf("list containing collections: %w", err)
		}
		for _, collection := range collections {
			level, err := r.collectionLevel(ctx, householdID, collection)
			if err != nil {
				return AccessNone, err
			}
			if level > AccessSubscribed {
				level = AccessSubscribed
			}
			if level > best {
				best = level
			}
		}
	}
	return best, nil
}

// Gate decides whether a household may mutate a resource in place. Stricter
// than the Resolver on purpose: only stored ownership confers write access,
// never a revocable subscription or a mutable public flag.
type Gate struct {
	store Store
}

func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// CanMutate reports whether the resource's stored household_id equals
// householdID. A missing resource returns false with ErrNotFound; a store
// failure returns the failure itself so callers can tell "no" from "unknown".
func (g *Gate) CanMutate(ctx context.Context, householdID int64, resourceType ResourceType, id int64) (bool, error) {
	owner, err := g.ownerOf(ctx, resourceType, id)
	if err != nil {
		return false, err
	}
	return owner == householdID, nil
}

func (g *Gate) ownerOf(ctx context.Context, resourceType ResourceType, id int64) (int64, error) {
	switch resourceType {
	case ResourceCollection:
		collection, err := g.store.GetCollection(ctx, id)
		if err != nil {
			return 0, err
		}
		return collection.HouseholdID, nil
	case ResourceRecipe:
		recipe, err := g.store.GetRecipe(ctx, id)
		if err != nil {
			return 0, err
		}
		return recipe.HouseholdID, nil
	case ResourceIngredient:
		ingredient, err := g.store.GetIngredient(ctx, id)
		if err != nil {
			return 0, err
		}
		return ingredient.HouseholdID, nil
	default:
		return 0, fmt.Errorf("unknown resource type %q", resourceType)
	}
}
