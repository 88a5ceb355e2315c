package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pantrybook/pantry-server/internal/domain/sharing"
	"github.com/pantrybook/pantry-server/pantryserver/database/models"
	"github.com/pantrybook/pantry-server/pantryserver/database/repositories"
	"github.com/pantrybook/pantry-server/pantryserver/logger"
)

// RecipePatch carries the editable recipe fields. Nil means "leave as is".
type RecipePatch struct {
	Name            *string
	Description     *string
	PrepTimeMinutes *int
	CookTimeMinutes *int
	Servings        *int
}

// RecipeUpdate reports where an edit actually landed. When the household did
// not own the source, Forked is true and the ids point at its private copy.
type RecipeUpdate struct {
	CollectionID int64
	RecipeID     int64
	Forked       bool
}

// RecipeService is the "edit shared recipe" entry point. It asks the Gate
// whether the household may mutate in place; if not, it forks first and
// applies the edit to the copy. Call sites never query household_id directly.
type RecipeService struct {
	recipeRepo repositories.RecipeRepository
	gate       *sharing.Gate
	forker     *sharing.Forker
}

func NewRecipeService(recipeRepo repositories.RecipeRepository, gate *sharing.Gate, forker *sharing.Forker) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		gate:       gate,
		forker:     forker,
	}
}

// UpdateRecipe applies patch to the recipe, forking the (collection, recipe)
// pair into the household's ownership first when it is not the owner.
func (s *RecipeService) UpdateRecipe(ctx context.Context, householdID, collectionID, recipeID int64, patch RecipePatch) (*RecipeUpdate, error) {
	target, err := s.resolveTarget(ctx, householdID, collectionID, recipeID)
	if err != nil {
		return nil, err
	}

	recipe, err := s.recipeRepo.GetByID(ctx, target.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("load recipe for update: %w", err)
	}
	applyPatch(recipe, patch)
	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return target, nil
}

// UpdateRecipeImage points the recipe at a new image key, forking first when
// the household does not own it. The physical object is the caller's concern.
func (s *RecipeService) UpdateRecipeImage(ctx context.Context, householdID, collectionID, recipeID int64, imageKey string) (*RecipeUpdate, error) {
	target, err := s.resolveTarget(ctx, householdID, collectionID, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.recipeRepo.SetImageKey(ctx, target.RecipeID, imageKey); err != nil {
		return nil, fmt.Errorf("set image key: %w", err)
	}
	return target, nil
}

func (s *RecipeService) resolveTarget(ctx context.Context, householdID, collectionID, recipeID int64) (*RecipeUpdate, error) {
	canMutate, err := s.gate.CanMutate(ctx, householdID, sharing.ResourceRecipe, recipeID)
	if err != nil {
		return nil, err
	}
	if canMutate {
		return &RecipeUpdate{CollectionID: collectionID, RecipeID: recipeID}, nil
	}

	start := time.Now()
	forked, err := s.forker.ForkForMutation(ctx, householdID, collectionID, recipeID)
	logger.LogFork(householdID, collectionID, recipeID, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &RecipeUpdate{
		CollectionID: forked.CollectionID,
		RecipeID:     forked.RecipeID,
		Forked:       true,
	}, nil
}

func applyPatch(recipe *models.Recipe, patch RecipePatch) {
	if patch.Name != nil {
		recipe.Name = *patch.Name
	}
	if patch.Description != nil {
		recipe.Description = *patch.Description
	}
	if patch.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = *patch.PrepTimeMinutes
	}
	if patch.CookTimeMinutes != nil {
		recipe.CookTimeMinutes = *patch.CookTimeMinutes
	}
	if patch.Servings != nil {
		recipe.Servings = *patch.Servings
	}
}
