package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Ingredient struct {
	bun.BaseModel `bun:"table:ingredients,alias:ing"`

	ID          int64     `bun:"id,pk,autoincrement"`
	HouseholdID int64     `bun:"household_id,notnull"`
	Name        string    `bun:"name,notnull"`
	IsPublic    bool      `bun:"is_public,notnull,default:false"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// RecipeIngredient carries the quantity/measure/preparation data for one
// ingredient of one recipe. These values are copied verbatim when a recipe
// is forked; only the ingredient reference may be rewired.
type RecipeIngredient struct {
	bun.BaseModel `bun:"table:recipe_ingredients,alias:ri"`

	RecipeID     int64   `bun:"recipe_id,pk"`
	IngredientID int64   `bun:"ingredient_id,pk"`
	Quantity     float64 `bun:"quantity"`
	Unit         string  `bun:"unit"`
	Preparation  string  `bun:"preparation"`

	Recipe     *Recipe     `bun:"rel:belongs-to,join:recipe_id=id"`
	Ingredient *Ingredient `bun:"rel:belongs-to,join:ingredient_id=id"`
}
