package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Recipe struct {
	bun.BaseModel `bun:"table:recipes,alias:rec"`

	ID              int64     `bun:"id,pk,autoincrement"`
	HouseholdID     int64     `bun:"household_id,notnull"`
	Name            string    `bun:"name,notnull"`
	Description     string    `bun:"description"`
	PrepTimeMinutes int       `bun:"prep_time_minutes"`
	CookTimeMinutes int       `bun:"cook_time_minutes"`
	Servings        int       `bun:"servings"`
	ImageKey        string    `bun:"image_key"`
	ForkedFrom      *int64    `bun:"forked_from"`
	CreatedAt       time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt       time.Time `bun:"updated_at,notnull,default:current_timestamp"`

	// Relations
	Household   *Household    `bun:"rel:belongs-to,join:household_id=id"`
	Collections []*Collection `bun:"m2m:collection_recipes,join:Recipe=Collection"`
	Ingredients []*Ingredient `bun:"m2m:recipe_ingredients,join:Recipe=Ingredient"`
}
