package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Collection is a named, shareable container of recipes. Visibility to other
// households comes from a subscription row or the public flag; mutation rights
// come from ownership only.
type Collection struct {
	bun.BaseModel `bun:"table:collections,alias:col"`

	ID          int64     `bun:"id,pk,autoincrement"`
	HouseholdID int64     `bun:"household_id,notnull"`
	Name        string    `bun:"name,notnull"`
	Description string    `bun:"description"`
	IsPublic    bool      `bun:"is_public,notnull,default:false"`
	ForkedFrom  *int64    `bun:"forked_from"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp"`

	// Relations
	Household *Household `bun:"rel:belongs-to,join:household_id=id"`
	Recipes   []*Recipe  `bun:"m2m:collection_recipes,join:Collection=Recipe"`
}

// CollectionSubscription grants a household read access to a collection it
// does not own. Unique per (household, collection).
type CollectionSubscription struct {
	bun.BaseModel `bun:"table:collection_subscriptions,alias:sub"`

	HouseholdID  int64     `bun:"household_id,pk"`
	CollectionID int64     `bun:"collection_id,pk"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// CollectionRecipe links a recipe into a collection. The recipe's owner is
// independent of the collection's owner.
type CollectionRecipe struct {
	bun.BaseModel `bun:"table:collection_recipes,alias:cr"`

	CollectionID int64     `bun:"collection_id,pk"`
	RecipeID     int64     `bun:"recipe_id,pk"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`

	Collection *Collection `bun:"rel:belongs-to,join:collection_id=id"`
	Recipe     *Recipe     `bun:"rel:belongs-to,join:recipe_id=id"`
}
