package migration

import "time"

// Legacy document shapes as stored by the pre-rewrite MongoDB backend.
// Ids are mongo string ids; the importer assigns fresh int64 ids on insert
// and rewires references through in-memory maps.

type LegacyHousehold struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
}

type LegacyIngredient struct {
	ID          string `bson:"_id"`
	HouseholdID string `bson:"householdId"`
	Name        string `bson:"name"`
	Public      bool   `bson:"public"`
}

type LegacyRecipeIngredient struct {
	IngredientID string  `bson:"ingredientId"`
	Quantity     float64 `bson:"quantity"`
	Unit         string  `bson:"unit"`
	Note         string  `bson:"note"`
}

type LegacyRecipe struct {
	ID          string                   `bson:"_id"`
	HouseholdID string                   `bson:"householdId"`
	Name        string                   `bson:"name"`
	Description string                   `bson:"description"`
	PrepTime    int                      `bson:"prepTime"`
	CookTime    int                      `bson:"cookTime"`
	Servings    int                      `bson:"servings"`
	Image       string                   `bson:"image"`
	Ingredients []LegacyRecipeIngredient `bson:"ingredients"`
}

type LegacyCollection struct {
	ID          string   `bson:"_id"`
	HouseholdID string   `bson:"householdId"`
	Name        string   `bson:"name"`
	Description string   `bson:"description"`
	Public      bool     `bson:"public"`
	RecipeIDs   []string `bson:"recipeIds"`
	Subscribers []string `bson:"subscribers"`
}

// TableStats tracks per-table import counters
type TableStats struct {
	Read     int
	Inserted int
	Skipped  int
}

type ImportStats struct {
	Tables    map[string]*TableStats
	StartTime time.Time
}

func (s *ImportStats) table(name string) *TableStats {
	if s.Tables[name] == nil {
		s.Tables[name] = &TableStats{}
	}
	return s.Tables[name]
}
