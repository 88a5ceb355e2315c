package migration

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/pantrybook/pantry-server/pantryserver/config"
	"github.com/pantrybook/pantry-server/pantryserver/database/models"
	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

// Importer copies the legacy MongoDB dataset into Postgres. Import order is
// fixed by foreign keys: households, then ingredients, then recipes with
// their ingredient joins, then collections with memberships and
// subscriptions. Within a family, batches insert concurrently.
type Importer struct {
	pgDB      *bun.DB
	mongoDB   *mongo.Database
	batchSize int

	stats ImportStats

	// legacy id -> new id maps, filled as each family lands
	householdIDs  map[string]int64
	ingredientIDs map[string]int64
	recipeIDs     map[string]int64
}

func NewImporter(pgDB *bun.DB, mongoDB *mongo.Database) *Importer {
	return &Importer{
		pgDB:      pgDB,
		mongoDB:   mongoDB,
		batchSize: config.DefaultBatchSize,
		stats: ImportStats{
			Tables:    make(map[string]*TableStats),
			StartTime: time.Now(),
		},
		householdIDs:  make(map[string]int64),
		ingredientIDs: make(map[string]int64),
		recipeIDs:     make(map[string]int64),
	}
}

func (m *Importer) ImportAll(ctx context.Context) error {
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"households", m.importHouseholds},
		{"ingredients", m.importIngredients},
		{"recipes", m.importRecipes},
		{"collections", m.importCollections},
	}

	for _, step := range steps {
		start := time.Now()
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("import %s: %w", step.name, err)
		}
		stats := m.stats.table(step.name)
		slog.Info("Import step finished",
			slog.String("type", "DB"),
			slog.String("step", step.name),
			slog.Int("read", stats.Read),
			slog.Int("inserted", stats.Inserted),
			slog.Int("skipped", stats.Skipped),
			slog.Duration("took", time.Since(start)))
	}
	return nil
}

func (m *Importer) importHouseholds(ctx context.Context) error {
	var docs []LegacyHousehold
	if err := m.loadAll(ctx, "households", &docs); err != nil {
		return err
	}
	stats := m.stats.table("households")
	stats.Read = len(docs)

	for _, doc := range docs {
		household := &models.Household{
			Name:      doc.Name,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, err := m.pgDB.NewInsert().Model(household).Exec(ctx); err != nil {
			return err
		}
		m.householdIDs[doc.ID] = household.ID
		stats.Inserted++
	}
	return nil
}

func (m *Importer) importIngredients(ctx context.Context) error {
	var docs []LegacyIngredient
	if err := m.loadAll(ctx, "ingredients", &docs); err != nil {
		return err
	}
	stats := m.stats.table("ingredients")
	stats.Read = len(docs)

	for _, doc := range docs {
		householdID, ok := m.householdIDs[doc.HouseholdID]
		if !ok {
			stats.Skipped++
			continue
		}
		ingredient := &models.Ingredient{
			HouseholdID: householdID,
			Name:        doc.Name,
			IsPublic:    doc.Public,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if _, err := m.pgDB.NewInsert().Model(ingredient).Exec(ctx); err != nil {
			return err
		}
		m.ingredientIDs[doc.ID] = ingredient.ID
		stats.Inserted++
	}
	return nil
}

func (m *Importer) importRecipes(ctx context.Context) error {
	var docs []LegacyRecipe
	if err := m.loadAll(ctx, "recipes", &docs); err != nil {
		return err
	}
	stats := m.stats.table("recipes")
	stats.Read = len(docs)

	var joins []*models.RecipeIngredient
	for _, doc := range docs {
		householdID, ok := m.householdIDs[doc.HouseholdID]
		if !ok {
			stats.Skipped++
			continue
		}
		recipe := &models.Recipe{
			HouseholdID:     householdID,
			Name:            doc.Name,
			Description:     doc.Description,
			PrepTimeMinutes: doc.PrepTime,
			CookTimeMinutes: doc.CookTime,
			Servings:        doc.Servings,
			ImageKey:        doc.Image,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}
		if _, err := m.pgDB.NewInsert().Model(recipe).Exec(ctx); err != nil {
			return err
		}
		m.recipeIDs[doc.ID] = recipe.ID
		stats.Inserted++

		for _, line := range doc.Ingredients {
			ingredientID, ok := m.ingredientIDs[line.IngredientID]
			if !ok {
				continue
			}
			joins = append(joins, &models.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: ingredientID,
				Quantity:     line.Quantity,
				Unit:         line.Unit,
				Preparation:  line.Note,
			})
		}
	}
	return insertBatches(ctx, m.pgDB, "recipe_ingredients", joins, m.batchSize)
}

func (m *Importer) importCollections(ctx context.Context) error {
	var docs []LegacyCollection
	if err := m.loadAll(ctx, "collections", &docs); err != nil {
		return err
	}
	stats := m.stats.table("collections")
	stats.Read = len(docs)

	var links []*models.CollectionRecipe
	var subs []*models.CollectionSubscription
	for _, doc := range docs {
		householdID, ok := m.householdIDs[doc.HouseholdID]
		if !ok {
			stats.Skipped++
			continue
		}
		collection := &models.Collection{
			HouseholdID: householdID,
			Name:        doc.Name,
			Description: doc.Description,
			IsPublic:    doc.Public,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if _, err := m.pgDB.NewInsert().Model(collection).Exec(ctx); err != nil {
			return err
		}
		stats.Inserted++

		for _, legacyRecipeID := range doc.RecipeIDs {
			recipeID, ok := m.recipeIDs[legacyRecipeID]
			if !ok {
				continue
			}
			links = append(links, &models.CollectionRecipe{
				CollectionID: collection.ID,
				RecipeID:     recipeID,
				CreatedAt:    time.Now(),
			})
		}
		for _, subscriber := range doc.Subscribers {
			subscriberID, ok := m.householdIDs[subscriber]
			if !ok || subscriberID == householdID {
				continue
			}
			subs = append(subs, &models.CollectionSubscription{
				HouseholdID:  subscriberID,
				CollectionID: collection.ID,
				CreatedAt:    time.Now(),
			})
		}
	}

	if err := insertBatches(ctx, m.pgDB, "collection_recipes", links, m.batchSize); err != nil {
		return err
	}
	return insertBatches(ctx, m.pgDB, "collection_subscriptions", subs, m.batchSize)
}

func (m *Importer) loadAll(ctx context.Context, collection string, out interface{}) error {
	cursor, err := m.mongoDB.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

// insertBatches inserts join rows in concurrent fixed-size batches. Join rows
// have no cross-batch dependencies, so batch order does not matter.
func insertBatches[T any](ctx context.Context, db *bun.DB, table string, rows []*T, batchSize int) error {
	if len(rows) == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		batch := rows[start:end]
		g.Go(func() error {
			if _, err := db.NewInsert().Model(&batch).Exec(gctx); err != nil {
				return fmt.Errorf("insert %s batch: %w", table, err)
			}
			return nil
		})
	}
	return g.Wait()
}
