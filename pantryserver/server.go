package pantryserver

import (
	"log/slog"

	"github.com/pantrybook/pantry-server/internal/domain/sharing"
	"github.com/pantrybook/pantry-server/pantryserver/database"
	"github.com/pantrybook/pantry-server/pantryserver/database/repositories"
	"github.com/pantrybook/pantry-server/pantryserver/logger"
	"github.com/pantrybook/pantry-server/pantryserver/services"
)

func New(cfg Config, version string, commit string) *Server {
	return &Server{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

// Server owns the lifecycle of every component: the store handle is created
// once here and injected into each constructor, never reached through a
// global.
type Server struct {
	Cfg     Config
	Version string
	Commit  string
	DB      *database.DB

	HouseholdRepository  repositories.HouseholdRepository
	CollectionRepository repositories.CollectionRepository
	RecipeRepository     repositories.RecipeRepository
	IngredientRepository repositories.IngredientRepository

	Resolver *sharing.Resolver
	Gate     *sharing.Gate
	Forker   *sharing.Forker

	CollectionService *services.CollectionService
	RecipeService     *services.RecipeService
	MediaService      *services.MediaService
}

// Setup wires repositories and services over the connected database. DB must
// be set before calling.
func (s *Server) Setup() {
	bunDB := s.DB.BunDB()

	s.HouseholdRepository = repositories.NewHouseholdRepository(bunDB)
	s.CollectionRepository = repositories.NewCollectionRepository(bunDB)
	s.RecipeRepository = repositories.NewRecipeRepository(bunDB)
	s.IngredientRepository = repositories.NewIngredientRepository(bunDB)

	store := repositories.NewSharingStore(bunDB)
	s.Resolver = sharing.NewResolver(store)
	s.Gate = sharing.NewGate(store)
	s.Forker = sharing.NewForker(store)

	s.CollectionService = services.NewCollectionService(s.CollectionRepository, s.Resolver)
	s.RecipeService = services.NewRecipeService(s.RecipeRepository, s.Gate, s.Forker)
	s.MediaService = services.NewMediaService(
		s.Cfg.Spaces.Key,
		s.Cfg.Spaces.Secret,
		s.Cfg.Spaces.Region,
		s.Cfg.Spaces.Bucket,
		s.Cfg.Spaces.MediaRoot,
	)

	logger.LogSystem("Components wired", slog.String("version", s.Version))
}

func (s *Server) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
