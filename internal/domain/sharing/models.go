package sharing

// AccessLevel classifies a household's relationship to a resource. Levels are
// ordered so the strongest applicable one wins when several grants overlap.
type AccessLevel int

const (
	AccessNone AccessLevel = iota
	AccessPublic
	AccessSubscribed
	AccessOwned
)

func (l AccessLevel) String() string {
	switch l {
	case AccessOwned:
		return "owned"
	case AccessSubscribed:
		return "subscribed"
	case AccessPublic:
		return "public"
	default:
		return "none"
	}
}

// Readable reports whether the level grants at least read access.
func (l AccessLevel) Readable() bool {
	return l > AccessNone
}

type ResourceType string

const (
	ResourceCollection ResourceType = "collection"
	ResourceRecipe     ResourceType = "recipe"
	ResourceIngredient ResourceType = "ingredient"
)

// ResourceRef identifies the resource whose access is being resolved.
type ResourceRef struct {
	Type ResourceType
	ID   int64
}

// ForkResult carries the identifiers of a household's private copy after a
// copy-on-write fork. Callers continue their mutation against these ids.
type ForkResult struct {
	CollectionID int64
	RecipeID     int64
}
