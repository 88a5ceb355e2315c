package services

import (
	"context"
	"fmt"

	"github.com/pantrybook/pantry-server/internal/domain/sharing"
	"github.com/pantrybook/pantry-server/pantryserver/database/models"
	"github.com/pantrybook/pantry-server/pantryserver/database/repositories"
)

// CollectionService covers the read-side browsing surface: which collections
// a household can see and the subscription lifecycle granting that access.
type CollectionService struct {
	collectionRepo repositories.CollectionRepository
	resolver       *sharing.Resolver
}

func NewCollectionService(collectionRepo repositories.CollectionRepository, resolver *sharing.Resolver) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		resolver:       resolver,
	}
}

// ListVisible returns every collection the household can read.
func (s *CollectionService) ListVisible(ctx context.Context, householdID int64) ([]*models.Collection, error) {
	collections, err := s.collectionRepo.ListVisible(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list visible collections: %w", err)
	}
	return collections, nil
}

// Subscribe grants the household read access to a collection it does not own.
// Subscribing to an owned collection is rejected: ownership already grants
// more than a subscription ever could.
func (s *CollectionService) Subscribe(ctx context.Context, householdID, collectionID int64) error {
	level, err := s.resolver.ResolveAccess(ctx, householdID, sharing.ResourceRef{
		Type: sharing.ResourceCollection,
		ID:   collectionID,
	})
	if err != nil {
		return err
	}
	switch level {
	case sharing.AccessOwned:
		return fmt.Errorf("collection %d: cannot subscribe to an owned collection", collectionID)
	case sharing.AccessSubscribed:
		// Already subscribed; nothing to do.
		return nil
	case sharing.AccessNone:
		// Private collections are invisible; a subscription must not lift that.
		return fmt.Errorf("collection %d: %w", collectionID, sharing.ErrAccessDenied)
	}
	return s.collectionRepo.Subscribe(ctx, householdID, collectionID)
}

// Unsubscribe revokes the household's subscription. Resources the household
// forked while subscribed stay owned by it; only shared read access ends.
func (s *CollectionService) Unsubscribe(ctx context.Context, householdID, collectionID int64) error {
	return s.collectionRepo.Unsubscribe(ctx, householdID, collectionID)
}
