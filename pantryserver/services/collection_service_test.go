package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pantrybook/pantry-server/internal/domain/sharing"
	"github.com/pantrybook/pantry-server/internal/domain/sharing/mock"
	"github.com/pantrybook/pantry-server/pantryserver/database/models"
	"go.uber.org/mock/gomock"
)

type fakeCollectionRepo struct {
	subscribed   [][2]int64
	unsubscribed [][2]int64
}

func (f *fakeCollectionRepo) Create(_ context.Context, _ *models.Collection) error { return nil }

func (f *fakeCollectionRepo) GetByID(_ context.Context, _ int64) (*models.Collection, error) {
	return nil, nil
}

func (f *fakeCollectionRepo) GetByHouseholdID(_ context.Context, _ int64) ([]*models.Collection, error) {
	return nil, nil
}

func (f *fakeCollectionRepo) Update(_ context.Context, _ *models.Collection) error { return nil }

func (f *fakeCollectionRepo) Delete(_ context.Context, _ int64) error { return nil }

func (f *fakeCollectionRepo) ListVisible(_ context.Context, _ int64) ([]*models.Collection, error) {
	return nil, nil
}

func (f *fakeCollectionRepo) Subscribe(_ context.Context, householdID, collectionID int64) error {
	f.subscribed = append(f.subscribed, [2]int64{householdID, collectionID})
	return nil
}

func (f *fakeCollectionRepo) Unsubscribe(_ context.Context, householdID, collectionID int64) error {
	f.unsubscribed = append(f.unsubscribed, [2]int64{householdID, collectionID})
	return nil
}

func (f *fakeCollectionRepo) AddRecipe(_ context.Context, _, _ int64) error { return nil }

func (f *fakeCollectionRepo) RemoveRecipe(_ context.Context, _, _ int64) error { return nil }

func (f *fakeCollectionRepo) GetRecipes(_ context.Context, _ int64) ([]*models.Recipe, error) {
	return nil, nil
}

func TestCollectionService_Subscribe(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(store *mock.MockStore)
		wantErr       error
		wantAnyErr    bool
		wantSubscribe bool
	}{
		{
			name: "public collection",
			setup: func(store *mock.MockStore) {
				store.EXPECT().GetCollection(gomock.Any(), int64(10)).Return(&models.Collection{ID: 10, HouseholdID: 2, IsPublic: true}, nil)
				store.EXPECT().IsSubscribed(gomock.Any(), int64(1), int64(10)).Return(false, nil)
			},
			wantSubscribe: true,
		},
		{
			name: "already subscribed is a no-op",
			setup: func(store *mock.MockStore) {
				store.EXPECT().GetCollection(gomock.Any(), int64(10)).Return(&models.Collection{ID: 10, HouseholdID: 2, IsPublic: true}, nil)
				store.EXPECT().IsSubscribed(gomock.Any(), int64(1), int64(10)).Return(true, nil)
			},
		},
		{
			name: "own collection is rejected",
			setup: func(store *mock.MockStore) {
				store.EXPECT().GetCollection(gomock.Any(), int64(10)).Return(&models.Collection{ID: 10, HouseholdID: 1}, nil)
			},
			wantAnyErr: true,
		},
		{
			name: "private collection stays invisible",
			setup: func(store *mock.MockStore) {
				store.EXPECT().GetCollection(gomock.Any(), int64(10)).Return(&models.Collection{ID: 10, HouseholdID: 2, IsPublic: false}, nil)
				store.EXPECT().IsSubscribed(gomock.Any(), int64(1), int64(10)).Return(false, nil)
			},
			wantErr: sharing.ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mock.NewMockStore(gomock.NewController(t))
			tt.setup(store)

			repo := &fakeCollectionRepo{}
			svc := NewCollectionService(repo, sharing.NewResolver(store))

			err := svc.Subscribe(context.Background(), 1, 10)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Subscribe() error = %v, want %v", err, tt.wantErr)
				}
			} else if tt.wantAnyErr {
				if err == nil {
					t.Fatal("Subscribe() expected an error")
				}
			} else if err != nil {
				t.Fatalf("Subscribe() error = %v", err)
			}

			if got := len(repo.subscribed) > 0; got != tt.wantSubscribe {
				t.Errorf("subscription written = %v, want %v", got, tt.wantSubscribe)
			}
		})
	}
}

func TestCollectionService_Unsubscribe(t *testing.T) {
	repo := &fakeCollectionRepo{}
	svc := NewCollectionService(repo, sharing.NewResolver(mock.NewMockStore(gomock.NewController(t))))

	if err := svc.Unsubscribe(context.Background(), 1, 10); err != nil {
		t.Fatalf("Unsubscribe() error = %v", err)
	}
	if len(repo.unsubscribed) != 1 {
		t.Fatal("unsubscribe must reach the repository")
	}
}
