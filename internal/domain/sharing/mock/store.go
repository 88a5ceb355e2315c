package mock

import (
	context "context"
	reflect "reflect"

	sharing "github.com/pantrybook/pantry-server/internal/domain/sharing"
	models "github.com/pantrybook/pantry-server/pantryserver/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockStore is a mock of Store interface.
type MockStore struct {
	ctrl     *gomock.Controller
	recorder *MockStoreMockRecorder
	isgomock struct{}
}

// MockStoreMockRecorder is the mock recorder for MockStore.
type MockStoreMockRecorder struct {
	mock *MockStore
}

// NewMockStore creates a new mock instance.
func NewMockStore(ctrl *gomock.Controller) *MockStore {
	mock := &MockStore{ctrl: ctrl}
	mock.recorder = &MockStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStore) EXPECT() *MockStoreMockRecorder {
	return m.recorder
}

// Atomic mocks base method.
func (m *MockStore) Atomic(ctx context.Context, fn func(context.Context, sharing.Store) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Atomic", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Atomic indicates an expected call of Atomic.
func (mr *MockStoreMockRecorder) Atomic(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Atomic", reflect.TypeOf((*MockStore)(nil).Atomic), ctx, fn)
}

// CollectionsContaining mocks base method.
func (m *MockStore) CollectionsContaining(ctx context.Context, recipeID int64) ([]*models.Collection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CollectionsContaining", ctx, recipeID)
	ret0, _ := ret[0].([]*models.Collection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CollectionsContaining indicates an expected call of CollectionsContaining.
func (mr *MockStoreMockRecorder) CollectionsContaining(ctx, recipeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CollectionsContaining", reflect.TypeOf((*MockStore)(nil).CollectionsContaining), ctx, recipeID)
}

// FindCollectionFork mocks base method.
func (m *MockStore) FindCollectionFork(ctx context.Context, householdID, sourceID int64) (*models.Collection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindCollectionFork", ctx, householdID, sourceID)
	ret0, _ := ret[0].(*models.Collection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindCollectionFork indicates an expected call of FindCollectionFork.
func (mr *MockStoreMockRecorder) FindCollectionFork(ctx, householdID, sourceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindCollectionFork", reflect.TypeOf((*MockStore)(nil).FindCollectionFork), ctx, householdID, sourceID)
}

// FindRecipeFork mocks base method.
func (m *MockStore) FindRecipeFork(ctx context.Context, householdID, sourceID int64) (*models.Recipe, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindRecipeFork", ctx, householdID, sourceID)
	ret0, _ := ret[0].(*models.Recipe)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindRecipeFork indicates an expected call of FindRecipeFork.
func (mr *MockStoreMockRecorder) FindRecipeFork(ctx, householdID, sourceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindRecipeFork", reflect.TypeOf((*MockStore)(nil).FindRecipeFork), ctx, householdID, sourceID)
}

// GetCollection mocks base method.
func (m *MockStore) GetCollection(ctx context.Context, id int64) (*models.Collection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCollection", ctx, id)
	ret0, _ := ret[0].(*models.Collection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCollection indicates an expected call of GetCollection.
func (mr *MockStoreMockRecorder) GetCollection(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCollection", reflect.TypeOf((*MockStore)(nil).GetCollection), ctx, id)
}

// GetIngredient mocks base method.
func (m *MockStore) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIngredient", ctx, id)
	ret0, _ := ret[0].(*models.Ingredient)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIngredient indicates an expected call of GetIngredient.
func (mr *MockStoreMockRecorder) GetIngredient(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIngredient", reflect.TypeOf((*MockStore)(nil).GetIngredient), ctx, id)
}

// GetRecipe mocks base method.
func (m *MockStore) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecipe", ctx, id)
	ret0, _ := ret[0].(*models.Recipe)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecipe indicates an expected call of GetRecipe.
func (mr *MockStoreMockRecorder) GetRecipe(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecipe", reflect.TypeOf((*MockStore)(nil).GetRecipe), ctx, id)
}

// IngredientsOf mocks base method.
func (m *MockStore) IngredientsOf(ctx context.Context, recipeID int64) ([]*models.RecipeIngredient, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IngredientsOf", ctx, recipeID)
	ret0, _ := ret[0].([]*models.RecipeIngredient)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IngredientsOf indicates an expected call of IngredientsOf.
func (mr *MockStoreMockRecorder) IngredientsOf(ctx, recipeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IngredientsOf", reflect.TypeOf((*MockStore)(nil).IngredientsOf), ctx, recipeID)
}

// InsertCollection mocks base method.
func (m *MockStore) InsertCollection(ctx context.Context, collection *models.Collection) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertCollection", ctx, collection)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertCollection indicates an expected call of InsertCollection.
func (mr *MockStoreMockRecorder) InsertCollection(ctx, collection any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertCollection", reflect.TypeOf((*MockStore)(nil).InsertCollection), ctx, collection)
}

// InsertIngredient mocks base method.
func (m *MockStore) InsertIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertIngredient", ctx, ingredient)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertIngredient indicates an expected call of InsertIngredient.
func (mr *MockStoreMockRecorder) InsertIngredient(ctx, ingredient any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertIngredient", reflect.TypeOf((*MockStore)(nil).InsertIngredient), ctx, ingredient)
}

// InsertRecipe mocks base method.
func (m *MockStore) InsertRecipe(ctx context.Context, recipe *models.Recipe) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertRecipe", ctx, recipe)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertRecipe indicates an expected call of InsertRecipe.
func (mr *MockStoreMockRecorder) InsertRecipe(ctx, recipe any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertRecipe", reflect.TypeOf((*MockStore)(nil).InsertRecipe), ctx, recipe)
}

// IsSubscribed mocks base method.
func (m *MockStore) IsSubscribed(ctx context.Context, householdID, collectionID int64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsSubscribed", ctx, householdID, collectionID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsSubscribed indicates an expected call of IsSubscribed.
func (mr *MockStoreMockRecorder) IsSubscribed(ctx, householdID, collectionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsSubscribed", reflect.TypeOf((*MockStore)(nil).IsSubscribed), ctx, householdID, collectionID)
}

// LinkCollectionRecipe mocks base method.
func (m *MockStore) LinkCollectionRecipe(ctx context.Context, link *models.CollectionRecipe) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LinkCollectionRecipe", ctx, link)
	ret0, _ := ret[0].(error)
	return ret0
}

// LinkCollectionRecipe indicates an expected call of LinkCollectionRecipe.
func (mr *MockStoreMockRecorder) LinkCollectionRecipe(ctx, link any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LinkCollectionRecipe", reflect.TypeOf((*MockStore)(nil).LinkCollectionRecipe), ctx, link)
}

// LinkRecipeIngredient mocks base method.
func (m *MockStore) LinkRecipeIngredient(ctx context.Context, link *models.RecipeIngredient) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LinkRecipeIngredient", ctx, link)
	ret0, _ := ret[0].(error)
	return ret0
}

// LinkRecipeIngredient indicates an expected call of LinkRecipeIngredient.
func (mr *MockStoreMockRecorder) LinkRecipeIngredient(ctx, link any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LinkRecipeIngredient", reflect.TypeOf((*MockStore)(nil).LinkRecipeIngredient), ctx, link)
}

// RecipesUsing mocks base method.
func (m *MockStore) RecipesUsing(ctx context.Context, ingredientID int64) ([]*models.Recipe, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecipesUsing", ctx, ingredientID)
	ret0, _ := ret[0].([]*models.Recipe)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecipesUsing indicates an expected call of RecipesUsing.
func (mr *MockStoreMockRecorder) RecipesUsing(ctx, ingredientID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecipesUsing", reflect.TypeOf((*MockStore)(nil).RecipesUsing), ctx, ingredientID)
}
