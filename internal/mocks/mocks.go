package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vegichef/backend/internal/model"
	"github.com/vegichef/backend/internal/types"
)

// MockSessionService is a mock implementation of the ISessionService interface
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Resolve(ctx context.Context, token string) (*model.User, string, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

// MockFavoriteService is a mock implementation of the IFavoriteService interface
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Toggle(ctx context.Context, userID uint, recipeName string) (bool, error) {
	args := m.Called(ctx, userID, recipeName)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteService) List(ctx context.Context, userID uint) ([]types.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Recipe), args.Error(1)
}

func (m *MockFavoriteService) Check(ctx context.Context, userID uint, recipeNames []string) ([]string, error) {
	args := m.Called(ctx, userID, recipeNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
