package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wordnest/internal/model"
	"wordnest/internal/repository/mocks"
)

func Test_userService_GetProfile(t *testing.T) {
	db := setupTestDB()
	mockRepo := new(mocks.UserRepository)
	svc := NewUserService(db, mockRepo)

	userID := uuid.New()
	ctx := context.Background()

	t.Run("returns the stored user", func(t *testing.T) {
		mockRepo.Mock = mock.Mock{}
		want := &model.User{UserID: userID, Name: "Alex", Email: "alex@example.com"}
		mockRepo.On("FindByID", ctx, db, userID).Return(want, nil).Once()

		got, err := svc.GetProfile(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, want, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found passes through", func(t *testing.T) {
		mockRepo.Mock = mock.Mock{}
		mockRepo.On("FindByID", ctx, db, userID).Return(nil, model.ErrNotFound).Once()

		_, err := svc.GetProfile(ctx, userID)

		assert.ErrorIs(t, err, model.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		mockRepo.Mock = mock.Mock{}
		mockRepo.On("FindByID", ctx, db, userID).Return(nil, errors.New("connection reset")).Once()

		_, err := svc.GetProfile(ctx, userID)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
		mockRepo.AssertExpectations(t)
	})
}

func Test_userService_UpdateProfile(t *testing.T) {
	db := setupTestDB()
	mockRepo := new(mocks.UserRepository)
	svc := NewUserService(db, mockRepo)

	userID := uuid.New()
	ctx := context.Background()

	t.Run("updates only the provided fields", func(t *testing.T) {
		mockRepo.Mock = mock.Mock{}
		newName := "Alexandra"
		want := &model.User{UserID: userID, Name: newName, Email: "alex@example.com"}

		mockRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), userID,
			map[string]interface{}{"name": newName}).Return(nil).Once()
		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(want, nil).Once()

		got, err := svc.UpdateProfile(ctx, userID, &model.UpdateProfileRequest{Name: &newName})

		require.NoError(t, err)
		assert.Equal(t, newName, got.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		mockRepo.Mock = mock.Mock{}

		_, err := svc.UpdateProfile(ctx, userID, &model.UpdateProfileRequest{})

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("unknown user maps to not found", func(t *testing.T) {
		mockRepo.Mock = mock.Mock{}
		newName := "Alexandra"
		mockRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), userID,
			map[string]interface{}{"name": newName}).Return(model.ErrNotFound).Once()

		_, err := svc.UpdateProfile(ctx, userID, &model.UpdateProfileRequest{Name: &newName})

		assert.ErrorIs(t, err, model.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}
