package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/conduit-core/internal/models"
	"github.com/sbilibin2017/conduit-core/internal/repositories"
	"github.com/sbilibin2017/conduit-core/internal/services"
)

func TestUserService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Username: "alice"}, nil)

		user, err := svc.GetByID(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		user, err := svc.GetByID(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()

	t.Run("bio and image updated", func(t *testing.T) {
		bio := "software developer"
		image := "https://example.com/a.png"

		mockWriter.EXPECT().
			Update(gomock.Any(), userID, models.UserUpdate{Bio: &bio, Image: &image}).
			Return(nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Bio: bio, Image: &image}, nil)

		user, err := svc.Update(context.Background(), userID, nil, nil, &bio, &image)
		assert.NoError(t, err)
		assert.Equal(t, bio, user.Bio)
	})

	t.Run("password is rehashed", func(t *testing.T) {
		pass := "newsecret"

		mockWriter.EXPECT().
			Update(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, upd models.UserUpdate) error {
				assert.NotNil(t, upd.PasswordHash)
				assert.NotEqual(t, pass, *upd.PasswordHash)
				return nil
			})
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID}, nil)

		_, err := svc.Update(context.Background(), userID, nil, &pass, nil, nil)
		assert.NoError(t, err)
	})

	t.Run("empty password rejected", func(t *testing.T) {
		empty := ""

		user, err := svc.Update(context.Background(), userID, nil, &empty, nil, nil)
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Nil(t, user)
	})

	t.Run("email taken", func(t *testing.T) {
		email := "taken@example.com"

		mockWriter.EXPECT().
			Update(gomock.Any(), userID, models.UserUpdate{Email: &email}).
			Return(repositories.ErrDuplicateEmail)

		user, err := svc.Update(context.Background(), userID, &email, nil, nil, nil)
		assert.ErrorIs(t, err, services.ErrEmailTaken)
		assert.Nil(t, user)
	})

	t.Run("user gone", func(t *testing.T) {
		bio := "bio"

		mockWriter.EXPECT().
			Update(gomock.Any(), userID, models.UserUpdate{Bio: &bio}).
			Return(sql.ErrNoRows)

		user, err := svc.Update(context.Background(), userID, nil, nil, &bio, nil)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, user)
	})
}
