package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/services"
)

func TestProfileService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewProfileService(mockReader, mockWriter)

	t.Run("new profile is saved as given", func(t *testing.T) {
		in := models.UserDB{UserID: "u1", Name: "Amine", SkinType: "oily", Goals: models.Goals{"reduce acne"}}

		mockReader.EXPECT().GetByID(gomock.Any(), "u1").Return(nil, nil)
		mockWriter.EXPECT().Save(gomock.Any(), in).Return(nil)

		err := svc.Save(context.Background(), in)
		assert.NoError(t, err)
	})

	t.Run("existing password hash is preserved", func(t *testing.T) {
		existing := &models.UserDB{UserID: "u1", PasswordHash: "$2a$10$hash"}
		in := models.UserDB{UserID: "u1", Name: "Amine", SkinType: "dry"}

		mockReader.EXPECT().GetByID(gomock.Any(), "u1").Return(existing, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, saved models.UserDB) error {
				assert.Equal(t, "$2a$10$hash", saved.PasswordHash)
				assert.Equal(t, "dry", saved.SkinType)
				return nil
			})

		err := svc.Save(context.Background(), in)
		assert.NoError(t, err)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), "u1").Return(nil, errors.New("db error"))

		err := svc.Save(context.Background(), models.UserDB{UserID: "u1"})
		assert.EqualError(t, err, "db error")
	})

	t.Run("writer error", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), "u1").Return(nil, nil)
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("save error"))

		err := svc.Save(context.Background(), models.UserDB{UserID: "u1"})
		assert.EqualError(t, err, "save error")
	})
}

func TestProfileService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewProfileService(mockReader, mockWriter)

	t.Run("found", func(t *testing.T) {
		want := &models.UserDB{UserID: "u1", Name: "Amine"}
		mockReader.EXPECT().GetByID(gomock.Any(), "u1").Return(want, nil)

		got, err := svc.Get(context.Background(), "u1")
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)

		got, err := svc.Get(context.Background(), "ghost")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, got)
	})
}
