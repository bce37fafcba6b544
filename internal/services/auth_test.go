package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		userID       string
		password     string
		email        string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			userID:   "alice",
			password: "pass123",
			email:    "alice@example.com",
			wantErr:  nil,
		},
		{
			name:         "user already exists",
			userID:       "bob",
			password:     "pass123",
			email:        "bob@example.com",
			existingUser: &models.UserDB{UserID: "bob"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			userID:    "eve",
			password:  "pass123",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			userID:    "carol",
			password:  "pass123",
			email:     "carol@example.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByID(gomock.Any(), tt.userID).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(tt.writerErr)
			}

			err := svc.Register(context.Background(), tt.userID, tt.password, tt.email)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		userID    string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			userID:    "alice",
			loginPass: password,
			user:      &models.UserDB{UserID: "alice", PasswordHash: string(hashed)},
			wantToken: "token123",
		},
		{
			name:      "user does not exist",
			userID:    "ghost",
			loginPass: password,
			wantErr:   services.ErrUserNotFound,
		},
		{
			name:      "wrong password",
			userID:    "alice",
			loginPass: "nope",
			user:      &models.UserDB{UserID: "alice", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			userID:    "alice",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "jwt error",
			userID:    "alice",
			loginPass: password,
			user:      &models.UserDB{UserID: "alice", PasswordHash: string(hashed)},
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByID(gomock.Any(), tt.userID).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID).
					Return(tt.wantToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.userID, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
