package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndGetUserID(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, "test_user_1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := j.GetUserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "test_user_1", userID)

	assert.NoError(t, j.Validate(ctx, token))
}

func TestGetUserID_WrongKey(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret-a", time.Minute).Generate(ctx, "alice")
	assert.NoError(t, err)

	_, err = New("secret-b", time.Minute).GetUserID(ctx, token)
	assert.Error(t, err)
}

func TestGetUserID_Expired(t *testing.T) {
	j := New("test-secret", -time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, "alice")
	assert.NoError(t, err)

	_, err = j.GetUserID(ctx, token)
	assert.Error(t, err)
}

func TestGetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong format", header: "Token abc", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestUserIDContext(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)

	ctx = SetUserIDToContext(ctx, "alice")
	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", userID)
}
