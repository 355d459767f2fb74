package utils

import (
	"context"
	"testing"

	"github.com/akarimli/tweetline/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFromContext_Present(t *testing.T) {
	want := models.User{UserID: 42, Username: "alice", Email: "alice@example.com"}
	ctx := context.WithValue(context.Background(), UserCtxKey, want)

	got, ok := UserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestUserFromContext_Missing(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)
}

func TestUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")

	_, ok := UserFromContext(ctx)
	assert.False(t, ok)
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "user", UserCtxKey.String())
}
