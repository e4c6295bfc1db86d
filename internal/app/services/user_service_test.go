package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sectiontrack/internal/app/models"
)

func TestListUsersReturnsEveryUser(t *testing.T) {
	m := newMemStore()
	m.users = []*models.User{{ID: 1, Username: "ada"}, {ID: 2, Username: "grace"}}

	users, err := NewUserService(m).ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "grace", users[1].Username)
}

func TestListUsersPropagatesFailure(t *testing.T) {
	m := newMemStore()
	m.failOn = errBoom

	_, err := NewUserService(m).ListUsers(context.Background())
	assert.ErrorIs(t, err, errBoom)
}
