package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

func TestEnsureDemoData_FreshDatabase(t *testing.T) {
	_, deps := newTestDeps(t)
	svc := NewSeedService(deps.processor)

	deps.users.EXPECT().FindByUsername(mock.Anything, "demo").Return(nil, nil)
	deps.users.EXPECT().Insert(mock.Anything, &sqlconfig.UserCreate{Username: "demo", Email: "demo@finanzas.com"}).
		Return(int64(1), nil)
	deps.users.EXPECT().FindByID(mock.Anything, int64(1)).
		Return(&sqlconfig.User{ID: 1, Username: "demo", Email: "demo@finanzas.com"}, nil)
	deps.categories.EXPECT().Count(mock.Anything, int64(1)).Return(int64(0), nil)
	deps.categories.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.CategoryCreate) bool {
		return c.UserID == 1
	})).Return(int64(1), nil).Times(len(demoCategories))

	user, created, err := svc.EnsureDemoData(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "demo", user.Username)
	assert.Equal(t, 8, created)
	for _, category := range demoCategories {
		assert.Zero(t, category.UserID)
	}
}

func TestEnsureDemoData_AlreadySeeded(t *testing.T) {
	_, deps := newTestDeps(t)
	svc := NewSeedService(deps.processor)

	deps.users.EXPECT().FindByUsername(mock.Anything, "demo").Return(&sqlconfig.User{ID: 4, Username: "demo"}, nil)
	deps.categories.EXPECT().Count(mock.Anything, int64(4)).Return(int64(3), nil)

	user, created, err := svc.EnsureDemoData(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), user.ID)
	assert.Zero(t, created)
}
