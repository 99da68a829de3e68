package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"inkatlas/backend/internal/repository"
	"inkatlas/backend/internal/repository/testutil"
)

func TestSettingsRepository_SetAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "ai.settings", `{"provider":"gemini"}`))

	setting, err := repo.Get(ctx, "ai.settings")
	require.NoError(t, err)
	require.NotNil(t, setting)
	require.Equal(t, `{"provider":"gemini"}`, setting.Value)
	require.False(t, setting.UpdatedAt.IsZero())
}

func TestSettingsRepository_Get_Missing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSettingsRepository(db)

	setting, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, setting)
}

func TestSettingsRepository_Set_Overwrites(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", "v1"))
	require.NoError(t, repo.Set(ctx, "k", "v2"))

	setting, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v2", setting.Value)
}

func TestSettingsRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", "v"))
	require.NoError(t, repo.Delete(ctx, "k"))

	setting, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, setting)
}
