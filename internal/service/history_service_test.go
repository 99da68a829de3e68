package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"inkatlas/backend/internal/model"
	"inkatlas/backend/internal/service"
)

func TestHistoryList_LimitClamping(t *testing.T) {
	repo := &historyRepoStub{}
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Insert(context.Background(), model.SearchRecord{
			City: "London", Source: model.SourceCatalog,
		}))
	}
	svc := service.NewHistoryService(repo)

	records, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 3)

	records, err = svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)

	_, err = svc.List(context.Background(), 100000)
	require.NoError(t, err, "oversized limits are clamped, not rejected")
}

func TestHistoryPrune(t *testing.T) {
	repo := &historyRepoStub{}
	old := model.SearchRecord{City: "Rome", Source: model.SourceCatalog, CreatedAt: time.Now().UTC().Add(-48 * time.Hour)}
	fresh := model.SearchRecord{City: "Venice", Source: model.SourceCatalog, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Insert(context.Background(), old))
	require.NoError(t, repo.Insert(context.Background(), fresh))

	svc := service.NewHistoryService(repo)
	deleted, err := svc.Prune(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	records, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Venice", records[0].City)
}
