package repository

import (
	"context"
	"path/filepath"
	"testing"

	"vybevigil/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestAlertRepo(t *testing.T) AlertRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "alerts.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PriceAlert{}))

	return NewAlertRepository(db)
}

func TestAlertCreateAndList(t *testing.T) {
	repo := newTestAlertRepo(t)
	ctx := context.Background()

	alert := &model.PriceAlert{
		UserID:      42,
		MintAddress: "So11111111111111111111111111111111111111112",
		Threshold:   200,
	}
	require.NoError(t, repo.Create(ctx, alert))
	assert.NotZero(t, alert.ID)

	alerts, err := repo.GetByUser(ctx, 42)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, alert.MintAddress, alerts[0].MintAddress)
	assert.Equal(t, 200.0, alerts[0].Threshold)
}

func TestAlertGetByUserFiltersOthers(t *testing.T) {
	repo := newTestAlertRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.PriceAlert{UserID: 1, MintAddress: "m1", Threshold: 10}))
	require.NoError(t, repo.Create(ctx, &model.PriceAlert{UserID: 2, MintAddress: "m2", Threshold: 20}))

	alerts, err := repo.GetByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "m1", alerts[0].MintAddress)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAlertDelete(t *testing.T) {
	repo := newTestAlertRepo(t)
	ctx := context.Background()

	alert := &model.PriceAlert{UserID: 1, MintAddress: "m1", Threshold: 10}
	require.NoError(t, repo.Create(ctx, alert))
	require.NoError(t, repo.Delete(ctx, alert.ID))

	alerts, err := repo.GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
