package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ekarimov/restoran/internal/models"
	"github.com/ekarimov/restoran/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Admin{},
		&models.Order{},
		&models.OrderItem{},
		&models.CartLine{},
	))
	return &repo.GormRepo{DB: db}
}

func seedProduct(t *testing.T, r *repo.GormRepo, p models.Product) models.Product {
	t.Helper()
	require.NoError(t, r.CreateProduct(context.Background(), &p))
	return p
}

func seedCartLine(t *testing.T, r *repo.GormRepo, sessionID string, p models.Product, quantity uint) {
	t.Helper()

	lines, err := r.LoadCart(context.Background(), sessionID)
	require.NoError(t, err)

	lines = append(lines, models.CartLine{
		SessionID: sessionID,
		ProductID: p.ID,
		Title:     p.Title,
		UnitPrice: p.Price,
		Discount:  p.Discount,
		Stock:     p.Stock,
		Quantity:  quantity,
	})
	require.NoError(t, r.ReplaceCart(context.Background(), sessionID, lines))
}
