package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekarimov/restoran/internal/models"
	"github.com/ekarimov/restoran/internal/transport"
)

func TestCreateProduct(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := &CatalogService{Repo: newTestRepo(t)}

	prod, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		Title:    "plov",
		Category: "main",
		Price:    decimal.NewFromInt(20),
		Discount: 10,
		Stock:    7,
	})
	require.NoError(t, err)
	assert.NotZero(t, prod.ID)
	assert.Equal(t, uint(7), prod.Stock)

	got, err := svc.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, "plov", got.Title)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(20)))
}

func TestCreateProduct_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := &CatalogService{Repo: newTestRepo(t)}

	_, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Price: decimal.NewFromInt(5)})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(ctx, transport.CreateProductRequest{Title: "x", Price: decimal.NewFromInt(-1)})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateProduct_ClampsDiscount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := &CatalogService{Repo: newTestRepo(t)}

	low, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Title: "a", Discount: -5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, low.Discount)

	high, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Title: "b", Discount: 150})
	require.NoError(t, err)
	assert.Equal(t, 100.0, high.Discount)
}

func TestPatchProduct(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := &CatalogService{Repo: newTestRepo(t)}

	prod, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		Title: "plov", Price: decimal.NewFromInt(20), Stock: 7,
	})
	require.NoError(t, err)

	price := decimal.NewFromInt(25)
	stock := uint(3)
	discount := 120.0
	patched, err := svc.PatchProduct(ctx, prod.ID, transport.PatchProductRequest{
		Price:    &price,
		Stock:    &stock,
		Discount: &discount,
	})
	require.NoError(t, err)
	assert.True(t, patched.Price.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, uint(3), patched.Stock)
	assert.Equal(t, 100.0, patched.Discount)
	assert.Equal(t, "plov", patched.Title)

	empty := ""
	_, err = svc.PatchProduct(ctx, prod.ID, transport.PatchProductRequest{Title: &empty})
	require.ErrorIs(t, err, ErrValidation)
}

func TestGetProducts_CategoryFilterAndPaging(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	for i := 0; i < 3; i++ {
		seedProduct(t, r, models.Product{Title: "main", Category: "main", Price: decimal.NewFromInt(10)})
	}
	seedProduct(t, r, models.Product{Title: "tea", Category: "drinks", Price: decimal.NewFromInt(3)})

	total, items, err := svc.GetProducts(ctx, "main", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 3)

	total, items, err = svc.GetProducts(ctx, "", 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, items, 2)

	total, items, err = svc.GetProducts(ctx, "soup", 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}

func TestDeleteProduct(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	p := seedProduct(t, r, models.Product{Title: "plov", Price: decimal.NewFromInt(20)})
	require.NoError(t, svc.DeleteProduct(ctx, p.ID))

	_, err := svc.GetProduct(ctx, p.ID)
	require.Error(t, err)
}
