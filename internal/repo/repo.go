package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ekarimov/restoran/internal/models"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type ProductRepository interface {
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	GetProducts(ctx context.Context, category string, offset, limit int) (int64, []models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	SaveProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	DecrementStock(ctx context.Context, productID, quantity uint) error
}

type OrderRepository interface {
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, status string, offset, limit int) (int64, []models.Order, error)
	CreateOrder(ctx context.Context, o *models.Order) error
	UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error)
}

type AdminRepository interface {
	GetAdmin(ctx context.Context, id uint) (*models.Admin, error)
	GetAdminByIDCard(ctx context.Context, idCard string) (*models.Admin, error)
	ListAdmins(ctx context.Context) ([]models.Admin, error)
	CountAdmins(ctx context.Context) (int64, error)
	CreateAdmin(ctx context.Context, a *models.Admin) error
	SaveAdmin(ctx context.Context, a *models.Admin) error
	DeleteAdmin(ctx context.Context, id uint) error
}

type CartRepository interface {
	LoadCart(ctx context.Context, sessionID string) ([]models.CartLine, error)
	ReplaceCart(ctx context.Context, sessionID string, lines []models.CartLine) error
	ClearCart(ctx context.Context, sessionID string) error
}

type GormRepo struct {
	DB *gorm.DB
}

var (
	_ ProductRepository = (*GormRepo)(nil)
	_ OrderRepository   = (*GormRepo)(nil)
	_ AdminRepository   = (*GormRepo)(nil)
	_ CartRepository    = (*GormRepo)(nil)
)

// Transaction runs fn against a tx-scoped repo. All writes inside fn commit
// or roll back together.
func (r *GormRepo) Transaction(ctx context.Context, fn func(tx *GormRepo) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepo{DB: tx})
	})
}
