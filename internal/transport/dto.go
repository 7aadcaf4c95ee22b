package transport

import (
	"github.com/shopspring/decimal"

	"github.com/ekarimov/restoran/internal/cart"
)

type CreateProductRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"img"`
	Price       decimal.Decimal `json:"price"`
	Discount    float64         `json:"discount"`
	Stock       uint            `json:"stock"`
}

type PatchProductRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Image       *string          `json:"img"`
	Price       *decimal.Decimal `json:"price"`
	Discount    *float64         `json:"discount"`
	Stock       *uint            `json:"stock"`
}

type AddCartItemRequest struct {
	ProductID uint `json:"product_id"`
}

type CartResponse struct {
	Items        []cart.Line     `json:"items"`
	TotalItems   uint            `json:"total_items"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	TotalSavings decimal.Decimal `json:"total_savings"`
}

type CheckoutRequest struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	PlaceNumber   string `json:"place_number"`
	Description   string `json:"description"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	IDCard   string `json:"id_card"`
	Password string `json:"password"`
}

type CreateAdminRequest struct {
	FullName string `json:"full_name"`
	IDCard   string `json:"id_card"`
	Password string `json:"password"`
}

type PatchAdminRequest struct {
	FullName *string `json:"full_name"`
	IDCard   *string `json:"id_card"`
	Password *string `json:"password"`
}
