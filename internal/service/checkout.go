package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ekarimov/restoran/internal/events"
	"github.com/ekarimov/restoran/internal/logging"
	"github.com/ekarimov/restoran/internal/models"
	"github.com/ekarimov/restoran/internal/pricing"
	"github.com/ekarimov/restoran/internal/repo"
	"github.com/ekarimov/restoran/internal/transport"
)

type CheckoutService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

// PlaceOrder converts the session's cart into a persisted order and
// decrements catalog stock. The stock check runs over every line before
// any write; a failed line rejects the whole checkout and leaves cart and
// catalog untouched. The cart is cleared only after the order committed.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, req transport.CheckoutRequest) (*models.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer_name required", ErrValidation)
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return nil, fmt.Errorf("%w: customer_phone required", ErrValidation)
	}
	if strings.TrimSpace(req.PlaceNumber) == "" {
		return nil, fmt.Errorf("%w: place_number required", ErrValidation)
	}

	var order *models.Order

	txErr := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		lines, err := tx.LoadCart(ctx, sessionID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return fmt.Errorf("%w: cart is empty", ErrValidation)
		}

		// Pass 1: validate every line against live stock before touching
		// anything.
		products := make(map[uint]*models.Product, len(lines))
		var shortages []StockShortage
		for _, l := range lines {
			prod, err := tx.GetProduct(ctx, l.ProductID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				shortages = append(shortages, StockShortage{
					ProductID: l.ProductID,
					Title:     l.Title,
					Requested: l.Quantity,
					Available: 0,
				})
				continue
			}
			if err != nil {
				return err
			}
			if prod.Stock < l.Quantity {
				shortages = append(shortages, StockShortage{
					ProductID: prod.ID,
					Title:     prod.Title,
					Requested: l.Quantity,
					Available: prod.Stock,
				})
				continue
			}
			products[l.ProductID] = prod
		}
		if len(shortages) > 0 {
			return &StockError{Shortages: shortages}
		}

		// Pass 2: conditional decrements. The stock >= quantity guard in
		// the UPDATE keeps the invariant even if another checkout slipped
		// in between the passes.
		for _, l := range lines {
			if err := tx.DecrementStock(ctx, l.ProductID, l.Quantity); err != nil {
				if errors.Is(err, repo.ErrInsufficientStock) {
					prod := products[l.ProductID]
					return &StockError{Shortages: []StockShortage{{
						ProductID: prod.ID,
						Title:     prod.Title,
						Requested: l.Quantity,
						Available: prod.Stock,
					}}}
				}
				return err
			}
		}

		items := make([]models.OrderItem, 0, len(lines))
		total := decimal.Zero
		for _, l := range lines {
			prod := products[l.ProductID]
			unit := pricing.Round2(pricing.EffectivePrice(prod.Price, prod.Discount))
			item := models.OrderItem{
				ProductID:     prod.ID,
				Title:         prod.Title,
				UnitPrice:     unit,
				OriginalPrice: prod.Price,
				Discount:      prod.Discount,
				Quantity:      l.Quantity,
			}
			total = total.Add(unit.Mul(decimal.NewFromInt(int64(l.Quantity))))
			items = append(items, item)
		}

		order = &models.Order{
			ID:            orderID(req.ID),
			Status:        models.OrderStatusPending,
			TotalAmount:   total,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			PlaceNumber:   req.PlaceNumber,
			Description:   req.Description,
			CreatedAt:     time.Now().UTC(),
			Items:         items,
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		return tx.ClearCart(ctx, sessionID)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.publish(ctx, order.ID, map[string]any{
		"type":    "order_created",
		"orderID": order.ID,
		"total":   order.TotalAmount,
		"place":   order.PlaceNumber,
	})
	return order, nil
}

// SetOrderStatus overwrites the order's status. Any transition between
// known statuses is allowed, including back to pending; cancelling does
// not restock. The operation is idempotent.
func (s *CheckoutService) SetOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	if !models.KnownStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	order, err := s.Repo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
		}
		return nil, err
	}

	s.publish(ctx, order.ID, map[string]any{
		"type":    "order_status_updated",
		"orderID": order.ID,
		"status":  order.Status,
	})
	return order, nil
}

func orderID(clientID string) string {
	if clientID != "" {
		return clientID
	}
	return fmt.Sprintf("ORD-%d", time.Now().UnixNano())
}

func (s *CheckoutService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, events.TopicOrders, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_failed", "error", err)
	}
}
