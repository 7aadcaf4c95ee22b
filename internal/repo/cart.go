package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/ekarimov/restoran/internal/models"
)

func (r *GormRepo) LoadCart(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.DB.WithContext(ctx).Where("session_id = ?", sessionID).Order("id ASC").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// ReplaceCart swaps the session's whole line set in one transaction. The
// cart is a single state container; partial line updates go through the
// cart state machine, not through here.
func (r *GormRepo) ReplaceCart(ctx context.Context, sessionID string, lines []models.CartLine) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].SessionID = sessionID
		}
		return tx.Create(&lines).Error
	})
}

func (r *GormRepo) ClearCart(ctx context.Context, sessionID string) error {
	return r.DB.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.CartLine{}).Error
}
