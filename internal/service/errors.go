package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation")  // 400
	ErrCredentials = errors.New("credentials") // 401
	ErrNotFound    = errors.New("not found")   // 404
)

type StockShortage struct {
	ProductID uint   `json:"product_id"`
	Title     string `json:"title"`
	Requested uint   `json:"requested"`
	Available uint   `json:"available"`
}

// StockError rejects a whole checkout: it lists every line whose requested
// quantity exceeded the live stock. Nothing was mutated when it is
// returned.
type StockError struct {
	Shortages []StockShortage
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %d product(s)", len(e.Shortages))
}
