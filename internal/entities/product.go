package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64
	Code        string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Image       string
	Category    string
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.Code) == "" {
		return ErrMissingCode
	}
	if !p.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}
