package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxItemQuantity caps a single order line.
const MaxItemQuantity = 10_000

// maxOrderTotal is the first value that no longer fits orders.total NUMERIC(14, 2).
var maxOrderTotal = decimal.New(1, 12)

type Order struct {
	ID        string
	UserEmail string
	Items     []OrderItem
	Total     decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time

	Delivery DeliveryDetails
}

type OrderItem struct {
	ID          int64
	ProductCode string
	Quantity    int
	// снимок цены каталога на момент создания заказа
	UnitPrice decimal.Decimal
}

// DeliveryDetails is optional shipping information attached to an order.
type DeliveryDetails struct {
	Address  string
	Region   string
	Comuna   string
	Comments string
	// zero value means no preferred date
	Date time.Time
}

// OrderDraft is what a customer submits when placing an order.
type OrderDraft struct {
	Delivery DeliveryDetails
	Items    []ItemRequest
}

type ItemRequest struct {
	ProductCode string
	Quantity    int
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CalculateTotal sums unit price × quantity over items.
func CalculateTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// CheckTotal rejects totals that cannot be stored.
func CheckTotal(total decimal.Decimal) error {
	if total.IsNegative() || total.GreaterThanOrEqual(maxOrderTotal) {
		return ErrTotalTooLarge
	}
	return nil
}

// Validate checks the draft before any catalog lookup or write happens.
// today is the caller's current date; a requested delivery date before it is rejected.
func (d OrderDraft) Validate(today time.Time) error {
	if len(d.Items) == 0 {
		return ErrEmptyOrder
	}
	for _, it := range d.Items {
		if strings.TrimSpace(it.ProductCode) == "" {
			return ErrMissingProduct
		}
		if it.Quantity <= 0 || it.Quantity > MaxItemQuantity {
			return ErrInvalidQuantity
		}
	}
	if !d.Delivery.Date.IsZero() {
		y, m, day := today.Date()
		start := time.Date(y, m, day, 0, 0, 0, 0, today.Location())
		if d.Delivery.Date.Before(start) {
			return ErrPastDeliveryDate
		}
	}
	return nil
}

func (o Order) OwnedBy(email string) bool {
	return strings.EqualFold(o.UserEmail, email)
}

// AccessibleBy reports whether p may read the order: its owner or any administrator.
func (o Order) AccessibleBy(p Principal) bool {
	return p.IsAdmin() || o.OwnedBy(p.Email)
}
