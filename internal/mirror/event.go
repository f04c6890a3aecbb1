package mirror

import (
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventOrderCreated  EventType = "order.created"
	EventStatusChanged EventType = "order.status_changed"
)

// OrderSnapshot is the full persisted state of an order as sent to the mirror.
type OrderSnapshot struct {
	ID        string          `json:"id"`
	UserEmail string          `json:"user_email"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []ItemSnapshot  `json:"items"`

	DeliveryAddress string     `json:"delivery_address,omitempty"`
	Region          string     `json:"region,omitempty"`
	Comuna          string     `json:"comuna,omitempty"`
	Comments        string     `json:"comments,omitempty"`
	DeliveryDate    *time.Time `json:"delivery_date,omitempty"`
}

type ItemSnapshot struct {
	ProductCode string          `json:"product_code"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// StatusChange carries only what changed.
type StatusChange struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}

func Snapshot(o entities.Order) OrderSnapshot {
	s := OrderSnapshot{
		ID:        o.ID,
		UserEmail: o.UserEmail,
		Status:    o.Status.String(),
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		Items:     make([]ItemSnapshot, 0, len(o.Items)),

		DeliveryAddress: o.Delivery.Address,
		Region:          o.Delivery.Region,
		Comuna:          o.Delivery.Comuna,
		Comments:        o.Delivery.Comments,
	}
	if !o.Delivery.Date.IsZero() {
		d := o.Delivery.Date
		s.DeliveryDate = &d
	}
	for _, it := range o.Items {
		s.Items = append(s.Items, ItemSnapshot{
			ProductCode: it.ProductCode,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return s
}
