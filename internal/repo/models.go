package repo

import (
	"database/sql"
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID        string          `db:"id"`
	UserEmail string          `db:"user_email"`
	Total     decimal.Decimal `db:"total"`
	Status    string          `db:"status"`
	CreatedAt time.Time       `db:"created_at"`

	DeliveryAddress sql.NullString `db:"delivery_address"`
	Region          sql.NullString `db:"region"`
	Comuna          sql.NullString `db:"comuna"`
	Comments        sql.NullString `db:"comments"`
	DeliveryDate    sql.NullTime   `db:"delivery_date"`
}

type OrderItem struct {
	ID          int64           `db:"id"`
	OrderID     string          `db:"order_id"`
	Position    int             `db:"position"`
	ProductCode string          `db:"product_code"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
}

type Product struct {
	ID          int64           `db:"id"`
	Code        string          `db:"code"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	Image       string          `db:"image"`
	Category    string          `db:"category"`
}

type User struct {
	Email        string         `db:"email"`
	Run          sql.NullString `db:"run"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	PasswordHash string         `db:"password_hash"`
	Address      sql.NullString `db:"address"`
	Phone        sql.NullString `db:"phone"`
	Role         string         `db:"role"`
	CreatedAt    time.Time      `db:"created_at"`
}

type Document struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Key       string    `db:"s3_key"`
	PublicURL string    `db:"public_url"`
	UserEmail string    `db:"user_email"`
	CreatedAt time.Time `db:"created_at"`
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:          i.ID,
		ProductCode: i.ProductCode,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:        o.ID,
		UserEmail: o.UserEmail,
		Total:     o.Total,
		Status:    entities.OrderStatus(o.Status),
		CreatedAt: o.CreatedAt,
		Delivery: entities.DeliveryDetails{
			Address:  nullStringToString(o.DeliveryAddress),
			Region:   nullStringToString(o.Region),
			Comuna:   nullStringToString(o.Comuna),
			Comments: nullStringToString(o.Comments),
		},
	}
	if o.DeliveryDate.Valid {
		order.Delivery.Date = o.DeliveryDate.Time
	}

	order.Items = make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}

	return order
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		Category:    p.Category,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		Email:        u.Email,
		Run:          nullStringToString(u.Run),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PasswordHash: u.PasswordHash,
		Address:      nullStringToString(u.Address),
		Phone:        nullStringToString(u.Phone),
		Role:         entities.Role(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

func DocumentToEntity(d Document) entities.Document {
	return entities.Document(d)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
