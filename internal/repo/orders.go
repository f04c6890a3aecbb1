package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "user_email", "total", "status", "created_at",
	"delivery_address", "region", "comuna", "comments", "delivery_date",
}

type orderRepo struct {
	postgresRepo
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *orderRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.UserEmail, o.Total, o.Status.String(), o.CreatedAt,
			nullString(o.Delivery.Address), nullString(o.Delivery.Region),
			nullString(o.Delivery.Comuna), nullString(o.Delivery.Comments),
			nullTime(o.Delivery.Date),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Dependency("failed to save order", err)
	}
	return nil
}

// SaveItems stores items in submission order.
func (r *orderRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "product_code", "quantity", "unit_price")

	for i, it := range items {
		q = q.Values(orderID, i, it.ProductCode, it.Quantity, it.UnitPrice)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Dependency("failed to save order items", err)
	}
	return nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, entities.Dependency("failed to get order", err)
	}

	items, err := r.itemsOf(ctx, []string{id})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[id]), nil
}

// OrdersByUser returns the user's orders, newest first.
func (r *orderRepo) OrdersByUser(ctx context.Context, email string) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Eq{"user_email": email}, 0)
}

// AllOrders returns every order, newest first.
func (r *orderRepo) AllOrders(ctx context.Context) ([]entities.Order, error) {
	return r.listOrders(ctx, nil, 0)
}

// LatestOrders returns up to count most recent orders.
func (r *orderRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	return r.listOrders(ctx, nil, uint64(count))
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", status.String()).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return entities.Dependency("failed to update order status", err)
	}
	if err := affectedOne(res, entities.ErrOrderNotFound); err != nil {
		return entities.Dependency("failed to update order status", err)
	}
	return nil
}

func (r *orderRepo) listOrders(ctx context.Context, where sq.Sqlizer, limit uint64) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC", "id")
	if where != nil {
		q = q.Where(where)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, entities.Dependency("failed to select orders", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	itemsMap, err := r.itemsOf(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}
	return result, nil
}

// itemsOf загружает позиции сразу для нескольких заказов, сохраняя порядок внутри заказа
func (r *orderRepo) itemsOf(ctx context.Context, orderIDs []string) (map[string][]OrderItem, error) {
	query, args := r.qb.Select("id", "order_id", "position", "product_code", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, entities.Dependency("failed to select order items", err)
	}

	itemsMap := make(map[string][]OrderItem, len(orderIDs))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}
	return itemsMap, nil
}
