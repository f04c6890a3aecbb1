package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/pkg/trm"
	"github.com/agusnoopy3000/huertohogar-api/pkg/utils"
	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	OrdersByUser(ctx context.Context, email string) ([]entities.Order, error)
	AllOrders(ctx context.Context) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) error
}

type ProductLookup interface {
	ProductByCode(ctx context.Context, code string) (entities.Product, error)
}

type UserLookup interface {
	UserByEmail(ctx context.Context, email string) (entities.User, error)
}

type OrderCache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
	Delete(key string)
	DeleteFunc(fn func(key string, value entities.Order) bool) int
}

// Mirror receives committed orders. Calls must not block.
type Mirror interface {
	MirrorOrder(o entities.Order)
	MirrorStatus(orderID string, status entities.OrderStatus)
}

var readRetry = utils.RetryConfig{
	InitialDelay: 50 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	products  ProductLookup
	users     UserLookup
	cache     OrderCache
	mirror    Mirror
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	products ProductLookup,
	users UserLookup,
	cache OrderCache,
	mirror Mirror,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		products:  products,
		users:     users,
		cache:     cache,
		mirror:    mirror,
	}
}

// CreateOrder prices the draft against the catalog and stores it as PENDING.
func (s *orderService) CreateOrder(ctx context.Context, owner entities.Principal, draft entities.OrderDraft) (entities.Order, error) {
	now := time.Now().UTC()
	if err := draft.Validate(now); err != nil {
		return entities.Order{}, err
	}

	user, err := s.users.UserByEmail(ctx, owner.Email)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to resolve order owner: %w", err)
	}

	items := make([]entities.OrderItem, 0, len(draft.Items))
	for _, it := range draft.Items {
		product, err := s.products.ProductByCode(ctx, strings.TrimSpace(it.ProductCode))
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to resolve product %q: %w", it.ProductCode, err)
		}
		items = append(items, entities.OrderItem{
			ProductCode: product.Code,
			Quantity:    it.Quantity,
			UnitPrice:   product.Price,
		})
	}

	total := entities.CalculateTotal(items)
	if err := entities.CheckTotal(total); err != nil {
		return entities.Order{}, err
	}

	delivery := draft.Delivery
	if strings.TrimSpace(delivery.Address) == "" {
		delivery.Address = user.Address
	}

	order := entities.Order{
		ID:        uuid.NewString(),
		UserEmail: user.Email,
		Items:     items,
		Total:     total,
		Status:    entities.StatusPending,
		CreatedAt: now,
		Delivery:  delivery,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateOrder(ctx, order); err != nil {
			return err
		}
		return s.repo.SaveItems(ctx, order.ID, order.Items)
	})
	if err != nil {
		return entities.Order{}, entities.Dependency("failed to create order", err)
	}

	ordersCreated.Inc()
	s.logger.Info("order created",
		slog.String("order_id", order.ID),
		slog.String("user", order.UserEmail),
		slog.String("total", order.Total.String()),
	)
	s.mirror.MirrorOrder(order)

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	if order, ok := s.cache.Get(id); ok {
		cacheRequests.WithLabelValues("hit").Inc()
		return order, nil
	}
	cacheRequests.WithLabelValues("miss").Inc()

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn, entities.ErrNotFound); err != nil {
		return entities.Order{}, entities.Dependency("failed to get order", err)
	}

	s.cache.Set(id, order)
	return order, nil
}

// WarmUpCache loads the most recent orders into the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return entities.Dependency("failed to load latest orders", err)
	}
	for _, order := range orders {
		s.cache.Set(order.ID, order)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

// ForgetUser drops the cached orders of email. Called after the account and its
// orders are gone from the database.
func (s *orderService) ForgetUser(email string) {
	n := s.cache.DeleteFunc(func(_ string, o entities.Order) bool {
		return o.OwnedBy(email)
	})
	if n > 0 {
		s.logger.Info("evicted orders of deleted user", slog.String("user", email), slog.Int("orders", n))
	}
}

// ViewOrder returns the order if requester owns it or is an administrator.
func (s *orderService) ViewOrder(ctx context.Context, requester entities.Principal, id string) (entities.Order, error) {
	order, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !order.AccessibleBy(requester) {
		return entities.Order{}, entities.ErrNotOrderOwner
	}
	return order, nil
}

// GetOrdersByUser lists the user's orders, newest first.
func (s *orderService) GetOrdersByUser(ctx context.Context, email string) ([]entities.Order, error) {
	user, err := s.users.UserByEmail(ctx, entities.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	orders, err := s.repo.OrdersByUser(ctx, user.Email)
	if err != nil {
		return nil, entities.Dependency("failed to list user orders", err)
	}
	return orders, nil
}

// ListUserOrders lists orders of email, or of requester when email is empty.
// Only administrators may list someone else's orders.
func (s *orderService) ListUserOrders(ctx context.Context, requester entities.Principal, email string) ([]entities.Order, error) {
	if strings.TrimSpace(email) == "" {
		email = requester.Email
	}
	if !requester.IsAdmin() && !strings.EqualFold(email, requester.Email) {
		return nil, entities.ErrNotOrderOwner
	}
	return s.GetOrdersByUser(ctx, email)
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repo.AllOrders(ctx)
	if err != nil {
		return nil, entities.Dependency("failed to list orders", err)
	}
	return orders, nil
}

// UpdateOrderStatus moves the order along the workflow. Setting the current
// status again succeeds without any change.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, fmt.Errorf("%w: %q", entities.ErrUnknownStatus, status)
	}
	return s.changeStatus(ctx, id, status, nil)
}

// CancelOwnOrder cancels a PENDING order on behalf of its owner.
func (s *orderService) CancelOwnOrder(ctx context.Context, id string, requester entities.Principal) (entities.Order, error) {
	guard := func(order entities.Order) error {
		if !order.OwnedBy(requester.Email) {
			return entities.ErrNotOrderOwner
		}
		if order.Status != entities.StatusPending {
			return entities.ErrOrderNotPending
		}
		return nil
	}
	return s.changeStatus(ctx, id, entities.StatusCancelled, guard)
}

func (s *orderService) changeStatus(
	ctx context.Context,
	id string,
	status entities.OrderStatus,
	guard func(entities.Order) error,
) (entities.Order, error) {
	var (
		order   entities.Order
		from    entities.OrderStatus
		changed bool
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		if err != nil {
			return err
		}
		if guard != nil {
			if err := guard(order); err != nil {
				return err
			}
		}

		from = order.Status
		if from == status {
			return nil
		}
		if err := from.CheckTransition(status); err != nil {
			return err
		}
		if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
			return err
		}

		order.Status = status
		changed = true
		return nil
	})
	if err != nil {
		return entities.Order{}, entities.Dependency("failed to change order status", err)
	}

	if !changed {
		return order, nil
	}

	s.cache.Delete(id)
	statusChanges.WithLabelValues(from.String(), status.String()).Inc()
	s.logger.Info("order status changed",
		slog.String("order_id", id),
		slog.String("from", from.String()),
		slog.String("to", status.String()),
	)
	s.mirror.MirrorStatus(id, status)

	return order, nil
}
