package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/service"
	mocks "github.com/agusnoopy3000/huertohogar-api/internal/service/mocks"
	"github.com/agusnoopy3000/huertohogar-api/pkg/cache"
	txMocks "github.com/agusnoopy3000/huertohogar-api/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderDeps struct {
	tx       *txMocks.MockManager
	repo     *mocks.MockOrderRepo
	products *mocks.MockProductLookup
	users    *mocks.MockUserLookup
	cache    *mocks.MockOrderCache
	mirror   *mocks.MockMirror
}

func newOrderDeps(t *testing.T) orderDeps {
	return orderDeps{
		tx:       txMocks.NewMockManager(t),
		repo:     mocks.NewMockOrderRepo(t),
		products: mocks.NewMockProductLookup(t),
		users:    mocks.NewMockUserLookup(t),
		cache:    mocks.NewMockOrderCache(t),
		mirror:   mocks.NewMockMirror(t),
	}
}

type orderService interface {
	CreateOrder(ctx context.Context, owner entities.Principal, draft entities.OrderDraft) (entities.Order, error)
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	ViewOrder(ctx context.Context, requester entities.Principal, id string) (entities.Order, error)
	ListUserOrders(ctx context.Context, requester entities.Principal, email string) ([]entities.Order, error)
	GetAllOrders(ctx context.Context) ([]entities.Order, error)
	WarmUpCache(ctx context.Context, count int) error
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	CancelOwnOrder(ctx context.Context, id string, requester entities.Principal) (entities.Order, error)
}

func (d orderDeps) newService() orderService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, d.tx, d.repo, d.products, d.users, d.cache, d.mirror)
}

func (d orderDeps) runTx() {
	d.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			})
}

var (
	customer = entities.Principal{Email: "ana@duoc.cl", Role: entities.RoleUser}
	admin    = entities.Principal{Email: "admin@duoc.cl", Role: entities.RoleAdmin}

	customerUser = entities.User{
		Email:   "ana@duoc.cl",
		Address: "Av. Siempre Viva 742",
		Role:    entities.RoleUser,
	}

	carrots = entities.Product{ID: 1, Code: "VRD-001", Name: "Zanahorias Orgánicas", Price: decimal.NewFromInt(1000), Stock: 100}
	honey   = entities.Product{ID: 2, Code: "PO-001", Name: "Miel Orgánica", Price: decimal.RequireFromString("5000.50"), Stock: 50}
)

func pendingOrder(id string) entities.Order {
	return entities.Order{
		ID:        id,
		UserEmail: customer.Email,
		Status:    entities.StatusPending,
		Total:     decimal.NewFromInt(3000),
		Items: []entities.OrderItem{
			{ProductCode: "VRD-001", Quantity: 3, UnitPrice: decimal.NewFromInt(1000)},
		},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	d := newOrderDeps(t)
	d.runTx()

	d.users.EXPECT().UserByEmail(mock.Anything, customer.Email).Return(customerUser, nil).Once()
	d.products.EXPECT().ProductByCode(mock.Anything, "VRD-001").Return(carrots, nil).Once()

	var saved entities.Order
	d.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Run(func(_ context.Context, o entities.Order) { saved = o }).
		Return(nil).Once()
	d.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	d.mirror.EXPECT().MirrorOrder(mock.Anything).Return().Once()

	before := time.Now().UTC()
	draft := entities.OrderDraft{Items: []entities.ItemRequest{{ProductCode: "VRD-001", Quantity: 3}}}

	got, err := d.newService().CreateOrder(context.Background(), customer, draft)
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, entities.StatusPending, got.Status)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(3000)), "total %s", got.Total)
	assert.Equal(t, customer.Email, got.UserEmail)
	assert.False(t, got.CreatedAt.Before(before))
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].UnitPrice.Equal(carrots.Price))

	assert.Equal(t, got, saved)
	// адрес доставки берётся из профиля
	assert.Equal(t, customerUser.Address, got.Delivery.Address)
}

func TestOrderService_CreateOrder_KeepsItemOrderAndExactTotal(t *testing.T) {
	d := newOrderDeps(t)
	d.runTx()

	d.users.EXPECT().UserByEmail(mock.Anything, customer.Email).Return(customerUser, nil).Once()
	d.products.EXPECT().ProductByCode(mock.Anything, "PO-001").Return(honey, nil).Once()
	d.products.EXPECT().ProductByCode(mock.Anything, "VRD-001").Return(carrots, nil).Once()
	d.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()
	d.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, items []entities.OrderItem) {
			require.Len(t, items, 2)
			assert.Equal(t, "PO-001", items[0].ProductCode)
			assert.Equal(t, "VRD-001", items[1].ProductCode)
		}).
		Return(nil).Once()
	d.mirror.EXPECT().MirrorOrder(mock.Anything).Return().Once()

	draft := entities.OrderDraft{
		Delivery: entities.DeliveryDetails{Address: "Calle Falsa 123", Comuna: "Ñuñoa"},
		Items: []entities.ItemRequest{
			{ProductCode: "PO-001", Quantity: 3},
			{ProductCode: "VRD-001", Quantity: 1},
		},
	}

	got, err := d.newService().CreateOrder(context.Background(), customer, draft)
	require.NoError(t, err)

	assert.Equal(t, "16001.5", got.Total.String())
	assert.Equal(t, "Calle Falsa 123", got.Delivery.Address)
}

func TestOrderService_CreateOrder_Rejected(t *testing.T) {
	type MockBehavior func(d orderDeps)

	dbError := errors.New("connection reset")

	testCases := []struct {
		name         string
		draft        entities.OrderDraft
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:         "no items",
			draft:        entities.OrderDraft{},
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:         "zero quantity",
			draft:        entities.OrderDraft{Items: []entities.ItemRequest{{ProductCode: "VRD-001", Quantity: 0}}},
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:         "quantity over limit",
			draft:        entities.OrderDraft{Items: []entities.ItemRequest{{ProductCode: "VRD-001", Quantity: 3_000_000_000}}},
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name:  "total does not fit the column",
			draft: entities.OrderDraft{Items: []entities.ItemRequest{{ProductCode: "LUX-001", Quantity: entities.MaxItemQuantity}}},
			mockBehavior: func(d orderDeps) {
				truffle := entities.Product{ID: 9, Code: "LUX-001", Price: decimal.RequireFromString("9999999999.99"), Stock: 1}
				d.users.EXPECT().UserByEmail(mock.Anything, customer.Email).Return(customerUser, nil).Once()
				d.products.EXPECT().ProductByCode(mock.Anything, "LUX-001").Return(truffle, nil).Once()
			},
			wantErr: entities.ErrTotalTooLarge,
		},
		{
			name:         "blank product code",
			draft:        entities.OrderDraft{Items: []entities.ItemRequest{{ProductCode: "  ", Quantity: 1}}},
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name: "delivery date in the past",
			draft: entities.OrderDraft{
				Delivery: entities.DeliveryDetails{Date: time.Now().AddDate(0, 0, -2)},
				Items:    []entities.ItemRequest{{ProductCode: "VRD-001", Quantity: 1}},
			},
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:  "unknown user",
			draft: entities.OrderDraft{Items: []entities.ItemRequest{{ProductCode: "VRD-001", Quantity: 1}}},
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().UserByEmail(mock.Anything, customer.Email).
					Return(entities.User{}, entities.ErrUserNotFound).Once()
			},
			wantErr: entities.ErrNotFound,
		},
		{
			name: "unknown product code persists nothing",
			draft: entities.OrderDraft{Items: []entities.ItemRequest{
				{ProductCode: "VRD-001", Quantity: 1},
				{ProductCode: "NOPE-404", Quantity: 1},
			}},
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().UserByEmail(mock.Anything, customer.Email).Return(customerUser, nil).Once()
				d.products.EXPECT().ProductByCode(mock.Anything, "VRD-001").Return(carrots, nil).Once()
				d.products.EXPECT().ProductByCode(mock.Anything, "NOPE-404").
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:  "persistence failure",
			draft: entities.OrderDraft{Items: []entities.ItemRequest{{ProductCode: "VRD-001", Quantity: 1}}},
			mockBehavior: func(d orderDeps) {
				d.runTx()
				d.users.EXPECT().UserByEmail(mock.Anything, customer.Email).Return(customerUser, nil).Once()
				d.products.EXPECT().ProductByCode(mock.Anything, "VRD-001").Return(carrots, nil).Once()
				d.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: entities.ErrDependency,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			tc.mockBehavior(d)

			_, err := d.newService().CreateOrder(context.Background(), customer, tc.draft)
			assert.ErrorIs(t, err, tc.wantErr)
			if errors.Is(tc.wantErr, entities.ErrInvalidInput) {
				assert.False(t, entities.KindOf(err).Retryable())
			}
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache)

	validOrder := pendingOrder("123")

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				cache.EXPECT().Get("123").Return(validOrder, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "123",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				cache.EXPECT().Get("123").Return(entities.Order{}, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(validOrder, nil).Once()
				cache.EXPECT().Set("123", validOrder).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found in repo",
			orderID: "not-exist",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				cache.EXPECT().Get("not-exist").Return(entities.Order{}, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: "123",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockOrderCache) {
				cache.EXPECT().Get("123").Return(entities.Order{}, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, entities.Dependency("failed to get order", errors.New("timeout"))).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(validOrder, nil).Once()
				cache.EXPECT().Set("123", validOrder).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			tc.mockBehavior(d.repo, d.cache)

			got, err := d.newService().GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_ViewOrder(t *testing.T) {
	order := pendingOrder("123")

	testCases := []struct {
		name      string
		requester entities.Principal
		wantErr   error
	}{
		{name: "owner", requester: customer},
		{name: "owner with different case", requester: entities.Principal{Email: "ANA@duoc.cl", Role: entities.RoleUser}},
		{name: "admin", requester: admin},
		{name: "stranger", requester: entities.Principal{Email: "eve@duoc.cl", Role: entities.RoleUser}, wantErr: entities.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			d.cache.EXPECT().Get("123").Return(order, true).Once()

			got, err := d.newService().ViewOrder(context.Background(), tc.requester, "123")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order, got)
		})
	}
}

func TestOrderService_ListUserOrders(t *testing.T) {
	orders := []entities.Order{pendingOrder("2"), pendingOrder("1")}

	t.Run("own orders by default", func(t *testing.T) {
		d := newOrderDeps(t)
		d.users.EXPECT().UserByEmail(mock.Anything, customer.Email).Return(customerUser, nil).Once()
		d.repo.EXPECT().OrdersByUser(mock.Anything, customer.Email).Return(orders, nil).Once()

		got, err := d.newService().ListUserOrders(context.Background(), customer, "")
		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("admin lists another user", func(t *testing.T) {
		d := newOrderDeps(t)
		d.users.EXPECT().UserByEmail(mock.Anything, customer.Email).Return(customerUser, nil).Once()
		d.repo.EXPECT().OrdersByUser(mock.Anything, customer.Email).Return(orders, nil).Once()

		got, err := d.newService().ListUserOrders(context.Background(), admin, customer.Email)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("user cannot list another user", func(t *testing.T) {
		d := newOrderDeps(t)

		_, err := d.newService().ListUserOrders(context.Background(), customer, "eve@duoc.cl")
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("unknown user", func(t *testing.T) {
		d := newOrderDeps(t)
		d.users.EXPECT().UserByEmail(mock.Anything, "ghost@duoc.cl").
			Return(entities.User{}, entities.ErrUserNotFound).Once()

		_, err := d.newService().ListUserOrders(context.Background(), admin, "ghost@duoc.cl")
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})
}

func TestOrderService_GetAllOrders(t *testing.T) {
	d := newOrderDeps(t)
	d.repo.EXPECT().AllOrders(mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := d.newService().GetAllOrders(context.Background())
	assert.ErrorIs(t, err, entities.ErrDependency)
	assert.True(t, entities.KindOf(err).Retryable())
}

func TestOrderService_WarmUpCache(t *testing.T) {
	t.Run("fills cache", func(t *testing.T) {
		d := newOrderDeps(t)
		first, second := pendingOrder("o-1"), pendingOrder("o-2")
		d.repo.EXPECT().LatestOrders(mock.Anything, 2).Return([]entities.Order{first, second}, nil).Once()
		d.cache.EXPECT().Set("o-1", first).Once()
		d.cache.EXPECT().Set("o-2", second).Once()

		require.NoError(t, d.newService().WarmUpCache(context.Background(), 2))
	})

	t.Run("db error", func(t *testing.T) {
		d := newOrderDeps(t)
		d.repo.EXPECT().LatestOrders(mock.Anything, 10).Return(nil, errors.New("conn refused")).Once()

		err := d.newService().WarmUpCache(context.Background(), 10)
		assert.ErrorIs(t, err, entities.ErrDependency)
	})
}

func TestOrderService_ForgetUser(t *testing.T) {
	d := newOrderDeps(t)
	lru := cache.NewLRU[string, entities.Order](10, time.Minute)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, d.tx, d.repo, d.products, d.users, lru, d.mirror)

	own := pendingOrder("o-1")
	other := pendingOrder("o-2")
	other.UserEmail = "eve@duoc.cl"
	d.repo.EXPECT().LatestOrders(mock.Anything, 10).Return([]entities.Order{own, other}, nil).Once()
	require.NoError(t, svc.WarmUpCache(context.Background(), 10))

	svc.ForgetUser("ANA@duoc.cl")

	// удаленный заказ читается из базы, а не из кэша
	d.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
	_, err := svc.GetOrderByID(context.Background(), "o-1")
	assert.ErrorIs(t, err, entities.ErrNotFound)

	got, err := svc.GetOrderByID(context.Background(), "o-2")
	require.NoError(t, err)
	assert.Equal(t, other, got)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	type MockBehavior func(d orderDeps)

	testCases := []struct {
		name         string
		status       entities.OrderStatus
		current      entities.OrderStatus
		mockBehavior MockBehavior
		wantErr      error
		want         entities.OrderStatus
	}{
		{
			name:    "pending to confirmed",
			current: entities.StatusPending,
			status:  entities.StatusConfirmed,
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusConfirmed).Return(nil).Once()
				d.cache.EXPECT().Delete("123").Return().Once()
				d.mirror.EXPECT().MirrorStatus("123", entities.StatusConfirmed).Return().Once()
			},
			want: entities.StatusConfirmed,
		},
		{
			name:    "shipped to delivered",
			current: entities.StatusShipped,
			status:  entities.StatusDelivered,
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusDelivered).Return(nil).Once()
				d.cache.EXPECT().Delete("123").Return().Once()
				d.mirror.EXPECT().MirrorStatus("123", entities.StatusDelivered).Return().Once()
			},
			want: entities.StatusDelivered,
		},
		{
			name:         "same status is a no-op",
			current:      entities.StatusConfirmed,
			status:       entities.StatusConfirmed,
			mockBehavior: func(orderDeps) {},
			want:         entities.StatusConfirmed,
		},
		{
			name:         "pending to delivered skips the workflow",
			current:      entities.StatusPending,
			status:       entities.StatusDelivered,
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidTransition,
		},
		{
			name:         "cancelled is final",
			current:      entities.StatusCancelled,
			status:       entities.StatusPending,
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidTransition,
		},
		{
			name:    "update fails",
			current: entities.StatusPending,
			status:  entities.StatusCancelled,
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusCancelled).
					Return(errors.New("deadlock detected")).Once()
			},
			wantErr: entities.ErrDependency,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			d.runTx()

			order := pendingOrder("123")
			order.Status = tc.current
			d.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(order, nil).Once()
			tc.mockBehavior(d)

			got, err := d.newService().UpdateOrderStatus(context.Background(), "123", tc.status)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Status)
			assert.Equal(t, "123", got.ID)
		})
	}
}

func TestOrderService_UpdateOrderStatus_Errors(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		d := newOrderDeps(t)

		_, err := d.newService().UpdateOrderStatus(context.Background(), "123", entities.OrderStatus("LOST"))
		assert.ErrorIs(t, err, entities.ErrInvalidInput)
	})

	t.Run("order not found", func(t *testing.T) {
		d := newOrderDeps(t)
		d.runTx()
		d.repo.EXPECT().GetOrderByID(mock.Anything, "404").Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := d.newService().UpdateOrderStatus(context.Background(), "404", entities.StatusConfirmed)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
		assert.Equal(t, entities.KindNotFound, entities.KindOf(err))
	})
}

func TestOrderService_CancelOwnOrder(t *testing.T) {
	type MockBehavior func(d orderDeps)

	testCases := []struct {
		name         string
		requester    entities.Principal
		current      entities.OrderStatus
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:      "owner cancels pending order",
			requester: customer,
			current:   entities.StatusPending,
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusCancelled).Return(nil).Once()
				d.cache.EXPECT().Delete("123").Return().Once()
				d.mirror.EXPECT().MirrorStatus("123", entities.StatusCancelled).Return().Once()
			},
		},
		{
			name:         "another user",
			requester:    entities.Principal{Email: "eve@duoc.cl", Role: entities.RoleUser},
			current:      entities.StatusPending,
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:         "admin is not the owner",
			requester:    admin,
			current:      entities.StatusPending,
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:         "already confirmed",
			requester:    customer,
			current:      entities.StatusConfirmed,
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidState,
		},
		{
			name:         "already cancelled",
			requester:    customer,
			current:      entities.StatusCancelled,
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidState,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			d.runTx()

			order := pendingOrder("123")
			order.Status = tc.current
			d.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(order, nil).Once()
			tc.mockBehavior(d)

			got, err := d.newService().CancelOwnOrder(context.Background(), "123", tc.requester)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCancelled, got.Status)
		})
	}
}
