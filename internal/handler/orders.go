package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/middleware"
	"github.com/agusnoopy3000/huertohogar-api/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, owner entities.Principal, draft entities.OrderDraft) (entities.Order, error)
	ViewOrder(ctx context.Context, requester entities.Principal, id string) (entities.Order, error)
	ListUserOrders(ctx context.Context, requester entities.Principal, email string) ([]entities.Order, error)
	GetAllOrders(ctx context.Context) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	CancelOwnOrder(ctx context.Context, id string, requester entities.Principal) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

// Init регистрирует маршруты заказов. Роутер должен быть защищен middleware.Authenticate.
func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.With(middleware.RequireAdmin).Get("/all", h.ListAllOrders)
		r.Get("/{id}", h.GetOrderByID)
		r.With(middleware.RequireAdmin).Put("/{id}/status", h.UpdateStatus)
		r.Post("/{id}/cancel", h.CancelOrder)
	})
}

// CreateOrder создает заказ текущего пользователя.
// @Summary      Создать заказ
// @Description  Цены фиксируются по каталогу на момент создания, статус PENDING
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        order  body      CreateOrderRequest  true  "Заказ"
// @Success      201    {object}  OrderResponse
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401    {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404    {object}  utils.ErrorResponse "Товар не найден"
// @Failure      503    {object}  utils.ErrorResponse "База данных недоступна"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := principal(w, r)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		writeBadBody(w)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, caller, req.ToDraft())
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Доступен владельцу заказа и администратору
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  OrderResponse
// @Failure      403  {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.ViewOrder(ctx, caller, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders возвращает заказы пользователя.
// @Summary      Заказы пользователя
// @Description  Без userEmail возвращает заказы текущего пользователя, чужие доступны только администратору
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        userEmail  query     string  false  "Email владельца"
// @Success      200        {array}   OrderResponse
// @Failure      403        {object}  utils.ErrorResponse "Недостаточно прав"
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := principal(w, r)
	if !ok {
		return
	}

	email := r.URL.Query().Get("userEmail")
	if email == "" {
		email = caller.Email
	}

	orders, err := h.svc.ListUserOrders(ctx, caller, email)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// ListAllOrders возвращает все заказы.
// @Summary      Все заказы
// @Description  Новые заказы первыми
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   OrderResponse
// @Failure      403  {object}  utils.ErrorResponse "Требуется роль ADMIN"
// @Router       /orders/all [get]
func (h *OrderHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.GetAllOrders(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list all orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// UpdateStatus меняет статус заказа.
// @Summary      Изменить статус заказа
// @Description  Переходы: PENDING -> CONFIRMED|CANCELLED, CONFIRMED -> SHIPPED|CANCELLED, SHIPPED -> DELIVERED
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Идентификатор заказа"
// @Param        status  body      UpdateStatusRequest  true  "Новый статус"
// @Success      200     {object}  OrderResponse
// @Failure      400     {object}  utils.ErrorResponse "Неизвестный статус"
// @Failure      404     {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409     {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		writeBadBody(w)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	status, err := entities.ParseOrderStatus(req.Status)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to parse status")
		return
	}

	order, err := h.svc.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to update order status")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder отменяет собственный заказ.
// @Summary      Отменить заказ
// @Description  Владелец может отменить только заказ в статусе PENDING
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  OrderResponse
// @Failure      403  {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже обработан"
// @Router       /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.CancelOwnOrder(ctx, id, caller)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to cancel order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) orderID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteError(w, string(entities.KindInvalidInput), "id must be a valid uuid", http.StatusBadRequest)
		return "", false
	}
	return id, true
}
