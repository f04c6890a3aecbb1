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

type ProductService interface {
	ListProducts(ctx context.Context, search string) ([]entities.Product, error)
	GetProduct(ctx context.Context, id int64) (entities.Product, error)
	GetProductByCode(ctx context.Context, code string) (entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, id int64, p entities.Product) (entities.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type ProductHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ProductService
}

func NewProductHandler(logger *slog.Logger, svc ProductService) *ProductHandler {
	return &ProductHandler{
		logger:   logger.With(slog.String("handler", "products")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

// InitPublic регистрирует открытые маршруты каталога.
func (h *ProductHandler) InitPublic(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
	r.Get("/products/code/{code}", h.GetProductByCode)
}

// Init регистрирует маршруты администратора.
func (h *ProductHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Post("/products", h.CreateProduct)
		r.Put("/products/{id}", h.UpdateProduct)
		r.Delete("/products/{id}", h.DeleteProduct)
	})
}

// ListProducts возвращает каталог.
// @Summary      Каталог товаров
// @Description  Поиск без учета регистра по названию и описанию
// @Tags         products
// @Produce      json
// @Param        q    query     string  false  "Строка поиска"
// @Success      200  {array}   ProductResponse
// @Failure      503  {object}  utils.ErrorResponse "База данных недоступна"
// @Router       /products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.svc.ListProducts(ctx, r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list products")
		return
	}

	utils.WriteJSON(w, ProductsEntityToJSON(products), http.StatusOK)
}

// GetProduct возвращает товар по ID.
// @Summary      Получить товар
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Идентификатор товара"
// @Success      200  {object}  ProductResponse
// @Failure      400  {object}  utils.ErrorResponse "Некорректный ID"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}

	product, err := h.svc.GetProduct(ctx, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// GetProductByCode возвращает товар по коду.
// @Summary      Получить товар по коду
// @Tags         products
// @Produce      json
// @Param        code  path      string  true  "Код товара"
// @Success      200   {object}  ProductResponse
// @Failure      404   {object}  utils.ErrorResponse "Товар не найден"
// @Router       /products/code/{code} [get]
func (h *ProductHandler) GetProductByCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	product, err := h.svc.GetProductByCode(ctx, chi.URLParam(r, "code"))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get product by code")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// CreateProduct добавляет товар.
// @Summary      Добавить товар
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        product  body      ProductRequest  true  "Товар"
// @Success      201      {object}  ProductResponse
// @Failure      400      {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403      {object}  utils.ErrorResponse "Требуется роль ADMIN"
// @Failure      409      {object}  utils.ErrorResponse "Код уже занят"
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		writeBadBody(w)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.svc.CreateProduct(ctx, req.ToEntity())
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusCreated)
}

// UpdateProduct изменяет товар.
// @Summary      Изменить товар
// @Description  Код товара не меняется
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Идентификатор товара"
// @Param        product  body      UpdateProductRequest  true  "Товар"
// @Success      200      {object}  ProductResponse
// @Failure      400      {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404      {object}  utils.ErrorResponse "Товар не найден"
// @Router       /products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		writeBadBody(w)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.svc.UpdateProduct(ctx, id, req.ToEntity())
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to update product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// DeleteProduct удаляет товар.
// @Summary      Удалить товар
// @Tags         products
// @Security     BearerAuth
// @Param        id   path  int  true  "Идентификатор товара"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Router       /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProduct(ctx, id); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
