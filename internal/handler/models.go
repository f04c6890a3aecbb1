package handler

import (
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/service"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// OrderItemRequest позиция нового заказа
type OrderItemRequest struct {
	ProductCode string `json:"productoId" validate:"required,max=50" example:"VRD-001"`
	Quantity    int    `json:"cantidad" validate:"required,gt=0,lte=10000" example:"3"`
}

// CreateOrderRequest новый заказ. Пустой адрес заменяется адресом из профиля.
type CreateOrderRequest struct {
	DeliveryAddress string             `json:"direccionEntrega" validate:"max=200" example:"Lamarck 36, Valparaíso"`
	DeliveryDate    string             `json:"fechaEntrega,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-11-07"`
	Region          string             `json:"region" validate:"max=100" example:"Región de Valparaíso"`
	Comuna          string             `json:"comuna" validate:"max=100" example:"Valparaíso"`
	Comments        string             `json:"comentarios" validate:"max=500" example:"Dejar en conserjería"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateStatusRequest новый статус заказа
type UpdateStatusRequest struct {
	Status string `json:"estado" validate:"required" example:"CONFIRMED"`
}

// OrderItemResponse позиция заказа
type OrderItemResponse struct {
	ID          int64           `json:"id"`
	ProductCode string          `json:"productoId"`
	Quantity    int             `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precioUnitario" swaggertype:"number"`
	Subtotal    decimal.Decimal `json:"subtotal" swaggertype:"number"`
}

// OrderResponse заказ
type OrderResponse struct {
	ID                string              `json:"id"`
	UserEmail         string              `json:"userEmail"`
	Items             []OrderItemResponse `json:"items"`
	Total             decimal.Decimal     `json:"total" swaggertype:"number"`
	Status            string              `json:"estado"`
	StatusDescription string              `json:"estadoDescripcion"`
	DeliveryAddress   string              `json:"direccionEntrega,omitempty"`
	Region            string              `json:"region,omitempty"`
	Comuna            string              `json:"comuna,omitempty"`
	Comments          string              `json:"comentarios,omitempty"`
	DeliveryDate      string              `json:"fechaEntrega,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
}

// ProductRequest новый товар
type ProductRequest struct {
	Code        string          `json:"codigo" validate:"required,max=50" example:"VRD-001"`
	Name        string          `json:"nombre" validate:"required,max=200" example:"Tomate Cherry"`
	Description string          `json:"descripcion" example:"Tomates cherry frescos de cultivo orgánico"`
	Price       decimal.Decimal `json:"precio" swaggertype:"number" example:"2500"`
	Stock       *int            `json:"stock" validate:"required,gte=0" example:"100"`
	Image       string          `json:"imagen" validate:"omitempty,url" example:"https://example.com/images/tomate.jpg"`
	Category    string          `json:"categoria" validate:"max=100" example:"Verduras"`
}

// UpdateProductRequest изменение товара, код не меняется
type UpdateProductRequest struct {
	Name        string          `json:"nombre" validate:"required,max=200"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio" swaggertype:"number"`
	Stock       *int            `json:"stock" validate:"required,gte=0"`
	Image       string          `json:"imagen" validate:"omitempty,url"`
	Category    string          `json:"categoria" validate:"max=100"`
}

// ProductResponse товар каталога
type ProductResponse struct {
	ID          int64           `json:"id"`
	Code        string          `json:"codigo"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio" swaggertype:"number"`
	Stock       int             `json:"stock"`
	Image       string          `json:"imagen"`
	Category    string          `json:"categoria"`
}

// RegisterRequest регистрация пользователя
type RegisterRequest struct {
	Run       string `json:"run" validate:"max=20" example:"19.011.022-K"`
	FirstName string `json:"nombre" validate:"required,min=2,max=50" example:"Juan"`
	LastName  string `json:"apellidos" validate:"required,min=2,max=50" example:"Pérez González"`
	Email     string `json:"email" validate:"required,email,max=100" example:"juan.perez@example.com"`
	Password  string `json:"password" validate:"required,min=7,max=100" example:"MyS3cur3P@ss"`
	Address   string `json:"direccion" validate:"max=200" example:"Av. Principal 123, Santiago"`
	Phone     string `json:"telefono" validate:"omitempty,phone" example:"+56912345678"`
}

// CreateUserRequest пользователь, созданный администратором
type CreateUserRequest struct {
	RegisterRequest
	Role string `json:"rol" validate:"omitempty,oneof=USER ADMIN" example:"USER"`
}

// LoginRequest вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"cliente@demo.com"`
	Password string `json:"password" validate:"required" example:"password"`
}

// UpdateProfileRequest частичное изменение профиля. Пустые имя, фамилия и RUN игнорируются.
type UpdateProfileRequest struct {
	FirstName *string `json:"nombre" validate:"omitempty,max=50"`
	LastName  *string `json:"apellidos" validate:"omitempty,max=50"`
	Address   *string `json:"direccion" validate:"omitempty,max=200"`
	Phone     *string `json:"telefono" validate:"omitempty,phone"`
	Run       *string `json:"run" validate:"omitempty,max=20"`
}

// UpdateUserRequest изменение пользователя администратором. Пустой пароль не меняется.
type UpdateUserRequest struct {
	UpdateProfileRequest
	Password string `json:"password" validate:"omitempty,min=7,max=100"`
	Role     string `json:"rol" validate:"omitempty,oneof=USER ADMIN"`
}

// UserResponse пользователь без хеша пароля
type UserResponse struct {
	Email     string    `json:"email"`
	Run       string    `json:"run,omitempty"`
	FirstName string    `json:"nombre"`
	LastName  string    `json:"apellidos"`
	Address   string    `json:"direccion"`
	Phone     string    `json:"telefono"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserPageResponse страница пользователей
type UserPageResponse struct {
	Content       []UserResponse `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int            `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
}

// AuthResponse токен и данные пользователя
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// DocumentResponse загруженный документ
type DocumentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	Key       string    `json:"s3Key"`
	PublicURL string    `json:"urlPublica"`
	UserEmail string    `json:"userEmail"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r CreateOrderRequest) ToDraft() entities.OrderDraft {
	draft := entities.OrderDraft{
		Delivery: entities.DeliveryDetails{
			Address:  r.DeliveryAddress,
			Region:   r.Region,
			Comuna:   r.Comuna,
			Comments: r.Comments,
		},
		Items: make([]entities.ItemRequest, 0, len(r.Items)),
	}
	if r.DeliveryDate != "" {
		// формат уже проверен валидатором
		draft.Delivery.Date, _ = time.Parse(dateLayout, r.DeliveryDate)
	}
	for _, it := range r.Items {
		draft.Items = append(draft.Items, entities.ItemRequest{ProductCode: it.ProductCode, Quantity: it.Quantity})
	}
	return draft
}

func OrderEntityToJSON(o entities.Order) OrderResponse {
	res := OrderResponse{
		ID:                o.ID,
		UserEmail:         o.UserEmail,
		Items:             make([]OrderItemResponse, 0, len(o.Items)),
		Total:             o.Total,
		Status:            o.Status.String(),
		StatusDescription: o.Status.Description(),
		DeliveryAddress:   o.Delivery.Address,
		Region:            o.Delivery.Region,
		Comuna:            o.Delivery.Comuna,
		Comments:          o.Delivery.Comments,
		CreatedAt:         o.CreatedAt,
	}
	if !o.Delivery.Date.IsZero() {
		res.DeliveryDate = o.Delivery.Date.Format(dateLayout)
	}
	for _, it := range o.Items {
		res.Items = append(res.Items, OrderItemResponse{
			ID:          it.ID,
			ProductCode: it.ProductCode,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal(),
		})
	}
	return res
}

func OrdersEntityToJSON(orders []entities.Order) []OrderResponse {
	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       *r.Stock,
		Image:       r.Image,
		Category:    r.Category,
	}
}

func (r UpdateProductRequest) ToEntity() entities.Product {
	return entities.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       *r.Stock,
		Image:       r.Image,
		Category:    r.Category,
	}
}

func ProductEntityToJSON(p entities.Product) ProductResponse {
	return ProductResponse{
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

func ProductsEntityToJSON(products []entities.Product) []ProductResponse {
	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	return res
}

func (r RegisterRequest) ToEntity() entities.Registration {
	return entities.Registration{
		Email:     r.Email,
		Password:  r.Password,
		Run:       r.Run,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		Phone:     r.Phone,
	}
}

func (r UpdateProfileRequest) ToEntity() entities.ProfilePatch {
	return entities.ProfilePatch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		Phone:     r.Phone,
		Run:       r.Run,
	}
}

func (r UpdateUserRequest) ToEntity() service.UserUpdate {
	upd := service.UserUpdate{
		ProfilePatch: r.UpdateProfileRequest.ToEntity(),
		Password:     r.Password,
	}
	if r.Role != "" {
		role := entities.Role(r.Role)
		upd.Role = &role
	}
	return upd
}

func UserEntityToJSON(u entities.User) UserResponse {
	return UserResponse{
		Email:     u.Email,
		Run:       u.Run,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Address:   u.Address,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func UserPageToJSON(p service.UserPage) UserPageResponse {
	res := UserPageResponse{
		Content:       make([]UserResponse, 0, len(p.Users)),
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.Total,
	}
	if p.Size > 0 {
		res.TotalPages = (p.Total + p.Size - 1) / p.Size
	}
	for _, u := range p.Users {
		res.Content = append(res.Content, UserEntityToJSON(u))
	}
	return res
}

func SessionToJSON(s service.Session) AuthResponse {
	return AuthResponse{Token: s.Token, User: UserEntityToJSON(s.User)}
}

func DocumentEntityToJSON(d entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:        d.ID,
		Name:      d.Name,
		Key:       d.Key,
		PublicURL: d.PublicURL,
		UserEmail: d.UserEmail,
		CreatedAt: d.CreatedAt,
	}
}

func DocumentsEntityToJSON(docs []entities.Document) []DocumentResponse {
	res := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		res = append(res, DocumentEntityToJSON(d))
	}
	return res
}
