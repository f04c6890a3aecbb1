package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/middleware"
	"github.com/agusnoopy3000/huertohogar-api/internal/service"
	"github.com/agusnoopy3000/huertohogar-api/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type UserService interface {
	GetUser(ctx context.Context, email string) (entities.User, error)
	ListUsers(ctx context.Context, page, size int) (service.UserPage, error)
	CreateUser(ctx context.Context, reg entities.Registration, role entities.Role) (entities.User, error)
	UpdateUser(ctx context.Context, email string, upd service.UserUpdate) (entities.User, error)
	UpdateProfile(ctx context.Context, email string, patch entities.ProfilePatch) (entities.User, error)
	DeleteUser(ctx context.Context, email string) error
}

type UserHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      UserService
}

func NewUserHandler(logger *slog.Logger, svc UserService) *UserHandler {
	return &UserHandler{
		logger:   logger.With(slog.String("handler", "users")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *UserHandler) Init(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/me", h.GetMe)
		r.Put("/me", h.UpdateMe)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/", h.ListUsers)
			r.Post("/", h.CreateUser)
			r.Get("/{email}", h.GetUser)
			r.Put("/{email}", h.UpdateUser)
			r.Delete("/{email}", h.DeleteUser)
		})
	})
}

// GetMe возвращает профиль текущего пользователя.
// @Summary      Мой профиль
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Router       /users/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := principal(w, r)
	if !ok {
		return
	}

	user, err := h.svc.GetUser(ctx, caller.Email)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get profile")
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// UpdateMe частично изменяет профиль текущего пользователя.
// @Summary      Изменить профиль
// @Description  Пустые имя, фамилия и RUN игнорируются, адрес и телефон можно очистить
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Изменения профиля"
// @Success      200      {object}  UserResponse
// @Failure      400      {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := principal(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		writeBadBody(w)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	user, err := h.svc.UpdateProfile(ctx, caller.Email, req.ToEntity())
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to update profile")
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// ListUsers возвращает страницу пользователей.
// @Summary      Список пользователей
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        page  query     int  false  "Номер страницы, с единицы"
// @Param        size  query     int  false  "Размер страницы, до 100"
// @Success      200   {object}  UserPageResponse
// @Failure      400   {object}  utils.ErrorResponse "Некорректные параметры"
// @Failure      403   {object}  utils.ErrorResponse "Требуется роль ADMIN"
// @Router       /users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := queryInt(r, "page")
	if err != nil {
		utils.WriteError(w, string(entities.KindInvalidInput), "page must be an integer", http.StatusBadRequest)
		return
	}
	size, err := queryInt(r, "size")
	if err != nil {
		utils.WriteError(w, string(entities.KindInvalidInput), "size must be an integer", http.StatusBadRequest)
		return
	}

	users, err := h.svc.ListUsers(ctx, page, size)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list users")
		return
	}

	utils.WriteJSON(w, UserPageToJSON(users), http.StatusOK)
}

// GetUser возвращает пользователя по email.
// @Summary      Получить пользователя
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        email  path      string  true  "Email пользователя"
// @Success      200    {object}  UserResponse
// @Failure      404    {object}  utils.ErrorResponse "Пользователь не найден"
// @Router       /users/{email} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.svc.GetUser(ctx, chi.URLParam(r, "email"))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get user")
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// CreateUser создает пользователя с указанной ролью.
// @Summary      Создать пользователя
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        user  body      CreateUserRequest  true  "Пользователь"
// @Success      201   {object}  UserResponse
// @Failure      400   {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409   {object}  utils.ErrorResponse "Email уже зарегистрирован"
// @Router       /users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		writeBadBody(w)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	role := entities.RoleUser
	if req.Role != "" {
		role = entities.Role(req.Role)
	}

	user, err := h.svc.CreateUser(ctx, req.RegisterRequest.ToEntity(), role)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to create user")
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusCreated)
}

// UpdateUser изменяет пользователя.
// @Summary      Изменить пользователя
// @Description  Пароль меняется, только если передан непустым
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        email  path      string             true  "Email пользователя"
// @Param        user   body      UpdateUserRequest  true  "Изменения"
// @Success      200    {object}  UserResponse
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404    {object}  utils.ErrorResponse "Пользователь не найден"
// @Router       /users/{email} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateUserRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		writeBadBody(w)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	user, err := h.svc.UpdateUser(ctx, chi.URLParam(r, "email"), req.ToEntity())
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to update user")
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// DeleteUser удаляет пользователя вместе с его заказами.
// @Summary      Удалить пользователя
// @Tags         users
// @Security     BearerAuth
// @Param        email  path  string  true  "Email пользователя"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Router       /users/{email} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.DeleteUser(ctx, chi.URLParam(r, "email")); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
