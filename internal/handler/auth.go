package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/service"
	"github.com/agusnoopy3000/huertohogar-api/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AuthService interface {
	Register(ctx context.Context, reg entities.Registration) (service.Session, error)
	Login(ctx context.Context, email, password string) (service.Session, error)
}

type AuthHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AuthService
}

func NewAuthHandler(logger *slog.Logger, svc AuthService) *AuthHandler {
	return &AuthHandler{
		logger:   logger.With(slog.String("handler", "auth")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *AuthHandler) InitPublic(r chi.Router) {
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
}

// Register создает пользователя с ролью USER.
// @Summary      Регистрация
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user  body      RegisterRequest  true  "Данные пользователя"
// @Success      201   {object}  AuthResponse
// @Failure      400   {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409   {object}  utils.ErrorResponse "Email уже зарегистрирован"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		writeBadBody(w)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	session, err := h.svc.Register(ctx, req.ToEntity())
	authAttempts.WithLabelValues("register", resultLabel(err)).Inc()
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to register user")
		return
	}

	utils.WriteJSON(w, SessionToJSON(session), http.StatusCreated)
}

// Login выдает токен по email и паролю.
// @Summary      Вход
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Email и пароль"
// @Success      200          {object}  AuthResponse
// @Failure      400          {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401          {object}  utils.ErrorResponse "Неверные учетные данные"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		writeBadBody(w)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	session, err := h.svc.Login(ctx, req.Email, req.Password)
	authAttempts.WithLabelValues("login", resultLabel(err)).Inc()
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to login")
		return
	}

	utils.WriteJSON(w, SessionToJSON(session), http.StatusOK)
}
