package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/handler"
	mocks "github.com/agusnoopy3000/huertohogar-api/internal/handler/mocks"
	"github.com/agusnoopy3000/huertohogar-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var juan = entities.User{
	Email:        "juan.perez@example.com",
	FirstName:    "Juan",
	LastName:     "Pérez",
	PasswordHash: "$2a$10$secret",
	Role:         entities.RoleUser,
	CreatedAt:    time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC),
}

func TestAuthHandler_Register(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockAuthService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"nombre":"Juan","apellidos":"Pérez","email":"juan.perez@example.com","password":"MyS3cur3","telefono":"+56912345678"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Register(mock.Anything, mock.MatchedBy(func(reg entities.Registration) bool {
					return reg.Email == "juan.perez@example.com" && reg.Password == "MyS3cur3" && reg.Phone == "+56912345678"
				})).Return(service.Session{Token: "jwt-token", User: juan}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"token":"jwt-token"`,
		},
		{
			name:         "short password",
			body:         `{"nombre":"Juan","apellidos":"Pérez","email":"juan.perez@example.com","password":"123"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"password":"min"`,
		},
		{
			name:         "bad phone",
			body:         `{"nombre":"Juan","apellidos":"Pérez","email":"juan.perez@example.com","password":"MyS3cur3","telefono":"call me"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"telefono":"phone"`,
		},
		{
			name:         "bad email",
			body:         `{"nombre":"Juan","apellidos":"Pérez","email":"juan","password":"MyS3cur3"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"email":"email"`,
		},
		{
			name: "email taken",
			body: `{"nombre":"Juan","apellidos":"Pérez","email":"juan.perez@example.com","password":"MyS3cur3"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Register(mock.Anything, mock.Anything).Return(service.Session{}, entities.ErrEmailTaken).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"email already exists"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService(t)
			tc.mockBehavior(svc)

			r := newRouter(nil, handler.NewAuthHandler(discardLogger(), svc).InitPublic)
			rr := doJSON(t, r, http.MethodPost, "/auth/register", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
			assert.NotContains(t, rr.Body.String(), "secret")
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.EXPECT().Login(mock.Anything, "juan.perez@example.com", "MyS3cur3").
			Return(service.Session{Token: "jwt-token", User: juan}, nil).Once()

		r := newRouter(nil, handler.NewAuthHandler(discardLogger(), svc).InitPublic)
		rr := doJSON(t, r, http.MethodPost, "/auth/login", handler.LoginRequest{Email: "juan.perez@example.com", Password: "MyS3cur3"})

		assert.Equal(t, http.StatusOK, rr.Code)
		res := decode[handler.AuthResponse](t, rr)
		assert.Equal(t, "jwt-token", res.Token)
		assert.Equal(t, "USER", res.User.Role)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.EXPECT().Login(mock.Anything, "juan.perez@example.com", "wrong-pass").
			Return(service.Session{}, entities.ErrInvalidCredentials).Once()

		r := newRouter(nil, handler.NewAuthHandler(discardLogger(), svc).InitPublic)
		rr := doJSON(t, r, http.MethodPost, "/auth/login", handler.LoginRequest{Email: "juan.perez@example.com", Password: "wrong-pass"})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), `"code":"unauthorized"`)
	})
}
