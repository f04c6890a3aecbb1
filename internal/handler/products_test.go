package handler_test

import (
	"net/http"
	"testing"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/handler"
	mocks "github.com/agusnoopy3000/huertohogar-api/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var carrots = entities.Product{
	ID:       3,
	Code:     "VRD-001",
	Name:     "Zanahorias Orgánicas",
	Price:    decimal.NewFromInt(1000),
	Stock:    100,
	Category: "Verduras",
}

func productRouter(caller *entities.Principal, svc handler.ProductService) chi.Router {
	h := handler.NewProductHandler(discardLogger(), svc)
	return newRouter(caller, func(r chi.Router) {
		h.InitPublic(r)
		h.Init(r)
	})
}

func TestProductHandler_ListProducts(t *testing.T) {
	svc := mocks.NewMockProductService(t)
	svc.EXPECT().ListProducts(mock.Anything, "zanahoria").Return([]entities.Product{carrots}, nil).Once()

	rr := doJSON(t, productRouter(nil, svc), http.MethodGet, "/products?q=zanahoria", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	res := decode[[]handler.ProductResponse](t, rr)
	if assert.Len(t, res, 1) {
		assert.Equal(t, "VRD-001", res[0].Code)
		assert.True(t, res[0].Price.Equal(decimal.NewFromInt(1000)))
	}
}

func TestProductHandler_GetProduct(t *testing.T) {
	testCases := []struct {
		name         string
		target       string
		mockBehavior func(svc *mocks.MockProductService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "by id",
			target: "/products/3",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().GetProduct(mock.Anything, int64(3)).Return(carrots, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"codigo":"VRD-001"`,
		},
		{
			name:         "bad id",
			target:       "/products/abc",
			mockBehavior: func(svc *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"id must be a positive integer"`,
		},
		{
			name:   "by code",
			target: "/products/code/VRD-001",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().GetProductByCode(mock.Anything, "VRD-001").Return(carrots, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"nombre":"Zanahorias Orgánicas"`,
		},
		{
			name:   "unknown code",
			target: "/products/code/NOPE",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().GetProductByCode(mock.Anything, "NOPE").Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockProductService(t)
			tc.mockBehavior(svc)

			rr := doJSON(t, productRouter(nil, svc), http.MethodGet, tc.target, nil)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestProductHandler_CreateProduct(t *testing.T) {
	testCases := []struct {
		name         string
		caller       entities.Principal
		body         string
		mockBehavior func(svc *mocks.MockProductService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			caller: admin,
			body:   `{"codigo":"VRD-001","nombre":"Zanahorias Orgánicas","precio":1000,"stock":100,"categoria":"Verduras"}`,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
					return p.Code == "VRD-001" && p.Stock == 100 && p.Price.Equal(decimal.NewFromInt(1000))
				})).Return(carrots, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":3`,
		},
		{
			name:         "missing stock",
			caller:       admin,
			body:         `{"codigo":"VRD-001","nombre":"Zanahorias","precio":1000}`,
			mockBehavior: func(svc *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"stock":"required"`,
		},
		{
			name:         "negative stock",
			caller:       admin,
			body:         `{"codigo":"VRD-001","nombre":"Zanahorias","precio":1000,"stock":-1}`,
			mockBehavior: func(svc *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"stock":"gte"`,
		},
		{
			name:   "zero price",
			caller: admin,
			body:   `{"codigo":"VRD-001","nombre":"Zanahorias","precio":0,"stock":1}`,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(entities.Product{}, entities.ErrInvalidPrice).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"code":"invalid_input"`,
		},
		{
			name:   "duplicate code",
			caller: admin,
			body:   `{"codigo":"VRD-001","nombre":"Zanahorias","precio":1000,"stock":1}`,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(entities.Product{}, entities.ErrProductCodeTaken).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"conflict"`,
		},
		{
			name:         "customer forbidden",
			caller:       customer,
			body:         `{"codigo":"VRD-001","nombre":"Zanahorias","precio":1000,"stock":1}`,
			mockBehavior: func(svc *mocks.MockProductService) {},
			wantStatus:   http.StatusForbidden,
			wantBody:     `"code":"forbidden"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockProductService(t)
			tc.mockBehavior(svc)

			rr := doJSON(t, productRouter(&tc.caller, svc), http.MethodPost, "/products", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	svc := mocks.NewMockProductService(t)
	svc.EXPECT().UpdateProduct(mock.Anything, int64(3), mock.MatchedBy(func(p entities.Product) bool {
		return p.Code == "" && p.Name == "Zanahorias" && p.Stock == 5
	})).Return(carrots, nil).Once()

	rr := doJSON(t, productRouter(&admin, svc), http.MethodPut, "/products/3",
		`{"codigo":"IGNORED","nombre":"Zanahorias","precio":900,"stock":5}`)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockProductService(t)
		svc.EXPECT().DeleteProduct(mock.Anything, int64(3)).Return(nil).Once()

		rr := doJSON(t, productRouter(&admin, svc), http.MethodDelete, "/products/3", nil)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("missing", func(t *testing.T) {
		svc := mocks.NewMockProductService(t)
		svc.EXPECT().DeleteProduct(mock.Anything, int64(9)).Return(entities.ErrProductNotFound).Once()

		rr := doJSON(t, productRouter(&admin, svc), http.MethodDelete, "/products/9", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
