package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/service"
	mocks "github.com/agusnoopy3000/huertohogar-api/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateProduct(t *testing.T) {
	type MockBehavior func(repo *mocks.MockProductRepo)

	testCases := []struct {
		name         string
		product      entities.Product
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:    "OK",
			product: entities.Product{Code: " FR-003 ", Name: "Plátanos", Price: decimal.NewFromInt(800), Stock: 10},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
					return p.Code == "FR-003"
				})).Return(int64(7), nil).Once()
			},
		},
		{
			name:         "zero price",
			product:      entities.Product{Code: "FR-003", Price: decimal.Zero},
			mockBehavior: func(*mocks.MockProductRepo) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:         "negative stock",
			product:      entities.Product{Code: "FR-003", Price: decimal.NewFromInt(1), Stock: -1},
			mockBehavior: func(*mocks.MockProductRepo) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:    "duplicate code",
			product: entities.Product{Code: "VRD-001", Price: decimal.NewFromInt(1000)},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().CreateProduct(mock.Anything, mock.Anything).
					Return(int64(0), entities.ErrProductCodeTaken).Once()
			},
			wantErr: entities.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewProductService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)
			got, err := svc.CreateProduct(context.Background(), tc.product)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), got.ID)
			assert.Equal(t, "FR-003", got.Code)
		})
	}
}

func TestProductService_UpdateProduct_KeepsCode(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	repo.EXPECT().ProductByID(mock.Anything, int64(1)).Return(carrots, nil).Once()
	repo.EXPECT().UpdateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
		return p.ID == 1 && p.Code == "VRD-001" && p.Name == "Zanahorias" && p.Price.Equal(decimal.NewFromInt(1100))
	})).Return(nil).Once()

	svc := service.NewProductService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)
	got, err := svc.UpdateProduct(context.Background(), 1, entities.Product{
		Code:  "HACK-1",
		Name:  "Zanahorias",
		Price: decimal.NewFromInt(1100),
		Stock: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, "VRD-001", got.Code)
}

func TestProductService_NotFound(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	repo.EXPECT().ProductByID(mock.Anything, int64(99)).Return(entities.Product{}, entities.ErrProductNotFound)
	repo.EXPECT().ProductByCode(mock.Anything, "NOPE").Return(entities.Product{}, entities.ErrProductNotFound)
	repo.EXPECT().DeleteProduct(mock.Anything, int64(99)).Return(entities.ErrProductNotFound)

	svc := service.NewProductService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)

	_, err := svc.GetProduct(context.Background(), 99)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	_, err = svc.GetProductByCode(context.Background(), " NOPE ")
	assert.ErrorIs(t, err, entities.ErrNotFound)

	_, err = svc.UpdateProduct(context.Background(), 99, honey)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), 99), entities.ErrNotFound)
}
