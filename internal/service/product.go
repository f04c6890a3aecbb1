package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
)

type ProductRepo interface {
	ProductByCode(ctx context.Context, code string) (entities.Product, error)
	ProductByID(ctx context.Context, id int64) (entities.Product, error)
	ListProducts(ctx context.Context, search string) ([]entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) (int64, error)
	UpdateProduct(ctx context.Context, p entities.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	logger *slog.Logger
	repo   ProductRepo
}

func NewProductService(logger *slog.Logger, repo ProductRepo) *productService {
	return &productService{
		logger: logger.With(slog.String("service", "product")),
		repo:   repo,
	}
}

func (s *productService) ListProducts(ctx context.Context, search string) ([]entities.Product, error) {
	products, err := s.repo.ListProducts(ctx, search)
	if err != nil {
		return nil, entities.Dependency("failed to list products", err)
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (entities.Product, error) {
	p, err := s.repo.ProductByID(ctx, id)
	if err != nil {
		return entities.Product{}, entities.Dependency("failed to get product", err)
	}
	return p, nil
}

func (s *productService) GetProductByCode(ctx context.Context, code string) (entities.Product, error) {
	p, err := s.repo.ProductByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return entities.Product{}, entities.Dependency("failed to get product", err)
	}
	return p, nil
}

func (s *productService) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Code = strings.TrimSpace(p.Code)
	if err := p.Validate(); err != nil {
		return entities.Product{}, err
	}

	id, err := s.repo.CreateProduct(ctx, p)
	if err != nil {
		return entities.Product{}, entities.Dependency("failed to create product", err)
	}
	p.ID = id

	s.logger.Info("product created", slog.Int64("id", id), slog.String("code", p.Code))
	return p, nil
}

// UpdateProduct replaces the product's fields. The code never changes.
func (s *productService) UpdateProduct(ctx context.Context, id int64, upd entities.Product) (entities.Product, error) {
	current, err := s.repo.ProductByID(ctx, id)
	if err != nil {
		return entities.Product{}, entities.Dependency("failed to get product", err)
	}

	upd.ID = current.ID
	upd.Code = current.Code
	if err := upd.Validate(); err != nil {
		return entities.Product{}, err
	}

	if err := s.repo.UpdateProduct(ctx, upd); err != nil {
		return entities.Product{}, entities.Dependency("failed to update product", err)
	}
	return upd, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return entities.Dependency("failed to delete product", err)
	}
	s.logger.Info("product deleted", slog.Int64("id", id))
	return nil
}
