package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var productColumns = []string{"id", "code", "name", "description", "price", "stock", "image", "category"}

type productRepo struct {
	postgresRepo
}

func NewProductRepo(db *sqlx.DB) *productRepo {
	return &productRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *productRepo) ProductByCode(ctx context.Context, code string) (entities.Product, error) {
	return r.getProduct(ctx, sq.Eq{"code": code})
}

func (r *productRepo) ProductByID(ctx context.Context, id int64) (entities.Product, error) {
	return r.getProduct(ctx, sq.Eq{"id": id})
}

// ListProducts returns the catalog ordered by id. A non-empty search filters
// by name or description, ignoring case.
func (r *productRepo) ListProducts(ctx context.Context, search string) ([]entities.Product, error) {
	q := r.qb.Select(productColumns...).From("products").OrderBy("id")
	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}
	query, args := q.MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, entities.Dependency("failed to select products", err)
	}

	products := make([]entities.Product, 0, len(rows))
	for _, p := range rows {
		products = append(products, ProductToEntity(p))
	}
	return products, nil
}

func (r *productRepo) CreateProduct(ctx context.Context, p entities.Product) (int64, error) {
	query, args := r.qb.Insert("products").
		Columns("code", "name", "description", "price", "stock", "image", "category").
		Values(p.Code, p.Name, p.Description, p.Price, p.Stock, p.Image, p.Category).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	err := r.getContext(ctx, &id, query, args...)
	if isUniqueViolation(err) {
		return 0, entities.ErrProductCodeTaken
	}
	if err != nil {
		return 0, entities.Dependency("failed to insert product", err)
	}
	return id, nil
}

// UpdateProduct overwrites every field except the code.
func (r *productRepo) UpdateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Update("products").
		SetMap(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"stock":       p.Stock,
			"image":       p.Image,
			"category":    p.Category,
		}).
		Where(sq.Eq{"id": p.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return entities.Dependency("failed to update product", err)
	}
	if err := affectedOne(res, entities.ErrProductNotFound); err != nil {
		return entities.Dependency("failed to update product", err)
	}
	return nil
}

func (r *productRepo) DeleteProduct(ctx context.Context, id int64) error {
	query, args := r.qb.Delete("products").Where(sq.Eq{"id": id}).MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return entities.Dependency("failed to delete product", err)
	}
	if err := affectedOne(res, entities.ErrProductNotFound); err != nil {
		return entities.Dependency("failed to delete product", err)
	}
	return nil
}

func (r *productRepo) getProduct(ctx context.Context, where sq.Sqlizer) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).From("products").Where(where).MustSql()

	var p Product
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, entities.Dependency("failed to get product", err)
	}
	return ProductToEntity(p), nil
}
