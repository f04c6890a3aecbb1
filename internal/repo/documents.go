package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var documentColumns = []string{"id", "name", "s3_key", "public_url", "user_email", "created_at"}

type documentRepo struct {
	postgresRepo
}

func NewDocumentRepo(db *sqlx.DB) *documentRepo {
	return &documentRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *documentRepo) CreateDocument(ctx context.Context, d entities.Document) (int64, error) {
	query, args := r.qb.Insert("documents").
		Columns("name", "s3_key", "public_url", "user_email", "created_at").
		Values(d.Name, d.Key, d.PublicURL, d.UserEmail, d.CreatedAt).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, entities.Dependency("failed to insert document", err)
	}
	return id, nil
}

func (r *documentRepo) DocumentByID(ctx context.Context, id int64) (entities.Document, error) {
	query, args := r.qb.Select(documentColumns...).
		From("documents").
		Where(sq.Eq{"id": id}).
		MustSql()

	var d Document
	err := r.getContext(ctx, &d, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Document{}, entities.ErrDocumentNotFound
	}
	if err != nil {
		return entities.Document{}, entities.Dependency("failed to get document", err)
	}
	return DocumentToEntity(d), nil
}

func (r *documentRepo) ListDocuments(ctx context.Context) ([]entities.Document, error) {
	return r.listDocuments(ctx, nil)
}

func (r *documentRepo) DocumentsByUser(ctx context.Context, email string) ([]entities.Document, error) {
	return r.listDocuments(ctx, sq.Eq{"user_email": email})
}

func (r *documentRepo) DeleteDocument(ctx context.Context, id int64) error {
	query, args := r.qb.Delete("documents").Where(sq.Eq{"id": id}).MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return entities.Dependency("failed to delete document", err)
	}
	if err := affectedOne(res, entities.ErrDocumentNotFound); err != nil {
		return entities.Dependency("failed to delete document", err)
	}
	return nil
}

func (r *documentRepo) listDocuments(ctx context.Context, where sq.Sqlizer) ([]entities.Document, error) {
	q := r.qb.Select(documentColumns...).From("documents").OrderBy("created_at DESC", "id DESC")
	if where != nil {
		q = q.Where(where)
	}
	query, args := q.MustSql()

	var rows []Document
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, entities.Dependency("failed to select documents", err)
	}

	docs := make([]entities.Document, 0, len(rows))
	for _, d := range rows {
		docs = append(docs, DocumentToEntity(d))
	}
	return docs, nil
}
