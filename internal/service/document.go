package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
)

type DocumentRepo interface {
	CreateDocument(ctx context.Context, d entities.Document) (int64, error)
	DocumentByID(ctx context.Context, id int64) (entities.Document, error)
	ListDocuments(ctx context.Context) ([]entities.Document, error)
	DocumentsByUser(ctx context.Context, email string) ([]entities.Document, error)
	DeleteDocument(ctx context.Context, id int64) error
}

type ObjectStorage interface {
	Key(name string) string
	URL(key string) string
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
}

type documentService struct {
	logger  *slog.Logger
	repo    DocumentRepo
	storage ObjectStorage
}

func NewDocumentService(logger *slog.Logger, repo DocumentRepo, storage ObjectStorage) *documentService {
	return &documentService{
		logger:  logger.With(slog.String("service", "document")),
		repo:    repo,
		storage: storage,
	}
}

// Upload stores the file and records it under the uploader's email.
func (s *documentService) Upload(ctx context.Context, owner entities.Principal, up entities.Upload, body io.Reader) (entities.Document, error) {
	if err := up.Validate(); err != nil {
		return entities.Document{}, err
	}

	key := s.storage.Key(up.Name)
	if err := s.storage.Put(ctx, key, up.ContentType, body, up.Size); err != nil {
		return entities.Document{}, entities.Dependency("failed to store document", err)
	}

	doc := entities.Document{
		Name:      up.Name,
		Key:       key,
		PublicURL: s.storage.URL(key),
		UserEmail: owner.Email,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.CreateDocument(ctx, doc)
	if err != nil {
		// объект без записи в БД никому не виден, убираем его
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Error("failed to remove orphaned object", slog.String("key", key), slog.Any("error", delErr))
		}
		return entities.Document{}, entities.Dependency("failed to save document", err)
	}
	doc.ID = id

	s.logger.Info("document uploaded", slog.Int64("id", id), slog.String("key", key))
	return doc, nil
}

func (s *documentService) ListDocuments(ctx context.Context) ([]entities.Document, error) {
	docs, err := s.repo.ListDocuments(ctx)
	if err != nil {
		return nil, entities.Dependency("failed to list documents", err)
	}
	return docs, nil
}

func (s *documentService) DocumentsOf(ctx context.Context, email string) ([]entities.Document, error) {
	docs, err := s.repo.DocumentsByUser(ctx, email)
	if err != nil {
		return nil, entities.Dependency("failed to list documents", err)
	}
	return docs, nil
}

func (s *documentService) GetDocument(ctx context.Context, id int64) (entities.Document, error) {
	doc, err := s.repo.DocumentByID(ctx, id)
	if err != nil {
		return entities.Document{}, entities.Dependency("failed to get document", err)
	}
	return doc, nil
}

// DeleteDocument removes the stored object first, then its record.
func (s *documentService) DeleteDocument(ctx context.Context, id int64) error {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, doc.Key); err != nil {
		return entities.Dependency("failed to delete stored document", err)
	}
	if err := s.repo.DeleteDocument(ctx, id); err != nil {
		return entities.Dependency("failed to delete document", err)
	}
	s.logger.Info("document deleted", slog.Int64("id", id), slog.String("key", doc.Key))
	return nil
}
