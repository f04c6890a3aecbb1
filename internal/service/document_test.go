package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/service"
	mocks "github.com/agusnoopy3000/huertohogar-api/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const docKey = "documents/2025/03/abc-factura.pdf"

func TestDocumentService_Upload(t *testing.T) {
	type MockBehavior func(repo *mocks.MockDocumentRepo, storage *mocks.MockObjectStorage)

	pdf := entities.Upload{Name: "factura.pdf", ContentType: "application/pdf", Size: 1024}

	testCases := []struct {
		name         string
		upload       entities.Upload
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "OK",
			upload: pdf,
			mockBehavior: func(repo *mocks.MockDocumentRepo, storage *mocks.MockObjectStorage) {
				storage.EXPECT().Key("factura.pdf").Return(docKey).Once()
				storage.EXPECT().Put(mock.Anything, docKey, "application/pdf", mock.Anything, int64(1024)).Return(nil).Once()
				storage.EXPECT().URL(docKey).Return("https://bucket/" + docKey).Once()
				repo.EXPECT().CreateDocument(mock.Anything, mock.MatchedBy(func(d entities.Document) bool {
					return d.Key == docKey && d.UserEmail == admin.Email
				})).Return(int64(5), nil).Once()
			},
		},
		{
			name:         "too large",
			upload:       entities.Upload{Name: "big.pdf", ContentType: "application/pdf", Size: entities.MaxDocumentSize + 1},
			mockBehavior: func(*mocks.MockDocumentRepo, *mocks.MockObjectStorage) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:         "forbidden type",
			upload:       entities.Upload{Name: "virus.exe", ContentType: "application/x-msdownload", Size: 10},
			mockBehavior: func(*mocks.MockDocumentRepo, *mocks.MockObjectStorage) {},
			wantErr:      entities.ErrFileTypeForbidden,
		},
		{
			name:   "storage failure",
			upload: pdf,
			mockBehavior: func(_ *mocks.MockDocumentRepo, storage *mocks.MockObjectStorage) {
				storage.EXPECT().Key("factura.pdf").Return(docKey).Once()
				storage.EXPECT().Put(mock.Anything, docKey, "application/pdf", mock.Anything, int64(1024)).
					Return(errors.New("access denied")).Once()
			},
			wantErr: entities.ErrDependency,
		},
		{
			name:   "database failure removes the object",
			upload: pdf,
			mockBehavior: func(repo *mocks.MockDocumentRepo, storage *mocks.MockObjectStorage) {
				storage.EXPECT().Key("factura.pdf").Return(docKey).Once()
				storage.EXPECT().Put(mock.Anything, docKey, "application/pdf", mock.Anything, int64(1024)).Return(nil).Once()
				storage.EXPECT().URL(docKey).Return("https://bucket/" + docKey).Once()
				repo.EXPECT().CreateDocument(mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()
				storage.EXPECT().Delete(mock.Anything, docKey).Return(nil).Once()
			},
			wantErr: entities.ErrDependency,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockDocumentRepo(t)
			storage := mocks.NewMockObjectStorage(t)
			tc.mockBehavior(repo, storage)

			svc := service.NewDocumentService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, storage)
			got, err := svc.Upload(context.Background(), admin, tc.upload, strings.NewReader("%PDF"))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), got.ID)
			assert.Equal(t, "https://bucket/"+docKey, got.PublicURL)
		})
	}
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Run("object then row", func(t *testing.T) {
		repo := mocks.NewMockDocumentRepo(t)
		storage := mocks.NewMockObjectStorage(t)

		repo.EXPECT().DocumentByID(mock.Anything, int64(5)).Return(entities.Document{ID: 5, Key: docKey}, nil).Once()
		storage.EXPECT().Delete(mock.Anything, docKey).Return(nil).Once()
		repo.EXPECT().DeleteDocument(mock.Anything, int64(5)).Return(nil).Once()

		svc := service.NewDocumentService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, storage)
		assert.NoError(t, svc.DeleteDocument(context.Background(), 5))
	})

	t.Run("storage failure keeps the row", func(t *testing.T) {
		repo := mocks.NewMockDocumentRepo(t)
		storage := mocks.NewMockObjectStorage(t)

		repo.EXPECT().DocumentByID(mock.Anything, int64(5)).Return(entities.Document{ID: 5, Key: docKey}, nil).Once()
		storage.EXPECT().Delete(mock.Anything, docKey).Return(errors.New("timeout")).Once()

		svc := service.NewDocumentService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, storage)
		assert.ErrorIs(t, svc.DeleteDocument(context.Background(), 5), entities.ErrDependency)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockDocumentRepo(t)
		storage := mocks.NewMockObjectStorage(t)

		repo.EXPECT().DocumentByID(mock.Anything, int64(9)).Return(entities.Document{}, entities.ErrDocumentNotFound).Once()

		svc := service.NewDocumentService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, storage)
		assert.ErrorIs(t, svc.DeleteDocument(context.Background(), 9), entities.ErrNotFound)
	})
}
