package handler_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/handler"
	mocks "github.com/agusnoopy3000/huertohogar-api/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var invoice = entities.Document{
	ID:        7,
	Name:      "factura.pdf",
	Key:       "documents/2025/11/0d4e-factura.pdf",
	PublicURL: "https://huerto-hogar-documentos.s3.us-east-1.amazonaws.com/documents/2025/11/0d4e-factura.pdf",
	UserEmail: admin.Email,
	CreatedAt: time.Date(2025, 11, 5, 10, 0, 0, 0, time.UTC),
}

func uploadRequest(t *testing.T, field, name, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, name))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestDocumentHandler_Upload(t *testing.T) {
	pdf := []byte("%PDF-1.4 factura")

	testCases := []struct {
		name         string
		caller       entities.Principal
		req          func(t *testing.T) *http.Request
		mockBehavior func(svc *mocks.MockDocumentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			caller: admin,
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "file", "factura.pdf", "application/pdf", pdf)
			},
			mockBehavior: func(svc *mocks.MockDocumentService) {
				svc.EXPECT().Upload(mock.Anything, admin, entities.Upload{
					Name:        "factura.pdf",
					ContentType: "application/pdf",
					Size:        int64(len(pdf)),
				}, mock.Anything).
					RunAndReturn(func(_ context.Context, _ entities.Principal, _ entities.Upload, body io.Reader) (entities.Document, error) {
						got, err := io.ReadAll(body)
						if err != nil || !bytes.Equal(got, pdf) {
							return entities.Document{}, fmt.Errorf("unexpected body %q: %v", got, err)
						}
						return invoice, nil
					}).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"s3Key":"documents/2025/11/0d4e-factura.pdf"`,
		},
		{
			name:   "missing file field",
			caller: admin,
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "attachment", "factura.pdf", "application/pdf", pdf)
			},
			mockBehavior: func(svc *mocks.MockDocumentService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `multipart field`,
		},
		{
			name:   "forbidden type",
			caller: admin,
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "file", "run.sh", "application/x-sh", []byte("#!/bin/sh"))
			},
			mockBehavior: func(svc *mocks.MockDocumentService) {
				svc.EXPECT().Upload(mock.Anything, admin, mock.Anything, mock.Anything).
					Return(entities.Document{}, entities.ErrFileTypeForbidden).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"file type is not allowed"`,
		},
		{
			name:   "too large",
			caller: admin,
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "file", "big.pdf", "application/pdf", bytes.Repeat([]byte("a"), entities.MaxDocumentSize+2<<20))
			},
			mockBehavior: func(svc *mocks.MockDocumentService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"file exceeds the maximum allowed size"`,
		},
		{
			name:   "customer forbidden",
			caller: customer,
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "file", "factura.pdf", "application/pdf", pdf)
			},
			mockBehavior: func(svc *mocks.MockDocumentService) {},
			wantStatus:   http.StatusForbidden,
			wantBody:     `"code":"forbidden"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockDocumentService(t)
			tc.mockBehavior(svc)

			r := newRouter(&tc.caller, handler.NewDocumentHandler(discardLogger(), svc).Init)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, tc.req(t))

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestDocumentHandler_List(t *testing.T) {
	t.Run("mine", func(t *testing.T) {
		svc := mocks.NewMockDocumentService(t)
		svc.EXPECT().DocumentsOf(mock.Anything, customer.Email).Return(nil, nil).Once()

		r := newRouter(&customer, handler.NewDocumentHandler(discardLogger(), svc).Init)
		rr := doJSON(t, r, http.MethodGet, "/documents/mine", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("all", func(t *testing.T) {
		svc := mocks.NewMockDocumentService(t)
		svc.EXPECT().ListDocuments(mock.Anything).Return([]entities.Document{invoice}, nil).Once()

		r := newRouter(&admin, handler.NewDocumentHandler(discardLogger(), svc).Init)
		rr := doJSON(t, r, http.MethodGet, "/documents", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decode[[]handler.DocumentResponse](t, rr), 1)
	})

	t.Run("all forbidden for customer", func(t *testing.T) {
		svc := mocks.NewMockDocumentService(t)

		r := newRouter(&customer, handler.NewDocumentHandler(discardLogger(), svc).Init)
		rr := doJSON(t, r, http.MethodGet, "/documents", nil)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestDocumentHandler_GetAndDelete(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		svc := mocks.NewMockDocumentService(t)
		svc.EXPECT().GetDocument(mock.Anything, int64(7)).Return(invoice, nil).Once()

		r := newRouter(&admin, handler.NewDocumentHandler(discardLogger(), svc).Init)
		rr := doJSON(t, r, http.MethodGet, "/documents/7", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, invoice.PublicURL, decode[handler.DocumentResponse](t, rr).PublicURL)
	})

	t.Run("delete", func(t *testing.T) {
		svc := mocks.NewMockDocumentService(t)
		svc.EXPECT().DeleteDocument(mock.Anything, int64(7)).Return(nil).Once()

		r := newRouter(&admin, handler.NewDocumentHandler(discardLogger(), svc).Init)
		rr := doJSON(t, r, http.MethodDelete, "/documents/7", nil)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		svc := mocks.NewMockDocumentService(t)
		svc.EXPECT().DeleteDocument(mock.Anything, int64(8)).Return(entities.ErrDocumentNotFound).Once()

		r := newRouter(&admin, handler.NewDocumentHandler(discardLogger(), svc).Init)
		rr := doJSON(t, r, http.MethodDelete, "/documents/8", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
