package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/middleware"
	"github.com/agusnoopy3000/huertohogar-api/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// multipart overhead on top of the file itself
const formOverhead = 1 << 20

type DocumentService interface {
	Upload(ctx context.Context, owner entities.Principal, up entities.Upload, body io.Reader) (entities.Document, error)
	ListDocuments(ctx context.Context) ([]entities.Document, error)
	DocumentsOf(ctx context.Context, email string) ([]entities.Document, error)
	GetDocument(ctx context.Context, id int64) (entities.Document, error)
	DeleteDocument(ctx context.Context, id int64) error
}

type DocumentHandler struct {
	logger *slog.Logger
	svc    DocumentService
}

func NewDocumentHandler(logger *slog.Logger, svc DocumentService) *DocumentHandler {
	return &DocumentHandler{
		logger: logger.With(slog.String("handler", "documents")),
		svc:    svc,
	}
}

func (h *DocumentHandler) Init(r chi.Router) {
	r.Route("/documents", func(r chi.Router) {
		r.Get("/mine", h.ListMine)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/", h.ListDocuments)
			r.Post("/", h.Upload)
			r.Get("/{id}", h.GetDocument)
			r.Delete("/{id}", h.DeleteDocument)
		})
	})
}

// Upload загружает документ в хранилище.
// @Summary      Загрузить документ
// @Description  До 10 МБ: pdf, doc, docx, xls, xlsx, jpeg, png, gif, txt, csv
// @Tags         documents
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Файл"
// @Success      201   {object}  DocumentResponse
// @Failure      400   {object}  utils.ErrorResponse "Недопустимый файл"
// @Failure      403   {object}  utils.ErrorResponse "Требуется роль ADMIN"
// @Failure      503   {object}  utils.ErrorResponse "Хранилище недоступно"
// @Router       /documents [post]
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := principal(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, entities.MaxDocumentSize+formOverhead)
	file, header, err := r.FormFile("file")
	if err != nil {
		documentUploads.WithLabelValues("rejected").Inc()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeServiceError(ctx, h.logger, w, entities.ErrFileTooLarge, "document too large")
			return
		}
		utils.WriteError(w, string(entities.KindInvalidInput), "multipart field \"file\" is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType, _, err := mime.ParseMediaType(header.Header.Get("Content-Type"))
	if err != nil {
		contentType = ""
	}

	up := entities.Upload{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
	}

	doc, err := h.svc.Upload(ctx, caller, up, file)
	documentUploads.WithLabelValues(resultLabel(err)).Inc()
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to upload document")
		return
	}
	documentUploadSize.Observe(float64(up.Size))

	utils.WriteJSON(w, DocumentEntityToJSON(doc), http.StatusCreated)
}

// ListDocuments возвращает все документы.
// @Summary      Все документы
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   DocumentResponse
// @Failure      403  {object}  utils.ErrorResponse "Требуется роль ADMIN"
// @Router       /documents [get]
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	docs, err := h.svc.ListDocuments(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list documents")
		return
	}

	utils.WriteJSON(w, DocumentsEntityToJSON(docs), http.StatusOK)
}

// ListMine возвращает документы текущего пользователя.
// @Summary      Мои документы
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   DocumentResponse
// @Router       /documents/mine [get]
func (h *DocumentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := principal(w, r)
	if !ok {
		return
	}

	docs, err := h.svc.DocumentsOf(ctx, caller.Email)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list own documents")
		return
	}

	utils.WriteJSON(w, DocumentsEntityToJSON(docs), http.StatusOK)
}

// GetDocument возвращает документ по ID.
// @Summary      Получить документ
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Идентификатор документа"
// @Success      200  {object}  DocumentResponse
// @Failure      404  {object}  utils.ErrorResponse "Документ не найден"
// @Router       /documents/{id} [get]
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}

	doc, err := h.svc.GetDocument(ctx, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get document")
		return
	}

	utils.WriteJSON(w, DocumentEntityToJSON(doc), http.StatusOK)
}

// DeleteDocument удаляет документ из хранилища и БД.
// @Summary      Удалить документ
// @Tags         documents
// @Security     BearerAuth
// @Param        id   path  int  true  "Идентификатор документа"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Документ не найден"
// @Failure      503  {object}  utils.ErrorResponse "Хранилище недоступно"
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteDocument(ctx, id); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to delete document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
