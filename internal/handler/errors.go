package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/agusnoopy3000/huertohogar-api/internal/auth"
	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/pkg/utils"
	"github.com/go-chi/chi/v5"
)

var kindStatus = map[entities.ErrorKind]int{
	entities.KindNotFound:          http.StatusNotFound,
	entities.KindInvalidInput:      http.StatusBadRequest,
	entities.KindForbidden:         http.StatusForbidden,
	entities.KindUnauthorized:      http.StatusUnauthorized,
	entities.KindConflict:          http.StatusConflict,
	entities.KindInvalidState:      http.StatusConflict,
	entities.KindInvalidTransition: http.StatusConflict,
	entities.KindDependency:        http.StatusServiceUnavailable,
	entities.KindInternal:          http.StatusInternalServerError,
}

// writeServiceError answers with the status of the error kind.
// Unexpected failures are logged and reported without details.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, msg string) {
	kind := entities.KindOf(err)
	status := kindStatus[kind]

	switch kind {
	case entities.KindInternal:
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, string(kind), "internal server error", status)
	case entities.KindDependency:
		logger.WarnContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, string(kind), "service temporarily unavailable", status)
	default:
		utils.WriteError(w, string(kind), err.Error(), status)
	}
}

func writeBadBody(w http.ResponseWriter) {
	utils.WriteError(w, string(entities.KindInvalidInput), "invalid request body", http.StatusBadRequest)
}

// principal достается из контекста, его кладет middleware.Authenticate
func principal(w http.ResponseWriter, r *http.Request) (entities.Principal, bool) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		utils.WriteError(w, string(entities.KindUnauthorized), "authentication required", http.StatusUnauthorized)
	}
	return p, ok
}

func int64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, string(entities.KindInvalidInput), name+" must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
