package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"dl_orcamentos/internal/infrastructure/httpclient"
	"dl_orcamentos/internal/usecase"
	"dl_orcamentos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest     = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidOrcamentoID = pkg.NewDomainErrorSimple("INVALID_ORCAMENTO_ID", "Invalid orcamento id", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func parseOrcamentoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, errInvalidOrcamentoID)
		return 0, false
	}
	return id, true
}

// mapSharedError covers the errors every use case can return. The backend
// message, when present, is passed through verbatim.
func mapSharedError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrcamentoID):
		return errInvalidOrcamentoID
	case errors.Is(err, usecase.ErrOrcamentoNotFound):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Orcamento not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTerminalStatus):
		return pkg.NewDomainErrorSimple("ORCAMENTO_TERMINAL", "Orcamento is in a terminal status", http.StatusConflict)
	case errors.Is(err, usecase.ErrActionInProgress):
		return pkg.NewDomainErrorSimple("ACTION_IN_PROGRESS", "Action already in progress for this orcamento", http.StatusConflict)
	case errors.Is(err, usecase.ErrSuperseded):
		return pkg.NewDomainErrorSimple("SUPERSEDED", "Superseded by a newer request", http.StatusConflict)
	}
	if msg, ok := httpclient.BackendMessage(err); ok {
		return pkg.NewDomainError("BACKEND_REJECTED", msg, err, http.StatusBadGateway)
	}
	if errors.Is(err, httpclient.ErrTransport) {
		return pkg.NewDomainError("BACKEND_UNAVAILABLE", "Backend unavailable", err, http.StatusBadGateway)
	}
	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) {
		return pkg.NewDomainError("BACKEND_ERROR", "Backend error", err, http.StatusBadGateway)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
