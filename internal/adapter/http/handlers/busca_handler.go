package handlers

import (
	"context"
	"errors"
	"net/http"

	request "dl_orcamentos/internal/adapter/http/dto/request"
	response "dl_orcamentos/internal/adapter/http/dto/response"
	"dl_orcamentos/internal/usecase"
	"dl_orcamentos/pkg"

	"github.com/gin-gonic/gin"
)

// BuscaHandler serves the debounced customer and product lookups. A request
// overtaken by a newer one answers 409 SUPERSEDED.
type BuscaHandler struct {
	usecase usecase.IBuscaUseCase
}

func NewBuscaHandler(uc usecase.IBuscaUseCase) *BuscaHandler {
	return &BuscaHandler{usecase: uc}
}

func (h *BuscaHandler) Clientes(c *gin.Context) {
	var q request.BuscaQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	clientes, err := h.usecase.BuscarClientes(c.Request.Context(), q.Termo)
	if err != nil {
		writeError(c, mapBuscaError(err))
		return
	}
	c.JSON(http.StatusOK, response.ClientesResponse{Clientes: clientes})
}

func (h *BuscaHandler) Produtos(c *gin.Context) {
	var q request.BuscaQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	produtos, err := h.usecase.BuscarProdutos(c.Request.Context(), q.Termo, q.Limit)
	if err != nil {
		writeError(c, mapBuscaError(err))
		return
	}
	c.JSON(http.StatusOK, response.ProdutosResponse{Total: len(produtos), Produtos: produtos})
}

func mapBuscaError(err error) *pkg.AppError {
	if errors.Is(err, context.Canceled) {
		return pkg.NewDomainErrorSimple("REQUEST_CANCELED", "Request canceled", 499)
	}
	return mapSharedError(err)
}
