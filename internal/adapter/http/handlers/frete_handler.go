package handlers

import (
	"errors"
	"net/http"

	request "dl_orcamentos/internal/adapter/http/dto/request"
	response "dl_orcamentos/internal/adapter/http/dto/response"
	"dl_orcamentos/internal/usecase"
	"dl_orcamentos/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FreteHandler struct {
	usecase usecase.IFreteUseCase
	logger  *zap.Logger
}

func NewFreteHandler(uc usecase.IFreteUseCase, logger *zap.Logger) *FreteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FreteHandler{usecase: uc, logger: logger.Named("frete.handler")}
}

// Calculate quotes shipping for a quote. Options come back ranked by price,
// then delivery time.
//
// @Summary		Calculate freight
// @Tags			Frete
// @Accept			json
// @Produce		json
// @Param			id		path		int								true	"Orcamento ID"
// @Param			body	body		request.CalcularFreteRequest	true	"destination CEP and declared value"
// @Success		200		{object}	response.OpcoesFreteResponse
// @Failure		400		{object}	pkg.HTTPError
// @Failure		502		{object}	pkg.HTTPError	"backend message, verbatim"
// @Router			/orcamentos/{id}/frete/calcular [post]
func (h *FreteHandler) Calculate(c *gin.Context) {
	id, ok := parseOrcamentoID(c)
	if !ok {
		return
	}
	var body request.CalcularFreteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	opcoes, err := h.usecase.CalculateFreight(c.Request.Context(), id, body.CEPDestino, body.ValorTotal)
	if err != nil {
		h.logger.Info("freight calculation failed", zap.Int64("orcamento_id", id), zap.Error(err))
		writeError(c, mapFreteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOpcoesFrete(id, opcoes))
}

// Options returns the options of the last successful calculation.
func (h *FreteHandler) Options(c *gin.Context) {
	id, ok := parseOrcamentoID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromOpcoesFrete(id, h.usecase.Options(id)))
}

// @Summary		Apply freight option
// @Tags			Frete
// @Accept			json
// @Produce		json
// @Param			id		path		int							true	"Orcamento ID"
// @Param			body	body		request.AplicarFreteRequest	true	"chosen option"
// @Success		200		{object}	response.OrcamentoResponse
// @Router			/orcamentos/{id}/frete [put]
func (h *FreteHandler) Apply(c *gin.Context) {
	id, ok := parseOrcamentoID(c)
	if !ok {
		return
	}
	var body request.AplicarFreteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	updated, err := h.usecase.ApplyFreight(c.Request.Context(), id, body.ToOpcao())
	if err != nil {
		h.logger.Info("freight apply failed", zap.Int64("orcamento_id", id), zap.Error(err))
		writeError(c, mapFreteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrcamento(updated))
}

// ValidateCEP is advisory; a malformed CEP is reported as invalid, not as an
// error.
func (h *FreteHandler) ValidateCEP(c *gin.Context) {
	cep := c.Param("cep")
	valido, err := h.usecase.ValidatePostalCode(c.Request.Context(), cep)
	if err != nil {
		writeError(c, mapFreteError(err))
		return
	}
	if normalized, err := usecase.NormalizeCEP(cep); err == nil {
		cep = normalized
	}
	c.JSON(http.StatusOK, response.CEPResponse{CEP: cep, Valido: valido})
}

func mapFreteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCEP):
		return pkg.NewDomainErrorSimple("INVALID_CEP", "CEP must have 8 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFreteValor):
		return pkg.NewDomainErrorSimple("INVALID_FRETE_VALOR", "Declared value must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFreteOption):
		return pkg.NewDomainErrorSimple("INVALID_FRETE_OPTION", "Invalid freight option", http.StatusBadRequest)
	}
	return mapSharedError(err)
}
