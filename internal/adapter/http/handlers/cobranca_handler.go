package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	request "dl_orcamentos/internal/adapter/http/dto/request"
	response "dl_orcamentos/internal/adapter/http/dto/response"
	"dl_orcamentos/internal/usecase"
	"dl_orcamentos/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CobrancaHandler charges approved quotes through the payment gateway.
type CobrancaHandler struct {
	usecase  usecase.ICobrancaUseCase
	mockMode bool
	logger   *zap.Logger
}

func NewCobrancaHandler(uc usecase.ICobrancaUseCase, mockMode bool, logger *zap.Logger) *CobrancaHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CobrancaHandler{usecase: uc, mockMode: mockMode, logger: logger.Named("cobranca.handler")}
}

// Cobrar creates a payment for an approved quote.
//
// @Summary		Charge quote
// @Description	Amount is valor_total plus frete_valor. The body is the Mercado Pago payload, bare or wrapped in mp_payload.
// @Tags			Cobranca
// @Accept			json
// @Produce		json
// @Param			id		path		int						true	"Orcamento ID"
// @Param			body	body		request.CobrancaRequest	false	"Mercado Pago payload"
// @Success		200		{object}	response.CobrancaResponse
// @Failure		409		{object}	pkg.HTTPError	"orcamento not approved"
// @Router			/orcamentos/{id}/cobranca [post]
func (h *CobrancaHandler) Cobrar(c *gin.Context) {
	id, ok := parseOrcamentoID(c)
	if !ok {
		return
	}
	h.logger.Debug("charge start", zap.Int64("orcamento_id", id))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			h.logger.Info("invalid payload", zap.Int64("orcamento_id", id), zap.Error(err))
			writeError(c, errInvalidRequest)
			return
		}
		h.logger.Info("payload invalid in mock mode; using empty payload", zap.Int64("orcamento_id", id), zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	cobranca, err := h.usecase.Cobrar(c.Request.Context(), id, mpPayload)
	if err != nil {
		h.logger.Warn("charge failed", zap.Int64("orcamento_id", id), zap.Error(err))
		writeError(c, mapCobrancaError(err))
		return
	}
	h.logger.Info("charge success", zap.Int64("orcamento_id", id), zap.String("payment_id", cobranca.PaymentID), zap.String("status", cobranca.ProviderStatus))
	c.JSON(http.StatusOK, response.FromCobranca(cobranca))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.ParseCobrancaPayload(raw)
}

func mapCobrancaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidChargeAmount):
		return pkg.NewDomainErrorSimple("INVALID_CHARGE_AMOUNT", "Charge amount must be positive", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrcamentoNotApproved):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_APPROVED", "Orcamento not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	}
	return mapSharedError(err)
}
