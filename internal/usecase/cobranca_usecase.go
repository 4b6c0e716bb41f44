package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrOrcamentoNotApproved           = errors.New("orcamento not approved")
	ErrInvalidChargeAmount            = errors.New("invalid charge amount")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const defaultPaymentMethod = "pix"

// ICobrancaUseCase charges an approved quote through the payment gateway.
//
// The charge does not change the quote status; conversion stays a backend
// decision.

type ICobrancaUseCase interface {
	Cobrar(ctx context.Context, orcamentoID int64, mpPayload json.RawMessage) (Cobranca, error)
}

// Cobranca is the outcome of a charge request.
type Cobranca struct {
	PaymentID      string
	ProviderStatus string
	OrcamentoID    int64
	Numero         string
	Valor          decimal.Decimal
	Date           time.Time
	Provider       map[string]interface{}
}

type CobrancaUseCase struct {
	state          IOrcamentoState
	gateway        interfaces.IPaymentGateway
	notify         notifier
	journal        *Journal
	logger         *zap.Logger
	mockMode       bool
	testPayerEmail string
	inflight       *inflight
}

var _ ICobrancaUseCase = (*CobrancaUseCase)(nil)

type CobrancaConfig struct {
	// MockMode relaxes payload and status checks, matching the gateway mock.
	MockMode bool
	// TestPayerEmail fills payer.email when the payload carries no payer.
	TestPayerEmail string
}

func NewCobrancaUseCase(state IOrcamentoState, gateway interfaces.IPaymentGateway, sink interfaces.INotifier, journal *Journal, cfg CobrancaConfig, logger *zap.Logger) *CobrancaUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CobrancaUseCase{
		state:          state,
		gateway:        gateway,
		notify:         notifier{sink: sink},
		journal:        journal,
		logger:         logger,
		mockMode:       cfg.MockMode,
		testPayerEmail: strings.TrimSpace(cfg.TestPayerEmail),
		inflight:       newInflight(),
	}
}

// ValorCobranca is valor_total plus the applied freight, rounded to cents.
func ValorCobranca(o entities.Orcamento) decimal.Decimal {
	total := decimal.NewFromFloat(o.ValorTotal)
	if o.FreteValor != nil {
		total = total.Add(decimal.NewFromFloat(*o.FreteValor))
	}
	return total.Round(2)
}

func (u *CobrancaUseCase) Cobrar(ctx context.Context, orcamentoID int64, mpPayload json.RawMessage) (Cobranca, error) {
	u.logger.Info("charge start", zap.Int64("orcamento_id", orcamentoID), zap.Int("payload_len", len(mpPayload)))
	if orcamentoID <= 0 {
		return Cobranca{}, ErrInvalidOrcamentoID
	}
	if u.gateway == nil {
		return Cobranca{}, ErrPaymentGatewayNotConfigured
	}

	o, ok := u.state.Get(orcamentoID)
	if !ok {
		return Cobranca{}, ErrOrcamentoNotFound
	}
	if !u.mockMode && o.Status != entities.OrcamentoStatusAprovado {
		u.logger.Info("charge rejected; quote not approved", zap.Int64("orcamento_id", orcamentoID), zap.String("status", string(o.Status)))
		return Cobranca{}, ErrOrcamentoNotApproved
	}
	valor := ValorCobranca(o)
	if !valor.IsPositive() {
		return Cobranca{}, ErrInvalidChargeAmount
	}

	payload, err := u.buildPayload(o, valor, mpPayload)
	if err != nil {
		return Cobranca{}, err
	}

	release, err := u.inflight.acquire(entities.AcaoCobrar, orcamentoID)
	if err != nil {
		return Cobranca{}, err
	}
	defer release()

	paymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.logger.Warn("payment gateway failed", zap.Int64("orcamento_id", orcamentoID), zap.Error(err))
		mapped := mapGatewayError(err)
		u.notify.erro(orcamentoID, "Erro ao gerar cobrança do orçamento "+o.Numero)
		return Cobranca{}, mapped
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.logger.Warn("provider response unmarshal failed", zap.Int64("orcamento_id", orcamentoID), zap.Error(err))
	}

	c := Cobranca{
		PaymentID:      paymentID,
		ProviderStatus: providerStatus,
		OrcamentoID:    o.ID,
		Numero:         o.Numero,
		Valor:          valor,
		Date:           nowUTC(),
		Provider:       parsed,
	}
	u.journal.record(ctx, o, entities.AcaoCobrar, o.Status, fmt.Sprintf("payment_id=%s status=%s valor=%s", paymentID, providerStatus, valor.StringFixed(2)), parsed)
	u.notify.sucesso(orcamentoID, "Cobrança do orçamento "+o.Numero+" criada ("+providerStatus+")")
	u.logger.Info("charge success", zap.Int64("orcamento_id", orcamentoID), zap.String("payment_id", paymentID), zap.String("provider_status", providerStatus))
	return c, nil
}

// buildPayload enriches the caller's Mercado Pago payload. The amount always
// comes from the quote.
func (u *CobrancaUseCase) buildPayload(o entities.Orcamento, valor decimal.Decimal, mpPayload json.RawMessage) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(mpPayload))) == 0 {
		mpPayload = json.RawMessage("{}")
	}
	if !json.Valid(mpPayload) {
		return nil, ErrInvalidMPPayload
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return nil, ErrInvalidMPPayload
	}

	if !hasNonEmptyString(reqMap, "payment_method_id") {
		reqMap["payment_method_id"] = defaultPaymentMethod
	}
	u.ensurePayerDefaults(reqMap)
	if !u.mockMode && !hasPayer(reqMap) {
		return nil, ErrInvalidMPPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = o.Numero
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Orçamento %s - %s", o.Numero, o.ClienteNome)
	}
	reqMap["transaction_amount"] = valor.InexactFloat64()

	b, err := json.Marshal(reqMap)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (u *CobrancaUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && u.testPayerEmail != "" {
		payer["email"] = u.testPayerEmail
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
