package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	appconfig "dl_orcamentos/internal/config"
	"dl_orcamentos/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	logger   *zap.Logger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.MercadoPagoConfig, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("payment_gateway")

	if cfg.Mock {
		logger.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, logger: logger, now: time.Now}, nil
	}

	if cfg.AccessToken == "" {
		logger.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		logger.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg), logger: logger, now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.createMock(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.logger.Info("create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.logger.Warn("payload unmarshal failed", zap.Error(err))
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Warn("sdk create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.logger.Error("response marshal failed", zap.Error(err))
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	g.logger.Info("create success", zap.String("provider_payment_id", id), zap.String("provider_status", resp.Status))

	return id, resp.Status, b, nil
}

// mockCharge holds the quote fields the mock charge is built from.
type mockCharge struct {
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
	PaymentMethodID   string  `json:"payment_method_id"`
}

// createMock answers like an accredited Pix charge for the quote named in
// external_reference, with a fake copy-and-paste code.
func (g *MercadoPagoGateway) createMock(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	var charge mockCharge
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		_ = json.Unmarshal(requestPayload, &resp)
		_ = json.Unmarshal(requestPayload, &charge)
	}
	if charge.PaymentMethodID == "" {
		charge.PaymentMethodID = "pix"
	}
	g.logger.Info("mock create start",
		zap.String("orcamento", charge.ExternalReference),
		zap.Float64("valor", charge.TransactionAmount))

	now := g.now().UTC()
	id := "mock-" + strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["payment_method_id"] = charge.PaymentMethodID
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	resp["transaction_details"] = map[string]any{"total_paid_amount": charge.TransactionAmount}
	if charge.PaymentMethodID == "pix" {
		qrCode := fmt.Sprintf("00020126MOCKPIX%s5303986540%.2f", charge.ExternalReference, charge.TransactionAmount)
		txData := map[string]any{"qr_code": qrCode}
		resp["point_of_interaction"] = map[string]any{"type": "PIX", "transaction_data": txData}
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.logger.Error("mock response marshal failed", zap.Error(err))
		return "", "", nil, err
	}

	g.logger.Info("mock create success", zap.String("provider_payment_id", id), zap.String("orcamento", charge.ExternalReference))
	return id, "approved", b, nil
}
