// Package app wires configuration, infrastructure and use cases into one
// container shared by the HTTP server and the CLI.
package app

import (
	"context"
	"fmt"

	"dl_orcamentos/internal/adapter/http/handlers"
	"dl_orcamentos/internal/adapter/http/routes"
	"dl_orcamentos/internal/adapter/persistence/repository"
	"dl_orcamentos/internal/config"
	"dl_orcamentos/internal/infrastructure/cache"
	"dl_orcamentos/internal/infrastructure/database"
	"dl_orcamentos/internal/infrastructure/httpclient"
	applogger "dl_orcamentos/internal/infrastructure/logger"
	"dl_orcamentos/internal/infrastructure/notification"
	"dl_orcamentos/internal/infrastructure/payments"
	"dl_orcamentos/internal/infrastructure/pdf"
	"dl_orcamentos/internal/infrastructure/storage"
	"dl_orcamentos/internal/usecase"
	"dl_orcamentos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	Config  *config.Config
	Session config.Session
	Logger  *zap.Logger

	Inbox    *notification.Inbox
	Workflow *usecase.OrcamentoWorkflowUseCase
	Frete    *usecase.FreteUseCase
	Busca    *usecase.BuscaUseCase
	Cobranca *usecase.CobrancaUseCase

	redis *redis.Client
}

// New builds the container. The journal table, PDF bucket, Redis cache and
// payment gateway are optional and stay off when not configured.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	logger = applogger.OrNop(logger)
	session := config.NewSession(cfg.API)
	if session.VendedorID == 0 {
		logger.Warn("no seller id configured; listing all quotes")
	}

	client := httpclient.New(session.BaseURL,
		httpclient.WithToken(session.Token),
		httpclient.WithTimeout(cfg.API.Timeout),
		httpclient.WithLogger(logger.Named("orcamento.remote")),
	)
	orcamentoRepo := repository.NewOrcamentoAPIRepository(client)
	catalogoRepo := repository.NewCatalogoAPIRepository(client)

	a := &App{Config: cfg, Session: session, Logger: logger}
	a.Inbox = notification.NewInbox(0, logger.Named("notification"))

	var (
		journalRepo interfaces.IWorkflowEventRepository
		archive     interfaces.IPDFArchive
		cepCache    interfaces.ICEPCache
		gateway     interfaces.IPaymentGateway
	)

	if cfg.AWS.WorkflowEventsTable != "" || cfg.AWS.PDFBucket != "" {
		awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
		if err != nil {
			return nil, fmt.Errorf("aws config: %w", err)
		}
		if cfg.AWS.WorkflowEventsTable != "" {
			ddb := database.NewDynamoDBClient(awsCfg, cfg.AWS.DynamoDBEndpoint)
			journalRepo = repository.NewWorkflowEventDynamoRepository(ddb, cfg.AWS.WorkflowEventsTable)
			logger.Info("workflow journal enabled", zap.String("table", cfg.AWS.WorkflowEventsTable))
		}
		if cfg.AWS.PDFBucket != "" {
			archive = storage.NewS3Archive(storage.NewS3Client(awsCfg, cfg.AWS.S3Endpoint), cfg.AWS.PDFBucket)
			logger.Info("pdf archive enabled", zap.String("bucket", cfg.AWS.PDFBucket))
		}
	}

	if rdb := cache.NewRedisClient(cfg.Redis); rdb != nil {
		a.redis = rdb
		cepCache = cache.NewRedisCEPCache(rdb, cfg.Redis.CEPCacheTTL)
		logger.Info("cep cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	if mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPago, logger); err != nil {
		logger.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		gateway = mp
	}

	journal := usecase.NewJournal(journalRepo, session.VendedorID, logger.Named("journal"))

	a.Workflow = usecase.NewOrcamentoWorkflowUseCase(orcamentoRepo, pdf.NewOrcamentoRenderer(pdf.DefaultEmpresa), a.Inbox,
		usecase.WithJournal(journal),
		usecase.WithPDFArchive(archive),
		usecase.WithVendedorID(session.VendedorID),
		usecase.WithLogger(logger.Named("orcamento.usecase")),
	)
	a.Frete = usecase.NewFreteUseCase(orcamentoRepo, a.Workflow, cepCache, a.Inbox, journal, logger.Named("frete.usecase"))
	a.Busca = usecase.NewBuscaUseCase(catalogoRepo, cfg.Busca.Debounce, logger.Named("busca.usecase"))
	a.Cobranca = usecase.NewCobrancaUseCase(a.Workflow, gateway, a.Inbox, journal, usecase.CobrancaConfig{
		MockMode:       cfg.MercadoPago.Mock,
		TestPayerEmail: cfg.MercadoPago.TestPayerEmail,
	}, logger.Named("cobranca.usecase"))

	return a, nil
}

// Router builds the HTTP API over the container's use cases.
func (a *App) Router() *gin.Engine {
	switch a.Config.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(a.Config.Server.Mode)
	}
	return routes.NewRouter(routes.Handlers{
		Orcamento:   handlers.NewOrcamentoHandler(a.Workflow, a.Logger),
		Frete:       handlers.NewFreteHandler(a.Frete, a.Logger),
		Busca:       handlers.NewBuscaHandler(a.Busca),
		Cobranca:    handlers.NewCobrancaHandler(a.Cobranca, a.Config.MercadoPago.Mock, a.Logger),
		Notificacao: handlers.NewNotificacaoHandler(a.Inbox),
	}, a.Logger.Named("http"))
}

func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
