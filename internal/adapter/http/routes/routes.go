package routes

import (
	"net/http"

	_ "dl_orcamentos/docs" // generated by swag init
	"dl_orcamentos/internal/adapter/http/handlers"
	"dl_orcamentos/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathOrcamentos   = "/orcamentos"
	PathOrcamentoID  = "/:id"
	PathCEP          = "/cep"
	PathClientes     = "/clientes"
	PathProdutos     = "/produtos"
	PathNotificacoes = "/notificacoes"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Orcamento   *handlers.OrcamentoHandler
	Frete       *handlers.FreteHandler
	Busca       *handlers.BuscaHandler
	Cobranca    *handlers.CobrancaHandler
	Notificacao *handlers.NotificacaoHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 API.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrcamentoRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addOrcamentoRoutes(rg *gin.RouterGroup, h Handlers) {
	orcamentos := rg.Group(PathOrcamentos)
	{
		orcamentos.POST("/atualizar", h.Orcamento.Refresh)
		orcamentos.GET("", h.Orcamento.List)
		orcamentos.GET("/quadro", h.Orcamento.Board)
		orcamentos.GET("/metricas", h.Orcamento.Metricas)
		orcamentos.GET("/exportar", h.Orcamento.Export)

		orcamento := orcamentos.Group(PathOrcamentoID)
		orcamento.GET("", h.Orcamento.Detail)
		orcamento.GET("/historico", h.Orcamento.History)
		orcamento.POST("/enviar", h.Orcamento.Enviar)
		orcamento.POST("/concluir", h.Orcamento.Concluir)
		orcamento.GET("/pdf", h.Orcamento.GeneratePDF)

		orcamento.POST("/frete/calcular", h.Frete.Calculate)
		orcamento.GET("/frete/opcoes", h.Frete.Options)
		orcamento.PUT("/frete", h.Frete.Apply)

		orcamento.POST("/cobranca", h.Cobranca.Cobrar)
	}

	rg.GET(PathCEP+"/:cep/validar", h.Frete.ValidateCEP)
	rg.GET(PathClientes+"/buscar", h.Busca.Clientes)
	rg.GET(PathProdutos+"/buscar", h.Busca.Produtos)
	rg.GET(PathNotificacoes, h.Notificacao.List)
}
