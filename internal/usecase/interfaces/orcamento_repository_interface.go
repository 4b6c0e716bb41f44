package interfaces

import (
	"context"
	"dl_orcamentos/internal/domain/entities"
)

// IOrcamentoRepository abstracts the remote orçamentos backend.
//
// GetByID returns a zero Orcamento (ID == 0) when the quote does not exist.

type IOrcamentoRepository interface {
	List(ctx context.Context, filtro entities.FiltroOrcamentos) ([]entities.Orcamento, error)
	GetByID(ctx context.Context, id int64) (entities.Orcamento, error)
	GetMetricas(ctx context.Context) (entities.Metricas, error)
	Enviar(ctx context.Context, id int64, envio entities.EnvioOrcamento) error
	Concluir(ctx context.Context, id int64, observacao string) (entities.Orcamento, error)
	MarcarPDFGerado(ctx context.Context, id int64) error
	CalcularFrete(ctx context.Context, id int64, req entities.CalculoFreteRequest) ([]entities.OpcaoFrete, error)
	AplicarFrete(ctx context.Context, id int64, req entities.AplicarFreteRequest) (entities.Orcamento, error)
	ValidarCEP(ctx context.Context, cep string) (bool, error)
}
