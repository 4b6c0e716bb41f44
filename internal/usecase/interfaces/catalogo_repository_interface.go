package interfaces

import (
	"context"
	"dl_orcamentos/internal/domain/entities"
)

// ICatalogoRepository abstracts the customer and stock search endpoints.

type ICatalogoRepository interface {
	BuscarClientes(ctx context.Context, termo string) ([]entities.ClienteResumo, error)
	BuscarProdutos(ctx context.Context, termo string, limit int) ([]entities.ProdutoResumo, error)
}
