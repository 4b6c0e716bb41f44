package interfaces

import (
	"context"
	"dl_orcamentos/internal/domain/entities"
	"time"
)

// IPDFRenderer renders a quote document locally.
type IPDFRenderer interface {
	Render(o entities.Orcamento, emitidoEm time.Time) ([]byte, error)
}

// IPDFArchive stores rendered documents and returns their key.
type IPDFArchive interface {
	Upload(ctx context.Context, key string, content []byte) (string, error)
}
