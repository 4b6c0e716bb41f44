package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	DefaultDebounce   = 300 * time.Millisecond
	minTermoClientes  = 3
	minTermoProdutos  = 2
	defaultLimitBusca = 50
)

// IBuscaUseCase runs debounced customer and product searches.
//
// Each search kind keeps its own generation: a call superseded during the
// debounce window never reaches the backend, and an answer that arrives after
// a newer call started is discarded with ErrSuperseded.

type IBuscaUseCase interface {
	BuscarClientes(ctx context.Context, termo string) ([]entities.ClienteResumo, error)
	BuscarProdutos(ctx context.Context, termo string, limit int) ([]entities.ProdutoResumo, error)
}

type BuscaUseCase struct {
	repo   interfaces.ICatalogoRepository
	delay  time.Duration
	logger *zap.Logger

	clientesGen generation
	produtosGen generation
}

var _ IBuscaUseCase = (*BuscaUseCase)(nil)

func NewBuscaUseCase(repo interfaces.ICatalogoRepository, delay time.Duration, logger *zap.Logger) *BuscaUseCase {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BuscaUseCase{repo: repo, delay: delay, logger: logger}
}

func (u *BuscaUseCase) BuscarClientes(ctx context.Context, termo string) ([]entities.ClienteResumo, error) {
	termo = strings.TrimSpace(termo)
	ticket := u.clientesGen.next()
	if utf8.RuneCountInString(termo) < minTermoClientes {
		return []entities.ClienteResumo{}, nil
	}

	if err := u.settle(ctx, &u.clientesGen, ticket); err != nil {
		return nil, err
	}
	res, err := u.repo.BuscarClientes(ctx, termo)
	if !u.clientesGen.current(ticket) {
		u.logger.Debug("stale customer search discarded", zap.String("termo", termo))
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []entities.ClienteResumo{}
	}
	return res, nil
}

func (u *BuscaUseCase) BuscarProdutos(ctx context.Context, termo string, limit int) ([]entities.ProdutoResumo, error) {
	termo = strings.TrimSpace(termo)
	ticket := u.produtosGen.next()
	if utf8.RuneCountInString(termo) < minTermoProdutos {
		return []entities.ProdutoResumo{}, nil
	}
	if limit <= 0 {
		limit = defaultLimitBusca
	}

	if err := u.settle(ctx, &u.produtosGen, ticket); err != nil {
		return nil, err
	}
	res, err := u.repo.BuscarProdutos(ctx, termo, limit)
	if !u.produtosGen.current(ticket) {
		u.logger.Debug("stale product search discarded", zap.String("termo", termo))
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []entities.ProdutoResumo{}
	}
	return res, nil
}

// settle waits out the debounce window and reports ErrSuperseded when a newer
// call arrived meanwhile.
func (u *BuscaUseCase) settle(ctx context.Context, gen *generation, ticket uint64) error {
	timer := time.NewTimer(u.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	if !gen.current(ticket) {
		return ErrSuperseded
	}
	return nil
}
