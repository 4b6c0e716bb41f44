package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidCEP         = errors.New("invalid cep")
	ErrInvalidFreteValor  = errors.New("invalid declared value for freight")
	ErrInvalidFreteOption = errors.New("invalid freight option")
)

const (
	msgErroCalcularFrete = "Erro ao calcular frete"
	msgErroAplicarFrete  = "Erro ao aplicar frete"
)

// IFreteUseCase quotes and commits shipping for a quote.

type IFreteUseCase interface {
	CalculateFreight(ctx context.Context, orcamentoID int64, cep string, valor float64) ([]entities.OpcaoFrete, error)
	Options(orcamentoID int64) []entities.OpcaoFrete
	ApplyFreight(ctx context.Context, orcamentoID int64, opcao entities.OpcaoFrete) (entities.Orcamento, error)
	ValidatePostalCode(ctx context.Context, cep string) (bool, error)
}

type FreteUseCase struct {
	repo    interfaces.IOrcamentoRepository
	state   IOrcamentoState
	cache   interfaces.ICEPCache
	notify  notifier
	journal *Journal
	logger  *zap.Logger
	now     func() time.Time

	inflight *inflight

	mu     sync.Mutex
	opcoes map[int64][]entities.OpcaoFrete
	ceps   map[int64]string
}

var _ IFreteUseCase = (*FreteUseCase)(nil)

// NewFreteUseCase wires the adapter to the controller-owned quote list.
// cache and journal may be nil.
func NewFreteUseCase(repo interfaces.IOrcamentoRepository, state IOrcamentoState, cache interfaces.ICEPCache, sink interfaces.INotifier, journal *Journal, logger *zap.Logger) *FreteUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FreteUseCase{
		repo:     repo,
		state:    state,
		cache:    cache,
		notify:   notifier{sink: sink},
		journal:  journal,
		logger:   logger,
		now:      time.Now,
		inflight: newInflight(),
		opcoes:   map[int64][]entities.OpcaoFrete{},
		ceps:     map[int64]string{},
	}
}

// NormalizeCEP drops every non-digit and requires exactly eight digits.
func NormalizeCEP(cep string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, cep)
	if len(cleaned) != 8 {
		return "", ErrInvalidCEP
	}
	return cleaned, nil
}

// WithClock replaces the clock used to recompute dias_restantes.
func (u *FreteUseCase) WithClock(now func() time.Time) *FreteUseCase {
	if now != nil {
		u.now = now
	}
	return u
}

// CalculateFreight requests carrier options. Invalid input fails locally.
// On failure the previously stored options and any applied freight stay as
// they were. Results are stored under the quote id that originated the call.
func (u *FreteUseCase) CalculateFreight(ctx context.Context, orcamentoID int64, cep string, valor float64) ([]entities.OpcaoFrete, error) {
	cleaned, err := NormalizeCEP(cep)
	if err != nil {
		return nil, err
	}
	if orcamentoID <= 0 {
		return nil, ErrInvalidOrcamentoID
	}
	if valor <= 0 && u.state != nil {
		if o, ok := u.state.Get(orcamentoID); ok {
			valor = o.ValorTotal
		}
	}
	if valor <= 0 {
		return nil, ErrInvalidFreteValor
	}

	release, err := u.inflight.acquire(entities.AcaoCalcularFrete, orcamentoID)
	if err != nil {
		return nil, err
	}
	defer release()

	u.logger.Info("freight calculation start", zap.Int64("orcamento_id", orcamentoID), zap.String("cep", cleaned), zap.Float64("valor", valor))
	opcoes, err := u.repo.CalcularFrete(ctx, orcamentoID, entities.CalculoFreteRequest{CEPDestino: cleaned, ValorTotal: valor})
	if err != nil {
		u.logger.Warn("freight calculation failed", zap.Int64("orcamento_id", orcamentoID), zap.Error(err))
		u.notify.erro(orcamentoID, mensagemErro(err, msgErroCalcularFrete))
		return nil, err
	}

	ranked := rankOpcoes(opcoes)
	u.mu.Lock()
	u.opcoes[orcamentoID] = ranked
	u.ceps[orcamentoID] = cleaned
	u.mu.Unlock()

	if len(ranked) == 0 {
		u.notify.aviso(orcamentoID, "Nenhuma opção de frete disponível para o CEP "+cleaned)
	} else {
		u.notify.sucesso(orcamentoID, "Frete calculado")
	}
	u.logger.Info("freight calculation success", zap.Int64("orcamento_id", orcamentoID), zap.Int("opcoes", len(ranked)))
	return append([]entities.OpcaoFrete(nil), ranked...), nil
}

// rankOpcoes orders options by price, then delivery days.
func rankOpcoes(opcoes []entities.OpcaoFrete) []entities.OpcaoFrete {
	out := append([]entities.OpcaoFrete{}, opcoes...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Valor != out[j].Valor {
			return out[i].Valor < out[j].Valor
		}
		return out[i].Prazo < out[j].Prazo
	})
	return out
}

func (u *FreteUseCase) Options(orcamentoID int64) []entities.OpcaoFrete {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]entities.OpcaoFrete{}, u.opcoes[orcamentoID]...)
}

// ApplyFreight commits an option to the quote. Only that quote's in-memory
// copy changes, and only after the backend confirms.
func (u *FreteUseCase) ApplyFreight(ctx context.Context, orcamentoID int64, opcao entities.OpcaoFrete) (entities.Orcamento, error) {
	if strings.TrimSpace(opcao.Transportadora) == "" || opcao.Valor < 0 || opcao.Prazo < 0 {
		return entities.Orcamento{}, ErrInvalidFreteOption
	}
	o, ok := u.state.Get(orcamentoID)
	if !ok {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	if o.IsTerminal() {
		return entities.Orcamento{}, ErrTerminalStatus
	}

	release, err := u.inflight.acquire(entities.AcaoAplicarFrete, orcamentoID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	defer release()

	u.mu.Lock()
	cep := u.ceps[orcamentoID]
	u.mu.Unlock()

	u.logger.Info("freight apply start", zap.Int64("orcamento_id", orcamentoID), zap.String("transportadora", opcao.Transportadora), zap.Float64("valor", opcao.Valor))
	res, err := u.repo.AplicarFrete(ctx, orcamentoID, entities.AplicarFreteRequest{OpcaoFrete: opcao, CEPDestino: cep})
	if err != nil {
		u.logger.Warn("freight apply failed", zap.Int64("orcamento_id", orcamentoID), zap.Error(err))
		u.notify.erro(orcamentoID, mensagemErro(err, msgErroAplicarFrete))
		return entities.Orcamento{}, err
	}

	var updated entities.Orcamento
	if res.ID == orcamentoID && res.HasFrete() {
		updated = res
		updated.NormalizeFrete()
		updated.RefreshDiasRestantes(u.now())
	} else {
		updated = o
		if cur, ok := u.state.Get(orcamentoID); ok {
			updated = cur
		}
		updated.ApplyFrete(opcao, cep)
	}
	u.state.Replace(updated)

	u.journal.record(ctx, updated, entities.AcaoAplicarFrete, updated.Status, opcao.Transportadora+" "+opcao.Servico, nil)
	u.notify.sucesso(orcamentoID, "Frete aplicado ao orçamento "+updated.Numero)
	u.logger.Info("freight apply success", zap.Int64("orcamento_id", orcamentoID))
	return updated, nil
}

// ValidatePostalCode is advisory: callers may proceed whatever it answers.
func (u *FreteUseCase) ValidatePostalCode(ctx context.Context, cep string) (bool, error) {
	cleaned, err := NormalizeCEP(cep)
	if err != nil {
		return false, nil
	}

	if u.cache != nil {
		valido, found, err := u.cache.Get(ctx, cleaned)
		if err != nil {
			u.logger.Warn("cep cache read failed", zap.String("cep", cleaned), zap.Error(err))
		} else if found {
			return valido, nil
		}
	}

	valido, err := u.repo.ValidarCEP(ctx, cleaned)
	if err != nil {
		return false, err
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, cleaned, valido); err != nil {
			u.logger.Warn("cep cache write failed", zap.String("cep", cleaned), zap.Error(err))
		}
	}
	return valido, nil
}
