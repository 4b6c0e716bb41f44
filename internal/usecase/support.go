package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrActionInProgress = errors.New("action already in progress for this quote")
	ErrSuperseded       = errors.New("superseded by a newer request")
)

// inflight rejects a second invocation of the same action on the same quote
// while the first one is pending.
type inflight struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func newInflight() *inflight {
	return &inflight{pending: map[string]struct{}{}}
}

func (f *inflight) acquire(acao entities.AcaoWorkflow, id int64) (func(), error) {
	key := fmt.Sprintf("%s:%d", acao, id)
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.pending[key]; busy {
		return nil, ErrActionInProgress
	}
	f.pending[key] = struct{}{}
	return func() {
		f.mu.Lock()
		delete(f.pending, key)
		f.mu.Unlock()
	}, nil
}

// generation implements last-request-wins: only the newest ticket is current.
type generation struct {
	n atomic.Uint64
}

func (g *generation) next() uint64 {
	return g.n.Add(1)
}

func (g *generation) current(ticket uint64) bool {
	return g.n.Load() == ticket
}

type notifier struct {
	sink interfaces.INotifier
}

func (n notifier) sucesso(id int64, msg string) {
	n.send(entities.NivelSucesso, id, msg)
}

func (n notifier) erro(id int64, msg string) {
	n.send(entities.NivelErro, id, msg)
}

func (n notifier) aviso(id int64, msg string) {
	n.send(entities.NivelAviso, id, msg)
}

func (n notifier) send(nivel entities.NivelNotificacao, id int64, msg string) {
	if n.sink == nil {
		return
	}
	n.sink.Notify(entities.Notification{Nivel: nivel, Mensagem: msg, OrcamentoID: id})
}

// backendMessager is implemented by errors that carry the backend's own text.
type backendMessager interface {
	BackendMessage() string
}

func backendMessage(err error) (string, bool) {
	var bm backendMessager
	if errors.As(err, &bm) && bm.BackendMessage() != "" {
		return bm.BackendMessage(), true
	}
	return "", false
}

// mensagemErro prefers the backend's own message over the generic fallback.
func mensagemErro(err error, padrao string) string {
	if msg, ok := backendMessage(err); ok {
		return msg
	}
	return padrao
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// Journal appends confirmed actions to the workflow event store. Failures are
// logged and never returned to the caller. A nil *Journal records nothing.
type Journal struct {
	repo       interfaces.IWorkflowEventRepository
	vendedorID int64
	now        func() time.Time
	logger     *zap.Logger
}

func NewJournal(repo interfaces.IWorkflowEventRepository, vendedorID int64, logger *zap.Logger) *Journal {
	if repo == nil {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Journal{repo: repo, vendedorID: vendedorID, now: nowUTC, logger: logger}
}

func (j *Journal) record(ctx context.Context, o entities.Orcamento, acao entities.AcaoWorkflow, anterior entities.OrcamentoStatus, detalhe string, payload map[string]interface{}) {
	if j == nil {
		return
	}
	evt := entities.WorkflowEvent{
		ID:              uuid.NewString(),
		OrcamentoID:     o.ID,
		Numero:          o.Numero,
		Acao:            acao,
		StatusAnterior:  anterior,
		StatusNovo:      o.Status,
		Detalhe:         detalhe,
		VendedorID:      j.vendedorID,
		Date:            j.now(),
		ProviderPayload: payload,
	}
	if _, err := j.repo.Create(ctx, evt); err != nil {
		j.logger.Warn("journal write failed",
			zap.Int64("orcamento_id", o.ID), zap.String("acao", string(acao)), zap.Error(err))
	}
}

func (j *Journal) list(ctx context.Context, orcamentoID int64) ([]entities.WorkflowEvent, error) {
	if j == nil {
		return []entities.WorkflowEvent{}, nil
	}
	return j.repo.ListByOrcamentoID(ctx, orcamentoID)
}
