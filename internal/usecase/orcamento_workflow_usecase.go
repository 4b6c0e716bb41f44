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
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrcamentoNotFound  = errors.New("orcamento not found")
	ErrInvalidOrcamentoID = errors.New("invalid orcamento id")
	ErrTerminalStatus     = errors.New("orcamento is in a terminal status")
	ErrInvalidTransition  = errors.New("transition not allowed from current status")
	ErrPDFRendererMissing = errors.New("pdf renderer not configured")
)

const (
	msgErroCarregar = "Não foi possível carregar os orçamentos"
	msgErroEnviar   = "Erro ao enviar orçamento"
	msgErroConcluir = "Erro ao concluir orçamento"
	msgErroPDF      = "Erro ao gerar PDF do orçamento"
)

// IOrcamentoWorkflowUseCase is the quote workflow controller.
//
// It owns the in-memory quote list; the list is only mutated after the
// backend confirms an action.

type IOrcamentoWorkflowUseCase interface {
	Refresh(ctx context.Context) (Snapshot, error)
	Snapshot() Snapshot
	List(f FiltroVisao) []entities.Orcamento
	Board(f FiltroVisao) Quadro
	Detail(ctx context.Context, id int64) (entities.Orcamento, error)
	Transition(ctx context.Context, id int64, acao entities.AcaoWorkflow, opts TransitionOptions) (entities.Orcamento, error)
	GeneratePDF(ctx context.Context, id int64) (PDFDocument, error)
	History(ctx context.Context, id int64) ([]entities.WorkflowEvent, error)
}

// IOrcamentoState gives the freight and charge use cases access to the
// controller-owned list.
type IOrcamentoState interface {
	Get(id int64) (entities.Orcamento, bool)
	Replace(o entities.Orcamento) bool
}

// Snapshot is the controller state shown by the list and the board.
// Erro is the inline error of the last failed refresh.
type Snapshot struct {
	Orcamentos   []entities.Orcamento
	Metricas     *entities.Metricas
	Erro         string
	AtualizadoEm time.Time
}

type TransitionOptions struct {
	Telefone   string
	Mensagem   string
	Observacao string
}

// PDFDocument is a rendered quote. Registrado reports whether the backend
// accepted the pdf_gerado flag.
type PDFDocument struct {
	NomeArquivo string
	Conteudo    []byte
	ArquivoURL  string
	Registrado  bool
}

type OrcamentoWorkflowUseCase struct {
	repo     interfaces.IOrcamentoRepository
	renderer interfaces.IPDFRenderer
	archive  interfaces.IPDFArchive
	notify   notifier
	journal  *Journal
	logger   *zap.Logger
	now      func() time.Time

	vendedorID int64
	inflight   *inflight
	refreshGen generation

	mu           sync.RWMutex
	orcamentos   []entities.Orcamento
	metricas     *entities.Metricas
	erro         string
	atualizadoEm time.Time
}

var (
	_ IOrcamentoWorkflowUseCase = (*OrcamentoWorkflowUseCase)(nil)
	_ IOrcamentoState           = (*OrcamentoWorkflowUseCase)(nil)
)

type WorkflowOption func(*OrcamentoWorkflowUseCase)

func WithJournal(j *Journal) WorkflowOption {
	return func(u *OrcamentoWorkflowUseCase) { u.journal = j }
}

func WithPDFArchive(a interfaces.IPDFArchive) WorkflowOption {
	return func(u *OrcamentoWorkflowUseCase) { u.archive = a }
}

func WithVendedorID(id int64) WorkflowOption {
	return func(u *OrcamentoWorkflowUseCase) { u.vendedorID = id }
}

func WithClock(now func() time.Time) WorkflowOption {
	return func(u *OrcamentoWorkflowUseCase) {
		if now != nil {
			u.now = now
		}
	}
}

func WithLogger(l *zap.Logger) WorkflowOption {
	return func(u *OrcamentoWorkflowUseCase) {
		if l != nil {
			u.logger = l
		}
	}
}

func NewOrcamentoWorkflowUseCase(repo interfaces.IOrcamentoRepository, renderer interfaces.IPDFRenderer, sink interfaces.INotifier, opts ...WorkflowOption) *OrcamentoWorkflowUseCase {
	u := &OrcamentoWorkflowUseCase{
		repo:     repo,
		renderer: renderer,
		notify:   notifier{sink: sink},
		logger:   zap.NewNop(),
		now:      time.Now,
		inflight: newInflight(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Refresh reloads the list and the metrics concurrently. A failed list load
// keeps the previous list and records the inline error; a failed metrics load
// keeps the previous metrics.
func (u *OrcamentoWorkflowUseCase) Refresh(ctx context.Context) (Snapshot, error) {
	ticket := u.refreshGen.next()
	u.logger.Debug("refresh start", zap.Uint64("ticket", ticket), zap.Int64("vendedor_id", u.vendedorID))

	var (
		lista    []entities.Orcamento
		metricas *entities.Metricas
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := u.repo.List(gctx, entities.FiltroOrcamentos{VendedorID: u.vendedorID})
		if err != nil {
			return err
		}
		lista = res
		return nil
	})
	g.Go(func() error {
		m, err := u.repo.GetMetricas(gctx)
		if err != nil {
			u.logger.Warn("metrics load failed", zap.Error(err))
			return nil
		}
		metricas = &m
		return nil
	})
	err := g.Wait()

	if !u.refreshGen.current(ticket) {
		u.logger.Debug("refresh superseded", zap.Uint64("ticket", ticket))
		return u.Snapshot(), ErrSuperseded
	}

	now := u.now()
	u.mu.Lock()
	if err != nil {
		u.erro = mensagemErro(err, msgErroCarregar)
		u.mu.Unlock()
		u.logger.Warn("refresh failed; keeping last known list", zap.Error(err))
		return u.Snapshot(), err
	}
	for i := range lista {
		u.normalize(&lista[i], now)
	}
	u.orcamentos = lista
	if metricas != nil {
		u.metricas = metricas
	}
	u.erro = ""
	u.atualizadoEm = now
	u.mu.Unlock()

	u.logger.Info("refresh success", zap.Int("total", len(lista)))
	return u.Snapshot(), nil
}

func (u *OrcamentoWorkflowUseCase) normalize(o *entities.Orcamento, now time.Time) {
	if o.NormalizeFrete() {
		u.logger.Warn("dropping freight metadata without frete_valor", zap.Int64("orcamento_id", o.ID))
	}
	o.RefreshDiasRestantes(now)
}

func (u *OrcamentoWorkflowUseCase) Snapshot() Snapshot {
	u.mu.RLock()
	defer u.mu.RUnlock()
	s := Snapshot{
		Orcamentos:   append([]entities.Orcamento(nil), u.orcamentos...),
		Erro:         u.erro,
		AtualizadoEm: u.atualizadoEm,
	}
	if u.metricas != nil {
		m := *u.metricas
		s.Metricas = &m
	}
	return s
}

func (u *OrcamentoWorkflowUseCase) List(f FiltroVisao) []entities.Orcamento {
	return FilterAndSort(u.Snapshot().Orcamentos, f)
}

func (u *OrcamentoWorkflowUseCase) Board(f FiltroVisao) Quadro {
	return BuildQuadro(u.Snapshot().Orcamentos, f)
}

func (u *OrcamentoWorkflowUseCase) Get(id int64) (entities.Orcamento, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, o := range u.orcamentos {
		if o.ID == id {
			return o, true
		}
	}
	return entities.Orcamento{}, false
}

// Replace swaps the in-memory copy with the same id. It reports false when
// the quote is not in the list.
func (u *OrcamentoWorkflowUseCase) Replace(o entities.Orcamento) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i := range u.orcamentos {
		if u.orcamentos[i].ID == o.ID {
			u.orcamentos[i] = o
			return true
		}
	}
	return false
}

// Detail reads a quote from the backend. When the backend cannot be reached
// the in-memory copy is returned instead.
func (u *OrcamentoWorkflowUseCase) Detail(ctx context.Context, id int64) (entities.Orcamento, error) {
	if id <= 0 {
		return entities.Orcamento{}, ErrInvalidOrcamentoID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if _, fromBackend := backendMessage(err); !fromBackend {
			if cached, ok := u.Get(id); ok {
				u.logger.Warn("detail load failed; using in-memory copy", zap.Int64("orcamento_id", id), zap.Error(err))
				return cached, nil
			}
		}
		return entities.Orcamento{}, err
	}
	if o.ID == 0 {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	u.normalize(&o, u.now())
	u.Replace(o)
	return o, nil
}

// Transition runs a client-originated status change. Rule violations are
// rejected before any backend call; the in-memory copy changes only after
// the backend confirms.
func (u *OrcamentoWorkflowUseCase) Transition(ctx context.Context, id int64, acao entities.AcaoWorkflow, opts TransitionOptions) (entities.Orcamento, error) {
	o, ok := u.Get(id)
	if !ok {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	if err := validateTransition(o, acao); err != nil {
		u.logger.Debug("transition rejected", zap.Int64("orcamento_id", id), zap.String("acao", string(acao)), zap.String("status", string(o.Status)))
		return entities.Orcamento{}, err
	}

	release, err := u.inflight.acquire(acao, id)
	if err != nil {
		return entities.Orcamento{}, err
	}
	defer release()

	u.logger.Info("transition start", zap.Int64("orcamento_id", id), zap.String("acao", string(acao)))
	anterior := o.Status

	var updated entities.Orcamento
	switch acao {
	case entities.AcaoEnviar:
		updated, err = u.enviar(ctx, o, opts)
	case entities.AcaoConcluir:
		updated, err = u.concluir(ctx, o, opts)
	}
	if err != nil {
		u.logger.Warn("transition failed", zap.Int64("orcamento_id", id), zap.String("acao", string(acao)), zap.Error(err))
		return entities.Orcamento{}, err
	}

	u.Replace(updated)
	u.journal.record(ctx, updated, acao, anterior, strings.TrimSpace(opts.Observacao), nil)
	u.logger.Info("transition success", zap.Int64("orcamento_id", id), zap.String("acao", string(acao)), zap.String("status", string(updated.Status)))
	return updated, nil
}

func validateTransition(o entities.Orcamento, acao entities.AcaoWorkflow) error {
	switch acao {
	case entities.AcaoEnviar:
		if o.IsTerminal() {
			return ErrTerminalStatus
		}
		if o.Status != entities.OrcamentoStatusPendente {
			return ErrInvalidTransition
		}
	case entities.AcaoConcluir:
		if o.IsTerminal() {
			return ErrTerminalStatus
		}
	default:
		return ErrInvalidTransition
	}
	return nil
}

func (u *OrcamentoWorkflowUseCase) enviar(ctx context.Context, o entities.Orcamento, opts TransitionOptions) (entities.Orcamento, error) {
	envio := entities.EnvioOrcamento{
		Metodo:                entities.MetodoEnvioWhatsApp,
		NumeroWhatsApp:        strings.TrimSpace(opts.Telefone),
		MensagemPersonalizada: strings.TrimSpace(opts.Mensagem),
	}
	if err := u.repo.Enviar(ctx, o.ID, envio); err != nil {
		u.notify.erro(o.ID, mensagemErro(err, msgErroEnviar))
		return entities.Orcamento{}, err
	}

	cur := u.latest(o)
	cur.Status = entities.OrcamentoStatusEnviado
	cur.EnviadoWhatsApp = true
	u.notify.sucesso(o.ID, "Orçamento "+o.Numero+" enviado por WhatsApp")
	return cur, nil
}

func (u *OrcamentoWorkflowUseCase) concluir(ctx context.Context, o entities.Orcamento, opts TransitionOptions) (entities.Orcamento, error) {
	observacao := strings.TrimSpace(opts.Observacao)
	res, err := u.repo.Concluir(ctx, o.ID, observacao)
	if err != nil {
		u.notify.erro(o.ID, mensagemErro(err, msgErroConcluir))
		return entities.Orcamento{}, err
	}

	var cur entities.Orcamento
	if res.ID == o.ID {
		cur = res
		u.normalize(&cur, u.now())
	} else {
		cur = u.latest(o)
		if observacao != "" {
			cur.Observacoes = observacao
		}
	}
	// the backend answer may omit the status; the action itself defines it
	cur.Status = entities.OrcamentoStatusConcluido
	u.notify.sucesso(o.ID, "Orçamento "+o.Numero+" concluído")
	return cur, nil
}

// latest returns the current in-memory copy, which a concurrent refresh may
// have replaced while the backend call was in flight.
func (u *OrcamentoWorkflowUseCase) latest(o entities.Orcamento) entities.Orcamento {
	if cur, ok := u.Get(o.ID); ok {
		return cur
	}
	return o
}

// GeneratePDF renders the quote locally and then flags pdf_gerado on the
// backend. The document is returned even when the flag update fails.
func (u *OrcamentoWorkflowUseCase) GeneratePDF(ctx context.Context, id int64) (PDFDocument, error) {
	o, ok := u.Get(id)
	if !ok {
		return PDFDocument{}, ErrOrcamentoNotFound
	}
	if u.renderer == nil {
		return PDFDocument{}, ErrPDFRendererMissing
	}

	release, err := u.inflight.acquire(entities.AcaoGerarPDF, id)
	if err != nil {
		return PDFDocument{}, err
	}
	defer release()

	now := u.now()
	content, err := u.renderer.Render(o, now)
	if err != nil {
		u.logger.Error("pdf render failed", zap.Int64("orcamento_id", id), zap.Error(err))
		u.notify.erro(id, msgErroPDF)
		return PDFDocument{}, err
	}
	doc := PDFDocument{NomeArquivo: PDFFileName(o.Numero, now), Conteudo: content}

	if u.archive != nil {
		location, err := u.archive.Upload(ctx, "orcamentos/"+doc.NomeArquivo, content)
		if err != nil {
			u.logger.Warn("pdf archive failed", zap.Int64("orcamento_id", id), zap.Error(err))
		} else {
			doc.ArquivoURL = location
		}
	}

	if err := u.repo.MarcarPDFGerado(ctx, id); err != nil {
		u.logger.Warn("pdf flag update failed", zap.Int64("orcamento_id", id), zap.Error(err))
		u.notify.aviso(id, mensagemErro(err, "PDF gerado, mas não foi possível registrá-lo no sistema"))
		return doc, nil
	}

	cur := u.latest(o)
	cur.PDFGerado = true
	u.Replace(cur)
	doc.Registrado = true
	u.journal.record(ctx, cur, entities.AcaoGerarPDF, cur.Status, doc.NomeArquivo, nil)
	u.notify.sucesso(id, "PDF do orçamento "+o.Numero+" gerado")
	u.logger.Info("pdf generated", zap.Int64("orcamento_id", id), zap.String("arquivo", doc.NomeArquivo), zap.Int("bytes", len(content)))
	return doc, nil
}

// PDFFileName returns orcamento_{numero}_{YYYY-MM-DD}.pdf.
func PDFFileName(numero string, emitidoEm time.Time) string {
	numero = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':':
			return '-'
		}
		return r
	}, strings.TrimSpace(numero))
	return "orcamento_" + numero + "_" + emitidoEm.Format("2006-01-02") + ".pdf"
}

// History lists the journal entries of a quote, newest first.
func (u *OrcamentoWorkflowUseCase) History(ctx context.Context, id int64) ([]entities.WorkflowEvent, error) {
	if id <= 0 {
		return nil, ErrInvalidOrcamentoID
	}
	events, err := u.journal.list(ctx, id)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date.After(events[j].Date) })
	return events, nil
}
