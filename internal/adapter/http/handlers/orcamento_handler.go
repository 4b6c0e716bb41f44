package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	request "dl_orcamentos/internal/adapter/http/dto/request"
	response "dl_orcamentos/internal/adapter/http/dto/response"
	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/infrastructure/export"
	"dl_orcamentos/internal/usecase"
	"dl_orcamentos/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// OrcamentoHandler exposes the quote workflow controller: list, board,
// transitions and PDF generation.
type OrcamentoHandler struct {
	usecase usecase.IOrcamentoWorkflowUseCase
	logger  *zap.Logger
}

func NewOrcamentoHandler(uc usecase.IOrcamentoWorkflowUseCase, logger *zap.Logger) *OrcamentoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrcamentoHandler{usecase: uc, logger: logger.Named("orcamento.handler")}
}

// Refresh reloads quotes and metrics from the backend.
//
// A failed list load is not an HTTP failure: the last known list is returned
// with the inline error in `erro`.
//
// @Summary		Refresh quotes
// @Tags			Orcamentos
// @Produce		json
// @Success		200	{object}	response.SnapshotResponse
// @Failure		409	{object}	pkg.HTTPError	"superseded by a newer refresh"
// @Router			/orcamentos/atualizar [post]
func (h *OrcamentoHandler) Refresh(c *gin.Context) {
	snap, err := h.usecase.Refresh(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrSuperseded) {
			writeError(c, mapOrcamentoError(err))
			return
		}
		h.logger.Warn("refresh failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// @Summary		List quotes
// @Tags			Orcamentos
// @Produce		json
// @Param			busca		query		string	false	"number, customer or notes"
// @Param			status		query		string	false	"status filter; expirado matches the display status"
// @Param			prioridade	query		string	false	"alta, media or baixa"
// @Param			ordenacao	query		string	false	"data, valor, prioridade or vencimento"
// @Success		200			{object}	response.ListaResponse
// @Router			/orcamentos [get]
func (h *OrcamentoHandler) List(c *gin.Context) {
	var q request.FiltroQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	lista := h.usecase.List(q.ToFiltro())
	c.JSON(http.StatusOK, response.FromLista(lista, h.usecase.Snapshot()))
}

// @Summary		Kanban board
// @Tags			Orcamentos
// @Produce		json
// @Success		200	{object}	response.QuadroResponse
// @Router			/orcamentos/quadro [get]
func (h *OrcamentoHandler) Board(c *gin.Context) {
	var q request.FiltroQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	c.JSON(http.StatusOK, response.FromQuadro(h.usecase.Board(q.ToFiltro())))
}

// Metricas returns the last metrics loaded by a refresh.
func (h *OrcamentoHandler) Metricas(c *gin.Context) {
	snap := h.usecase.Snapshot()
	if snap.Metricas == nil {
		writeError(c, pkg.NewDomainErrorSimple("METRICAS_UNAVAILABLE", "Metrics not loaded yet", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, snap.Metricas)
}

// Export writes the filtered list as an XLSX download.
func (h *OrcamentoHandler) Export(c *gin.Context) {
	var q request.FiltroQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	lista := h.usecase.List(q.ToFiltro())
	content, nome, err := export.OrcamentosXLSXBytes(lista, time.Now())
	if err != nil {
		h.logger.Error("export failed", zap.Error(err))
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+nome+`"`)
	c.Data(http.StatusOK, xlsxContentType, content)
}

// @Summary		Quote detail
// @Tags			Orcamentos
// @Produce		json
// @Param			id	path		int	true	"Orcamento ID"
// @Success		200	{object}	response.OrcamentoResponse
// @Failure		404	{object}	pkg.HTTPError
// @Router			/orcamentos/{id} [get]
func (h *OrcamentoHandler) Detail(c *gin.Context) {
	id, ok := parseOrcamentoID(c)
	if !ok {
		return
	}
	o, err := h.usecase.Detail(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrcamento(o))
}

func (h *OrcamentoHandler) History(c *gin.Context) {
	id, ok := parseOrcamentoID(c)
	if !ok {
		return
	}
	events, err := h.usecase.History(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkflowEvents(events))
}

// @Summary		Send quote by WhatsApp
// @Description	Allowed only from pendente.
// @Tags			Orcamentos
// @Accept			json
// @Produce		json
// @Param			id		path		int						true	"Orcamento ID"
// @Param			body	body		request.EnviarRequest	false	"optional phone and message"
// @Success		200		{object}	response.OrcamentoResponse
// @Failure		409		{object}	pkg.HTTPError
// @Router			/orcamentos/{id}/enviar [post]
func (h *OrcamentoHandler) Enviar(c *gin.Context) {
	id, ok := parseOrcamentoID(c)
	if !ok {
		return
	}
	var body request.EnviarRequest
	if !bindOptionalJSON(c, &body) {
		return
	}
	h.transition(c, id, entities.AcaoEnviar, body.ToOptions())
}

// @Summary		Conclude quote
// @Tags			Orcamentos
// @Accept			json
// @Produce		json
// @Param			id		path		int							true	"Orcamento ID"
// @Param			body	body		request.ConcluirRequest	false	"optional note"
// @Success		200		{object}	response.OrcamentoResponse
// @Failure		409		{object}	pkg.HTTPError
// @Router			/orcamentos/{id}/concluir [post]
func (h *OrcamentoHandler) Concluir(c *gin.Context) {
	id, ok := parseOrcamentoID(c)
	if !ok {
		return
	}
	var body request.ConcluirRequest
	if !bindOptionalJSON(c, &body) {
		return
	}
	h.transition(c, id, entities.AcaoConcluir, body.ToOptions())
}

func (h *OrcamentoHandler) transition(c *gin.Context, id int64, acao entities.AcaoWorkflow, opts usecase.TransitionOptions) {
	updated, err := h.usecase.Transition(c.Request.Context(), id, acao, opts)
	if err != nil {
		h.logger.Info("transition not applied", zap.Int64("orcamento_id", id), zap.String("acao", string(acao)), zap.Error(err))
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrcamento(updated))
}

// GeneratePDF renders the quote and streams it back. X-PDF-Registrado tells
// whether the backend accepted the pdf_gerado flag.
func (h *OrcamentoHandler) GeneratePDF(c *gin.Context) {
	id, ok := parseOrcamentoID(c)
	if !ok {
		return
	}
	doc, err := h.usecase.GeneratePDF(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapOrcamentoError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.NomeArquivo+`"`)
	c.Header("X-PDF-Registrado", strconv.FormatBool(doc.Registrado))
	if doc.ArquivoURL != "" {
		c.Header("X-PDF-Arquivo", doc.ArquivoURL)
	}
	c.Data(http.StatusOK, "application/pdf", doc.Conteudo)
}

// bindOptionalJSON accepts an empty body. It writes the 400 itself.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidRequest)
		return false
	}
	return true
}

func mapOrcamentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed from current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPDFRendererMissing):
		return pkg.NewDomainErrorSimple("PDF_UNAVAILABLE", "PDF renderer not configured", http.StatusServiceUnavailable)
	}
	return mapSharedError(err)
}
