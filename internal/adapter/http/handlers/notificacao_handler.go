package handlers

import (
	"net/http"

	response "dl_orcamentos/internal/adapter/http/dto/response"
	"dl_orcamentos/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// INotificationInbox is the queue of user-visible toasts produced by the
// use cases.
type INotificationInbox interface {
	Drain() []entities.Notification
	Peek() []entities.Notification
}

type NotificacaoHandler struct {
	inbox INotificationInbox
}

func NewNotificacaoHandler(inbox INotificationInbox) *NotificacaoHandler {
	return &NotificacaoHandler{inbox: inbox}
}

// List drains pending notifications; ?peek=true leaves them queued.
func (h *NotificacaoHandler) List(c *gin.Context) {
	var out []entities.Notification
	if c.Query("peek") == "true" {
		out = h.inbox.Peek()
	} else {
		out = h.inbox.Drain()
	}
	if out == nil {
		out = []entities.Notification{}
	}
	c.JSON(http.StatusOK, response.NotificacoesResponse{Notificacoes: out})
}
