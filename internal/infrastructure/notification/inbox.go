package notification

import (
	"sync"
	"time"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultCapacity = 100

// Inbox keeps the most recent notifications until the presentation layer
// drains them. The oldest entries are dropped once capacity is reached.
type Inbox struct {
	mu       sync.Mutex
	items    []entities.Notification
	capacity int
	now      func() time.Time
	logger   *zap.Logger
}

var _ interfaces.INotifier = (*Inbox)(nil)

func NewInbox(capacity int, logger *zap.Logger) *Inbox {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Inbox{capacity: capacity, now: time.Now, logger: logger}
}

func (i *Inbox) Notify(n entities.Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CriadaEm.IsZero() {
		n.CriadaEm = i.now().UTC()
	}

	i.mu.Lock()
	i.items = append(i.items, n)
	if over := len(i.items) - i.capacity; over > 0 {
		i.items = append([]entities.Notification(nil), i.items[over:]...)
	}
	i.mu.Unlock()

	i.logger.Debug("notification queued",
		zap.String("nivel", string(n.Nivel)),
		zap.Int64("orcamento_id", n.OrcamentoID),
		zap.String("mensagem", n.Mensagem))
}

// Drain returns the pending notifications, oldest first, and empties the inbox.
func (i *Inbox) Drain() []entities.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := i.items
	i.items = nil
	if out == nil {
		return []entities.Notification{}
	}
	return out
}

// Peek returns the pending notifications without removing them.
func (i *Inbox) Peek() []entities.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]entities.Notification{}, i.items...)
}
