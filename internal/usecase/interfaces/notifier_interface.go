package interfaces

import "dl_orcamentos/internal/domain/entities"

// INotifier receives the user-visible outcome of every action.
type INotifier interface {
	Notify(n entities.Notification)
}
