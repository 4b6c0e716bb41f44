package interfaces

import (
	"context"
	"dl_orcamentos/internal/domain/entities"
)

// IWorkflowEventRepository abstracts DynamoDB persistence for the action journal.

type IWorkflowEventRepository interface {
	Create(ctx context.Context, e entities.WorkflowEvent) (entities.WorkflowEvent, error)
	ListByOrcamentoID(ctx context.Context, orcamentoID int64) ([]entities.WorkflowEvent, error)
}
