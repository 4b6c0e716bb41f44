package repository

import (
	"context"
	"strconv"
	"time"

	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultWorkflowEventsTable = "orcamento_workflow_events"
	workflowEventsOrcamentoIdx = "orcamento_id-index"
)

// DynamoDBAPI is the subset of *dynamodb.Client the journal needs.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type workflowEventItem struct {
	ID              string                 `dynamodbav:"id"`
	OrcamentoID     int64                  `dynamodbav:"orcamento_id"`
	Numero          string                 `dynamodbav:"numero_orcamento"`
	Acao            string                 `dynamodbav:"acao"`
	StatusAnterior  string                 `dynamodbav:"status_anterior"`
	StatusNovo      string                 `dynamodbav:"status_novo"`
	Detalhe         string                 `dynamodbav:"detalhe,omitempty"`
	VendedorID      int64                  `dynamodbav:"vendedor_id,omitempty"`
	Date            string                 `dynamodbav:"date"`
	ProviderPayload map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
}

// WorkflowEventDynamoRepository persists the quote action journal.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: orcamento_id-index (PK: orcamento_id, number)

type WorkflowEventDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IWorkflowEventRepository = (*WorkflowEventDynamoRepository)(nil)

func NewWorkflowEventDynamoRepository(ddb DynamoDBAPI, tableName string) *WorkflowEventDynamoRepository {
	if tableName == "" {
		tableName = DefaultWorkflowEventsTable
	}
	return &WorkflowEventDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkflowEventDynamoRepository) Create(ctx context.Context, e entities.WorkflowEvent) (entities.WorkflowEvent, error) {
	av, err := attributevalue.MarshalMap(toWorkflowEventItem(e))
	if err != nil {
		return entities.WorkflowEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.WorkflowEvent{}, err
	}
	return e, nil
}

func (r *WorkflowEventDynamoRepository) ListByOrcamentoID(ctx context.Context, orcamentoID int64) ([]entities.WorkflowEvent, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workflowEventsOrcamentoIdx),
		KeyConditionExpression: aws.String("orcamento_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberN{Value: strconv.FormatInt(orcamentoID, 10)},
		},
	}

	events := make([]entities.WorkflowEvent, 0)
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it workflowEventItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			events = append(events, fromWorkflowEventItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return events, nil
}

func toWorkflowEventItem(e entities.WorkflowEvent) workflowEventItem {
	return workflowEventItem{
		ID:              e.ID,
		OrcamentoID:     e.OrcamentoID,
		Numero:          e.Numero,
		Acao:            string(e.Acao),
		StatusAnterior:  string(e.StatusAnterior),
		StatusNovo:      string(e.StatusNovo),
		Detalhe:         e.Detalhe,
		VendedorID:      e.VendedorID,
		Date:            e.Date.UTC().Format(time.RFC3339Nano),
		ProviderPayload: e.ProviderPayload,
	}
}

func fromWorkflowEventItem(it workflowEventItem) entities.WorkflowEvent {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.WorkflowEvent{
		ID:              it.ID,
		OrcamentoID:     it.OrcamentoID,
		Numero:          it.Numero,
		Acao:            entities.AcaoWorkflow(it.Acao),
		StatusAnterior:  entities.OrcamentoStatus(it.StatusAnterior),
		StatusNovo:      entities.OrcamentoStatus(it.StatusNovo),
		Detalhe:         it.Detalhe,
		VendedorID:      it.VendedorID,
		Date:            dt,
		ProviderPayload: it.ProviderPayload,
	}
}
