package repository

import (
	"context"
	"encoding/json"
	"time"

	"piscinas_xpto/internal/domain/entities"
	"piscinas_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBudgetsTableName = "budgets"

type budgetItem struct {
	ID         string  `dynamodbav:"id"`
	TotalPrice float64 `dynamodbav:"total_price"`
	Document   string  `dynamodbav:"document"`
	CreatedAt  string  `dynamodbav:"created_at"`
	UpdatedAt  string  `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The priced budget is a deep document (families, line items, breakdowns),
// so it is stored as a single JSON attribute; id, total and timestamps are
// lifted to top-level attributes for listing.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	it, err := toBudgetItem(b)
	if err != nil {
		return entities.Budget{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it)
}

func toBudgetItem(b entities.Budget) (budgetItem, error) {
	doc, err := json.Marshal(b)
	if err != nil {
		return budgetItem{}, err
	}
	return budgetItem{
		ID:         b.ID,
		TotalPrice: b.TotalPrice,
		Document:   string(doc),
		CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromBudgetItem(it budgetItem) (entities.Budget, error) {
	var b entities.Budget
	if err := json.Unmarshal([]byte(it.Document), &b); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}
