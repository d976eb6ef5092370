package repository

import (
	"context"
	"fmt"
	"strings"

	"piscinas_xpto/internal/domain/entities"
	"piscinas_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCatalogTableName = "catalog"
	catalogFamilyIndex      = "family_name-index"
	catalogCategoryIndex    = "category_id-index"
)

type catalogAttributeItem struct {
	Numeric *float64 `dynamodbav:"numeric,omitempty"`
	Unit    string   `dynamodbav:"unit,omitempty"`
	Flag    *bool    `dynamodbav:"flag,omitempty"`
	Text    string   `dynamodbav:"text,omitempty"`
}

type catalogRuleItem struct {
	ConditionType  string `dynamodbav:"condition_type"`
	ConditionValue string `dynamodbav:"condition_value"`
}

type catalogItem struct {
	ID           int                             `dynamodbav:"id"`
	Code         string                          `dynamodbav:"code,omitempty"`
	Name         string                          `dynamodbav:"name"`
	Brand        string                          `dynamodbav:"brand,omitempty"`
	CategoryID   int                             `dynamodbav:"category_id"`
	CategoryName string                          `dynamodbav:"category_name"`
	FamilyName   string                          `dynamodbav:"family_name"`
	BasePrice    float64                         `dynamodbav:"base_price"`
	CostPrice    float64                         `dynamodbav:"cost_price"`
	Unit         string                          `dynamodbav:"unit,omitempty"`
	IsActive     bool                            `dynamodbav:"is_active"`
	Attributes   map[string]catalogAttributeItem `dynamodbav:"attributes,omitempty"`
	Rules        []catalogRuleItem               `dynamodbav:"rules,omitempty"`
}

// CatalogDynamoRepository reads the product catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: family_name-index (PK: family_name)
//   - GSI: category_id-index (PK: category_id)
//
// Every transport failure is wrapped in ErrCatalogUnavailable so the
// fallback decorator can route the read to the static dataset.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) ProductsByFamily(ctx context.Context, familyName string) ([]entities.Product, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(catalogFamilyIndex),
		KeyConditionExpression: aws.String("family_name = :family"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":family": &types.AttributeValueMemberS{Value: familyName},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrCatalogUnavailable, err)
	}
	return unmarshalActiveProducts(out.Items)
}

func (r *CatalogDynamoRepository) ProductsByCategory(ctx context.Context, categoryID int) ([]entities.Product, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(catalogCategoryIndex),
		KeyConditionExpression: aws.String("category_id = :category"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", categoryID)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrCatalogUnavailable, err)
	}
	return unmarshalActiveProducts(out.Items)
}

func (r *CatalogDynamoRepository) ProductByID(ctx context.Context, id int) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, fmt.Errorf("%w: %v", interfaces.ErrCatalogUnavailable, err)
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	if !it.IsActive {
		return entities.Product{}, nil
	}
	return fromCatalogItem(it), nil
}

func (r *CatalogDynamoRepository) ProductsMatchingConditions(ctx context.Context, conditions map[string]string) ([]entities.Product, error) {
	// Selection rules are nested documents, so matching happens client-side
	// over the active scan.
	products, err := r.scanActive(ctx)
	if err != nil {
		return nil, err
	}

	var out []entities.Product
	for _, p := range products {
		if p.MatchesConditions(conditions) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *CatalogDynamoRepository) ProductByNamePattern(ctx context.Context, pattern string) (entities.Product, error) {
	products, err := r.scanActive(ctx)
	if err != nil {
		return entities.Product{}, err
	}

	for _, p := range products {
		if strings.EqualFold(p.Name, pattern) {
			return p, nil
		}
	}
	lowered := strings.ToLower(pattern)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), lowered) {
			return p, nil
		}
	}
	return entities.Product{}, nil
}

func (r *CatalogDynamoRepository) scanActive(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("is_active = :active"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":active": &types.AttributeValueMemberBOOL{Value: true},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", interfaces.ErrCatalogUnavailable, err)
		}

		page, err := unmarshalActiveProducts(out.Items)
		if err != nil {
			return nil, err
		}
		products = append(products, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return products, nil
}

func unmarshalActiveProducts(raw []map[string]types.AttributeValue) ([]entities.Product, error) {
	products := make([]entities.Product, 0, len(raw))
	for _, item := range raw {
		var it catalogItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		if !it.IsActive {
			continue
		}
		products = append(products, fromCatalogItem(it))
	}
	return products, nil
}

func fromCatalogItem(it catalogItem) entities.Product {
	var attrs map[string]entities.AttributeValue
	if len(it.Attributes) > 0 {
		attrs = make(map[string]entities.AttributeValue, len(it.Attributes))
		for name, a := range it.Attributes {
			attrs[name] = entities.AttributeValue{Numeric: a.Numeric, Unit: a.Unit, Flag: a.Flag, Text: a.Text}
		}
	}

	var rules []entities.SelectionRule
	for _, rule := range it.Rules {
		rules = append(rules, entities.SelectionRule{
			ConditionType:  rule.ConditionType,
			ConditionValue: rule.ConditionValue,
		})
	}

	return entities.Product{
		ID:           it.ID,
		Code:         it.Code,
		Name:         it.Name,
		Brand:        it.Brand,
		CategoryID:   it.CategoryID,
		CategoryName: it.CategoryName,
		FamilyName:   it.FamilyName,
		BasePrice:    it.BasePrice,
		CostPrice:    it.CostPrice,
		Unit:         it.Unit,
		IsActive:     it.IsActive,
		Attributes:   attrs,
		Rules:        rules,
	}
}
