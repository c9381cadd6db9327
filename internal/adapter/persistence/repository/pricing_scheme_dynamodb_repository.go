package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPricingSchemesTableName = "pricing_schemes"
	contractorIndexName            = "contractor_id-index"
)

type pricingSchemeItem struct {
	ID           string `dynamodbav:"id"`
	ContractorID string `dynamodbav:"contractor_id"`
	Name         string `dynamodbav:"name"`
	Model        string `dynamodbav:"model"`
	Rules        string `dynamodbav:"rules"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// PricingSchemeDynamoRepository persists PricingScheme entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI (contractor_id-index): contractor_id
//
// The rules object is stored as a JSON document: rate tables are sparse,
// contractor-shaped maps and do not benefit from per-attribute modeling.

type PricingSchemeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingSchemeRepository = (*PricingSchemeDynamoRepository)(nil)

func NewPricingSchemeDynamoRepository(ddb *dynamodb.Client) *PricingSchemeDynamoRepository {
	return &PricingSchemeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_SCHEMES_TABLE", defaultPricingSchemesTableName),
	}
}

func (r *PricingSchemeDynamoRepository) Create(ctx context.Context, s entities.PricingScheme) (entities.PricingScheme, error) {
	it, err := toPricingSchemeItem(s)
	if err != nil {
		return entities.PricingScheme{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PricingScheme{}, err
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
		return entities.PricingScheme{}, err
	}
	return s, nil
}

func (r *PricingSchemeDynamoRepository) GetByID(ctx context.Context, id string) (entities.PricingScheme, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingScheme{}, err
	}
	if len(out.Item) == 0 {
		return entities.PricingScheme{}, nil
	}

	var it pricingSchemeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingScheme{}, err
	}
	return fromPricingSchemeItem(it)
}

func (r *PricingSchemeDynamoRepository) ListByContractorID(ctx context.Context, contractorID string) ([]entities.PricingScheme, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractorIndexName),
		KeyConditionExpression: aws.String("#contractor_id = :contractor_id"),
		ExpressionAttributeNames: map[string]string{
			"#contractor_id": "contractor_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":contractor_id": &types.AttributeValueMemberS{Value: contractorID},
		},
	})
	if err != nil {
		return nil, err
	}

	schemes := make([]entities.PricingScheme, 0, len(out.Items))
	for _, item := range out.Items {
		var it pricingSchemeItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		s, err := fromPricingSchemeItem(it)
		if err != nil {
			return nil, err
		}
		schemes = append(schemes, s)
	}
	return schemes, nil
}

func (r *PricingSchemeDynamoRepository) Update(ctx context.Context, s entities.PricingScheme) (entities.PricingScheme, error) {
	it, err := toPricingSchemeItem(s)
	if err != nil {
		return entities.PricingScheme{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PricingScheme{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PricingScheme{}, nil
		}
		return entities.PricingScheme{}, err
	}
	return s, nil
}

func (r *PricingSchemeDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPricingSchemeItem(s entities.PricingScheme) (pricingSchemeItem, error) {
	rules, err := json.Marshal(s.Rules)
	if err != nil {
		return pricingSchemeItem{}, err
	}
	return pricingSchemeItem{
		ID:           s.ID,
		ContractorID: s.ContractorID,
		Name:         s.Name,
		Model:        string(s.Model),
		Rules:        string(rules),
		CreatedAt:    s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromPricingSchemeItem(it pricingSchemeItem) (entities.PricingScheme, error) {
	var rules entities.PricingRules
	if it.Rules != "" {
		if err := json.Unmarshal([]byte(it.Rules), &rules); err != nil {
			return entities.PricingScheme{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PricingScheme{
		ID:           it.ID,
		ContractorID: it.ContractorID,
		Name:         it.Name,
		Model:        entities.PricingModel(it.Model),
		Rules:        rules,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}
