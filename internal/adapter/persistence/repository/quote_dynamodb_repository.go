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

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID           string `dynamodbav:"id"`
	ContractorID string `dynamodbav:"contractor_id"`
	CustomerName string `dynamodbav:"customer_name"`
	Status       string `dynamodbav:"status"`
	Document     string `dynamodbav:"document"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI (contractor_id-index): contractor_id
//
// The full quote (areas, product sets, breakdown snapshot) lives in a JSON
// document attribute; scalar attributes are duplicated for indexing and
// conditional writes. The document is the source of truth on read.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := marshalQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) ListByContractorID(ctx context.Context, contractorID string) ([]entities.Quote, error) {
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

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, item := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		q, err := fromQuoteItem(it)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := marshalQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
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
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

// UpdateStatusByID rewrites the whole item: the JSON document must stay in
// sync with the indexed status attribute. Concurrent writers are last-write-
// wins, which matches the builder's save semantics.
func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	q, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, nil
	}

	q.Status = status
	q.UpdatedAt = time.Now().UTC()
	return r.Update(ctx, q)
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func marshalQuoteItem(q entities.Quote) (map[string]types.AttributeValue, error) {
	doc, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	it := quoteItem{
		ID:           q.ID,
		ContractorID: q.ContractorID,
		CustomerName: q.CustomerName,
		Status:       string(q.Status),
		Document:     string(doc),
		CreatedAt:    q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	return attributevalue.MarshalMap(it)
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	var q entities.Quote
	if err := json.Unmarshal([]byte(it.Document), &q); err != nil {
		return entities.Quote{}, err
	}
	// Scalar attributes win over the document copy; status transitions may
	// have been written after the document snapshot.
	q.Status = entities.QuoteStatus(it.Status)
	if updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt); err == nil {
		q.UpdatedAt = updatedAt
	}
	return q, nil
}
