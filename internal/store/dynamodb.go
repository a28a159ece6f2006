package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
)

const handlerName = "store"

// batchWriteLimit is the table API's maximum batch size per request.
const batchWriteLimit = 25

// Under throttling the table API accepts a batch but hands back the rejected
// entries in UnprocessedItems. Those are re-sent with exponential backoff up to
// batchWriteMaxAttempts before the write is reported as failed.
const (
	batchWriteMaxAttempts = 5
	batchWriteBaseDelay   = 50 * time.Millisecond
)

// DynamoDBAPI is the subset of the DynamoDB client the store uses.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, opts ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, in *dynamodb.BatchWriteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// dynamoStore implements Store on top of the DynamoDB client.
type dynamoStore struct {
	client DynamoDBAPI

	// batchRetryDelay returns the wait before re-sending unprocessed batch
	// entries; attempt starts at zero.
	batchRetryDelay func(attempt int) time.Duration
}

// NewDynamoDB creates a Store backed by the given DynamoDB client.
func NewDynamoDB(client DynamoDBAPI) Store {
	return &dynamoStore{
		client: client,
		batchRetryDelay: func(attempt int) time.Duration {
			return batchWriteBaseDelay << attempt
		},
	}
}

func (s *dynamoStore) GetItem(ctx context.Context, table, keyName, keyValue string) (Item, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			keyName: &types.AttributeValueMemberS{Value: keyValue},
		},
	})
	if err != nil {
		return nil, storeFailure("GetItem", err)
	}
	if len(out.Item) == 0 {
		return nil, apperrors.New(
			apperrors.KindNotFound,
			fmt.Sprintf("invalid id (%s): item does not exist", keyValue),
			handlerName, "GetItem",
		).WithDetails(map[string]any{"table": table})
	}

	var item Item
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, storeFailure("GetItem", err)
	}
	return item, nil
}

func (s *dynamoStore) PutItem(ctx context.Context, table string, item Item) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return storeFailure("PutItem", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      marshaled,
	})
	if err != nil {
		return storeFailure("PutItem", err)
	}
	return nil
}

func (s *dynamoStore) UpdateItemField(
	ctx context.Context, table, keyName, keyValue, attrName string, attrValue any,
) error {
	marshaled, err := attributevalue.Marshal(attrValue)
	if err != nil {
		return storeFailure("UpdateItemField", err)
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			keyName: &types.AttributeValueMemberS{Value: keyValue},
		},
		UpdateExpression:         aws.String("SET #attr = :val"),
		ExpressionAttributeNames: map[string]string{"#attr": attrName},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":val": marshaled,
		},
	})
	if err != nil {
		return storeFailure("UpdateItemField", err)
	}
	return nil
}

func (s *dynamoStore) DeleteItem(ctx context.Context, table, keyName, keyValue string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			keyName: &types.AttributeValueMemberS{Value: keyValue},
		},
	})
	if err != nil {
		return storeFailure("DeleteItem", err)
	}
	return nil
}

func (s *dynamoStore) Scan(ctx context.Context, table string) ([]Item, error) {
	var items []Item
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, storeFailure("Scan", err)
		}

		var page []Item
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, storeFailure("Scan", err)
		}
		items = append(items, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return items, nil
}

func (s *dynamoStore) BatchPutItems(ctx context.Context, table string, items []Item) error {
	for start := 0; start < len(items); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(items) {
			end = len(items)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, item := range items[start:end] {
			marshaled, err := attributevalue.MarshalMap(item)
			if err != nil {
				return storeFailure("BatchPutItems", err)
			}
			requests = append(requests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: marshaled},
			})
		}

		if err := s.writeBatch(ctx, table, requests); err != nil {
			return err
		}
	}
	return nil
}

// writeBatch sends one chunk, re-sending entries the table API returns in
// UnprocessedItems until they drain or the attempt budget runs out.
func (s *dynamoStore) writeBatch(ctx context.Context, table string, requests []types.WriteRequest) error {
	pending := requests
	for attempt := 0; ; attempt++ {
		out, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{table: pending},
		})
		if err != nil {
			return storeFailure("BatchPutItems", err)
		}

		pending = out.UnprocessedItems[table]
		if len(pending) == 0 {
			return nil
		}
		if attempt == batchWriteMaxAttempts-1 {
			return apperrors.New(
				apperrors.KindStoreFailure, "record store operation failed", handlerName, "BatchPutItems",
			).WithDetails(map[string]any{"unprocessed": len(pending)})
		}

		select {
		case <-ctx.Done():
			return storeFailure("BatchPutItems", ctx.Err())
		case <-time.After(s.batchRetryDelay(attempt)):
		}
	}
}

// storeFailure converts a transport error into the StoreFailure kind, keeping
// the SDK error text out of caller-visible payloads.
func storeFailure(function string, err error) error {
	return apperrors.New(
		apperrors.KindStoreFailure, "record store operation failed", handlerName, function,
	).WithDetails(map[string]any{"cause": err.Error()})
}
