// Package store provides the key-value record store backed by DynamoDB. It is
// the only layer that talks to the table API: transport failures are converted
// to StoreFailure errors and absent records to NotFound errors at this boundary,
// so no raw SDK error ever reaches a handler.
package store

import (
	"context"
)

// Item is a single table record.
type Item = map[string]any

// Store is the record-store contract consumed by the business operations.
type Store interface {
	// GetItem fetches a record by its primary key. Returns a NotFound error
	// when the record is absent.
	GetItem(ctx context.Context, table, keyName, keyValue string) (Item, error)

	// PutItem writes a full record, replacing any previous version.
	PutItem(ctx context.Context, table string, item Item) error

	// UpdateItemField sets a single attribute on an existing record.
	UpdateItemField(ctx context.Context, table, keyName, keyValue, attrName string, attrValue any) error

	// DeleteItem removes a record by its primary key.
	DeleteItem(ctx context.Context, table, keyName, keyValue string) error

	// Scan returns every record in the table, following pagination.
	Scan(ctx context.Context, table string) ([]Item, error)

	// BatchPutItems writes records in chunks of the table API's batch limit.
	BatchPutItems(ctx context.Context, table string, items []Item) error
}
