// Package mocks provides a mock Store implementation for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/domgiordano/xomper-back-end/internal/store"
)

// MockStore is a mock implementation of store.Store.
type MockStore struct {
	mock.Mock
}

// GetItem mocks the GetItem method of Store.
func (m *MockStore) GetItem(ctx context.Context, table, keyName, keyValue string) (store.Item, error) {
	args := m.Called(ctx, table, keyName, keyValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(store.Item), args.Error(1)
}

// PutItem mocks the PutItem method of Store.
func (m *MockStore) PutItem(ctx context.Context, table string, item store.Item) error {
	args := m.Called(ctx, table, item)
	return args.Error(0)
}

// UpdateItemField mocks the UpdateItemField method of Store.
func (m *MockStore) UpdateItemField(
	ctx context.Context, table, keyName, keyValue, attrName string, attrValue any,
) error {
	args := m.Called(ctx, table, keyName, keyValue, attrName, attrValue)
	return args.Error(0)
}

// DeleteItem mocks the DeleteItem method of Store.
func (m *MockStore) DeleteItem(ctx context.Context, table, keyName, keyValue string) error {
	args := m.Called(ctx, table, keyName, keyValue)
	return args.Error(0)
}

// Scan mocks the Scan method of Store.
func (m *MockStore) Scan(ctx context.Context, table string) ([]store.Item, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Item), args.Error(1)
}

// BatchPutItems mocks the BatchPutItems method of Store.
func (m *MockStore) BatchPutItems(ctx context.Context, table string, items []store.Item) error {
	args := m.Called(ctx, table, items)
	return args.Error(0)
}
