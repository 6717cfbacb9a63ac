package backend

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a testify mock implementing Client.
type MockClient struct {
	mock.Mock

	MockAuth    MockAuth
	MockStorage MockStorage
}

func (m *MockClient) Select(ctx context.Context, collection string, opts SelectOptions, dest any) error {
	args := m.Called(ctx, collection, opts, dest)
	return args.Error(0)
}

func (m *MockClient) Count(ctx context.Context, collection string, filter map[string]string) (int, error) {
	args := m.Called(ctx, collection, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockClient) Insert(ctx context.Context, collection string, record any, dest any) error {
	args := m.Called(ctx, collection, record, dest)
	return args.Error(0)
}

func (m *MockClient) Update(ctx context.Context, collection, id string, record any) error {
	args := m.Called(ctx, collection, id, record)
	return args.Error(0)
}

func (m *MockClient) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

func (m *MockClient) Auth() AuthClient {
	return &m.MockAuth
}

func (m *MockClient) Storage() StorageClient {
	return &m.MockStorage
}

func (m *MockClient) CheckConnection(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClient) InvalidateCache() {
	m.Called()
}

func (m *MockClient) Shutdown() {
	m.Called()
}

// MockAuth is a testify mock implementing AuthClient.
type MockAuth struct {
	mock.Mock
}

func (m *MockAuth) SignIn(ctx context.Context, email, password string) (Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(Session), args.Error(1)
}

func (m *MockAuth) SignOut(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}

func (m *MockAuth) Principal(ctx context.Context, accessToken string) (Principal, error) {
	args := m.Called(ctx, accessToken)
	return args.Get(0).(Principal), args.Error(1)
}

// MockStorage is a testify mock implementing StorageClient.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, bucket, path, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) PublicURL(bucket, path string) string {
	args := m.Called(bucket, path)
	return args.String(0)
}

func (m *MockStorage) Remove(ctx context.Context, bucket string, paths []string) error {
	args := m.Called(ctx, bucket, paths)
	return args.Error(0)
}
