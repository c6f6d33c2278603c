package board_test

import (
	"github.com/stretchr/testify/mock"
)

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) LoadBlob(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) SaveBlob(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}
