package storage

import (
	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *MockStorage) EntriesIfDirExists(path string) ([]string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStorage) ContentsOf(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) RemoveFile(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockStorage) RemoveFileIfExists(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
