package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateRoom() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockStore) JoinRoom(code string, connID string) ([]string, error) {
	args := m.Called(code, connID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) LeaveRoom(connID string) (string, bool) {
	args := m.Called(connID)
	return args.String(0), args.Bool(1)
}

func (m *MockStore) Members(code string) []string {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockStore) Rooms() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockStore) DeleteRoom(code string) {
	m.Called(code)
}

func (m *MockStore) RecordSnapshot(code string, image string) {
	m.Called(code, image)
}

func (m *MockStore) Undo(code string) (string, bool) {
	args := m.Called(code)
	return args.String(0), args.Bool(1)
}

func (m *MockStore) Redo(code string) (string, bool) {
	args := m.Called(code)
	return args.String(0), args.Bool(1)
}

func (m *MockStore) Clear(code string) {
	m.Called(code)
}

func (m *MockStore) CurrentSnapshot(code string) (string, bool) {
	args := m.Called(code)
	return args.String(0), args.Bool(1)
}

func (m *MockStore) SetCanonical(code string, image string) {
	m.Called(code, image)
}
