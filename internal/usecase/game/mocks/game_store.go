// Package mocks holds testify mocks of the use case storage interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"goban/internal/domain/game"
)

// GameStore is a mock of usecase/game.GameStore.
type GameStore struct {
	mock.Mock
}

func (m *GameStore) GenerateRecordID() string {
	args := m.Called()
	return args.String(0)
}

func (m *GameStore) PutRecord(ctx context.Context, rec game.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *GameStore) GetRecord(ctx context.Context, recordID string) (game.Record, error) {
	args := m.Called(ctx, recordID)
	return args.Get(0).(game.Record), args.Error(1)
}

func (m *GameStore) LoadSGF(ctx context.Context, recordID string) (string, error) {
	args := m.Called(ctx, recordID)
	return args.String(0), args.Error(1)
}
