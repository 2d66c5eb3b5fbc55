package discord

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/giveaway"
)

// MockService is a mock implementation of giveaway.Service
type MockService struct {
	mock.Mock
}

var _ giveaway.Service = (*MockService)(nil)

func (m *MockService) giveawayResult(args mock.Arguments) (*domain.Giveaway, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Giveaway), args.Error(1)
}

func (m *MockService) Start(ctx context.Context, req giveaway.StartRequest) (*domain.Giveaway, error) {
	return m.giveawayResult(m.Called(ctx, req))
}

func (m *MockService) End(ctx context.Context, id, trigger string) (*domain.Giveaway, error) {
	return m.giveawayResult(m.Called(ctx, id, trigger))
}

func (m *MockService) EndByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error) {
	return m.giveawayResult(m.Called(ctx, messageID))
}

func (m *MockService) Reroll(ctx context.Context, id string, winners int) (*domain.Giveaway, error) {
	return m.giveawayResult(m.Called(ctx, id, winners))
}

func (m *MockService) RerollByMessage(ctx context.Context, messageID string, winners int) (*domain.Giveaway, error) {
	return m.giveawayResult(m.Called(ctx, messageID, winners))
}

func (m *MockService) Join(ctx context.Context, messageID, userID string) (*domain.Giveaway, error) {
	return m.giveawayResult(m.Called(ctx, messageID, userID))
}

func (m *MockService) Refresh(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) RefreshAsync(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func (m *MockService) GetByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error) {
	return m.giveawayResult(m.Called(ctx, messageID))
}

func (m *MockService) ListActive(ctx context.Context) ([]domain.Giveaway, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Giveaway), args.Error(1)
}

func (m *MockService) ListDue(ctx context.Context) ([]domain.Giveaway, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Giveaway), args.Error(1)
}

func (m *MockService) ListParticipants(ctx context.Context, id string, page int) (*domain.ParticipantPage, error) {
	args := m.Called(ctx, id, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParticipantPage), args.Error(1)
}

func (m *MockService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
