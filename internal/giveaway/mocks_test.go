package giveaway

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/repository"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateGiveaway(ctx context.Context, giveaway *domain.Giveaway) error {
	args := m.Called(ctx, giveaway)
	return args.Error(0)
}

func (m *MockRepository) AttachMessage(ctx context.Context, id, messageID string) error {
	args := m.Called(ctx, id, messageID)
	return args.Error(0)
}

func (m *MockRepository) GetGiveaway(ctx context.Context, id string) (*domain.Giveaway, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Giveaway), args.Error(1)
}

func (m *MockRepository) GetGiveawayByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Giveaway), args.Error(1)
}

func (m *MockRepository) GetActiveGiveawayByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Giveaway), args.Error(1)
}

func (m *MockRepository) GetEndedGiveawayByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Giveaway), args.Error(1)
}

func (m *MockRepository) ListActiveGiveaways(ctx context.Context) ([]domain.Giveaway, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Giveaway), args.Error(1)
}

func (m *MockRepository) ListDueGiveaways(ctx context.Context, before time.Time) ([]domain.Giveaway, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Giveaway), args.Error(1)
}

func (m *MockRepository) AddParticipant(ctx context.Context, participant *domain.Participant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *MockRepository) ListParticipants(ctx context.Context, giveawayID string) ([]domain.Participant, error) {
	args := m.Called(ctx, giveawayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participant), args.Error(1)
}

func (m *MockRepository) CountParticipants(ctx context.Context, giveawayID string) (int, error) {
	args := m.Called(ctx, giveawayID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ListParticipantPage(ctx context.Context, giveawayID string, limit, offset int) ([]domain.Participant, error) {
	args := m.Called(ctx, giveawayID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participant), args.Error(1)
}

func (m *MockRepository) BeginGiveawayTx(ctx context.Context) (repository.GiveawayTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.GiveawayTx), args.Error(1)
}

// MockGiveawayTx
type MockGiveawayTx struct {
	mock.Mock
}

func (m *MockGiveawayTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGiveawayTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGiveawayTx) MarkEndedIfActive(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockGiveawayTx) ReplaceWinners(ctx context.Context, id string, winners []string) error {
	args := m.Called(ctx, id, winners)
	return args.Error(0)
}

// MockPresenter
type MockPresenter struct {
	mock.Mock
}

func (m *MockPresenter) Announce(ctx context.Context, g *domain.Giveaway) (string, error) {
	args := m.Called(ctx, g)
	return args.String(0), args.Error(1)
}

func (m *MockPresenter) Render(ctx context.Context, g *domain.Giveaway, participantCount int) error {
	args := m.Called(ctx, g, participantCount)
	return args.Error(0)
}

func (m *MockPresenter) AnnounceWinners(ctx context.Context, g *domain.Giveaway) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockPresenter) AnnounceReroll(ctx context.Context, g *domain.Giveaway) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
