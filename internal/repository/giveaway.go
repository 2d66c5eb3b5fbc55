package repository

import (
	"context"
	"time"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
)

// Giveaway defines the interface for data access required by the giveaway service.
// Lookups return (nil, nil) when no row matches.
type Giveaway interface {
	CreateGiveaway(ctx context.Context, giveaway *domain.Giveaway) error
	AttachMessage(ctx context.Context, id, messageID string) error
	GetGiveaway(ctx context.Context, id string) (*domain.Giveaway, error)
	GetGiveawayByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error)
	GetActiveGiveawayByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error)
	GetEndedGiveawayByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error)
	ListActiveGiveaways(ctx context.Context) ([]domain.Giveaway, error)
	ListDueGiveaways(ctx context.Context, before time.Time) ([]domain.Giveaway, error)

	// AddParticipant inserts the participant unless the user already joined,
	// in which case it returns domain.ErrAlreadyJoined.
	AddParticipant(ctx context.Context, participant *domain.Participant) error
	ListParticipants(ctx context.Context, giveawayID string) ([]domain.Participant, error)
	CountParticipants(ctx context.Context, giveawayID string) (int, error)
	ListParticipantPage(ctx context.Context, giveawayID string, limit, offset int) ([]domain.Participant, error)

	// Transaction support
	BeginGiveawayTx(ctx context.Context) (GiveawayTx, error)
}

// GiveawayTx wraps the end and reroll writes in a single atomic transaction
type GiveawayTx interface {
	Tx // Commit, Rollback

	// MarkEndedIfActive flips ended to true only if it is still false and returns the affected row count
	MarkEndedIfActive(ctx context.Context, id string) (int64, error)
	ReplaceWinners(ctx context.Context, id string, winners []string) error
}
