package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GiveawayBot_Go/internal/database/generated"
	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/repository"
)

// GiveawayRepository implements the giveaway repository for PostgreSQL
type GiveawayRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewGiveawayRepository creates a new GiveawayRepository
func NewGiveawayRepository(db *pgxpool.Pool) *GiveawayRepository {
	return &GiveawayRepository{
		db: db,
		q:  generated.New(db),
	}
}

var _ repository.Giveaway = (*GiveawayRepository)(nil)

// CreateGiveaway inserts a new giveaway record. The message id is attached separately once the announcement exists.
func (r *GiveawayRepository) CreateGiveaway(ctx context.Context, giveaway *domain.Giveaway) error {
	createdAt := giveaway.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	params := generated.CreateGiveawayParams{
		ID:           giveaway.ID,
		ChannelID:    giveaway.ChannelID,
		GuildID:      giveaway.GuildID,
		CreatorID:    giveaway.CreatorID,
		EndTime:      giveaway.EndTime,
		WinnersCount: clampInt32(giveaway.WinnersCount),
		Prize:        giveaway.Prize,
		Description:  giveaway.Description,
		CreatedAt:    pgtype.Timestamptz{Time: createdAt, Valid: true},
	}

	if err := r.q.CreateGiveaway(ctx, params); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", ErrMsgFailedToCreateGiveaway, domain.ErrInvalidInput)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateGiveaway, err)
	}
	return nil
}

// AttachMessage records the rendered message reference for a giveaway
func (r *GiveawayRepository) AttachMessage(ctx context.Context, id, messageID string) error {
	rows, err := r.q.AttachGiveawayMessage(ctx, generated.AttachGiveawayMessageParams{
		ID:        id,
		MessageID: strToText(messageID),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return errors.New(ErrMsgMessageAlreadyAttached)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToAttachMessage, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", ErrMsgGiveawayMessageNotStored, domain.ErrGiveawayNotFound)
	}
	return nil
}

// GetGiveaway retrieves a giveaway by ID, including its winners
func (r *GiveawayRepository) GetGiveaway(ctx context.Context, id string) (*domain.Giveaway, error) {
	row, err := r.q.GetGiveaway(ctx, id)
	return r.withWinners(ctx, row, err)
}

// GetGiveawayByMessage retrieves a giveaway by its rendered message, regardless of state
func (r *GiveawayRepository) GetGiveawayByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error) {
	row, err := r.q.GetGiveawayByMessage(ctx, strToText(messageID))
	return r.withWinners(ctx, row, err)
}

// GetActiveGiveawayByMessage retrieves a non-ended giveaway by its rendered message
func (r *GiveawayRepository) GetActiveGiveawayByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error) {
	row, err := r.q.GetActiveGiveawayByMessage(ctx, strToText(messageID))
	return r.withWinners(ctx, row, err)
}

// GetEndedGiveawayByMessage retrieves an ended giveaway by its rendered message
func (r *GiveawayRepository) GetEndedGiveawayByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error) {
	row, err := r.q.GetEndedGiveawayByMessage(ctx, strToText(messageID))
	return r.withWinners(ctx, row, err)
}

func (r *GiveawayRepository) withWinners(ctx context.Context, row generated.Giveaway, err error) (*domain.Giveaway, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetGiveaway, err)
	}

	// Active giveaways never have winners rows
	if !row.Ended {
		return mapGiveaway(row, nil), nil
	}

	winners, err := r.q.GetGiveawayWinners(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetWinners, err)
	}
	return mapGiveaway(row, winners), nil
}

// ListActiveGiveaways returns every non-ended giveaway ordered by end time
func (r *GiveawayRepository) ListActiveGiveaways(ctx context.Context) ([]domain.Giveaway, error) {
	rows, err := r.q.ListActiveGiveaways(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListGiveaways, err)
	}
	return mapGiveaways(rows), nil
}

// ListDueGiveaways returns non-ended giveaways whose end time is at or before the given instant
func (r *GiveawayRepository) ListDueGiveaways(ctx context.Context, before time.Time) ([]domain.Giveaway, error) {
	rows, err := r.q.ListDueGiveaways(ctx, before.Unix())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListGiveaways, err)
	}
	return mapGiveaways(rows), nil
}

func mapGiveaways(rows []generated.Giveaway) []domain.Giveaway {
	giveaways := make([]domain.Giveaway, 0, len(rows))
	for _, row := range rows {
		giveaways = append(giveaways, *mapGiveaway(row, nil))
	}
	return giveaways
}

// AddParticipant inserts a participant row; a second join by the same user is rejected by the unique constraint
func (r *GiveawayRepository) AddParticipant(ctx context.Context, participant *domain.Participant) error {
	rows, err := r.q.AddParticipant(ctx, generated.AddParticipantParams{
		UserID:     participant.UserID,
		GiveawayID: participant.GiveawayID,
		JoinTime:   participant.JoinTime,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddParticipant, err)
	}
	if rows == 0 {
		return domain.ErrAlreadyJoined
	}
	return nil
}

// ListParticipants returns every participant ordered by join time
func (r *GiveawayRepository) ListParticipants(ctx context.Context, giveawayID string) ([]domain.Participant, error) {
	rows, err := r.q.ListParticipants(ctx, giveawayID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParticipants, err)
	}
	return mapParticipants(rows), nil
}

// CountParticipants returns the number of participants in a giveaway
func (r *GiveawayRepository) CountParticipants(ctx context.Context, giveawayID string) (int, error) {
	count, err := r.q.CountParticipants(ctx, giveawayID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountParticipants, err)
	}
	return int(count), nil
}

// ListParticipantPage returns one window of the join-ordered participant list
func (r *GiveawayRepository) ListParticipantPage(ctx context.Context, giveawayID string, limit, offset int) ([]domain.Participant, error) {
	rows, err := r.q.ListParticipantPage(ctx, generated.ListParticipantPageParams{
		GiveawayID: giveawayID,
		Limit:      clampInt32(limit),
		Offset:     clampInt32(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParticipantPage, err)
	}
	return mapParticipants(rows), nil
}

// BeginGiveawayTx starts a transaction and returns a GiveawayTx for end/reroll writes
func (r *GiveawayRepository) BeginGiveawayTx(ctx context.Context) (repository.GiveawayTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginGiveawayTransaction, err)
	}
	return &giveawayTx{
		tx: tx,
		q:  r.q.WithTx(tx),
	}, nil
}

// giveawayTx implements repository.GiveawayTx interface
type giveawayTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

// Commit commits the transaction
func (t *giveawayTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *giveawayTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// MarkEndedIfActive performs a compare-and-swap on the ended flag
// Returns the number of rows affected (0 if the giveaway was already ended or missing)
func (t *giveawayTx) MarkEndedIfActive(ctx context.Context, id string) (int64, error) {
	result, err := t.q.MarkGiveawayEndedIfActive(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMarkEnded, err)
	}
	return result.RowsAffected(), nil
}

// ReplaceWinners overwrites the ordered winners list
func (t *giveawayTx) ReplaceWinners(ctx context.Context, id string, winners []string) error {
	if err := t.q.DeleteGiveawayWinners(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearWinners, err)
	}

	for position, userID := range winners {
		err := t.q.InsertGiveawayWinner(ctx, generated.InsertGiveawayWinnerParams{
			GiveawayID: id,
			Position:   clampInt32(position),
			UserID:     userID,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertWinner, err)
		}
	}
	return nil
}
