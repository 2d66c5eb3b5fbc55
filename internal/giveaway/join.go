package giveaway

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/event"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
)

// Join adds the user to the active giveaway rendered into messageID.
// The caller is expected to acknowledge the user and then call RefreshAsync.
func (s *service) Join(ctx context.Context, messageID, userID string) (*domain.Giveaway, error) {
	g, err := s.repo.GetActiveGiveawayByMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGiveaway, err)
	}
	if g == nil {
		return nil, domain.ErrGiveawayClosed
	}

	// Serialize with End so no participant lands after winners are drawn
	unlock := s.locks.Lock(g.ID)
	defer unlock()

	current, err := s.repo.GetGiveaway(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGiveaway, err)
	}
	if current == nil || current.Ended {
		return nil, domain.ErrGiveawayClosed
	}

	now := s.now()
	participant := &domain.Participant{
		UserID:     userID,
		GiveawayID: current.ID,
		JoinTime:   now.UnixMilli(),
	}
	if err := s.repo.AddParticipant(ctx, participant); err != nil {
		if errors.Is(err, domain.ErrAlreadyJoined) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToAddParticipant, err)
	}

	s.publish(ctx, event.NewGiveawayJoinedEvent(current.ID, userID, now))

	logger.FromContext(ctx).Info(LogMsgParticipantJoined, "giveaway_id", current.ID, "user_id", userID)
	return current, nil
}
