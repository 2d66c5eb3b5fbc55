package giveaway

import (
	"context"
	"fmt"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/event"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
	"github.com/osse101/GiveawayBot_Go/internal/repository"
)

// End closes an active giveaway, draws winners, re-renders the message and announces the result.
// Exactly one caller wins the ACTIVE to ENDED transition; everyone else gets ErrGiveawayNotActive.
func (s *service) End(ctx context.Context, id, trigger string) (*domain.Giveaway, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEndGiveawayCalled, "giveaway_id", id, "trigger", trigger)

	unlock := s.locks.Lock(id)
	defer unlock()

	g, err := s.repo.GetGiveaway(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGiveaway, err)
	}
	if g == nil {
		return nil, domain.ErrGiveawayNotFound
	}
	if g.Ended {
		return nil, domain.ErrGiveawayNotActive
	}

	participants, err := s.repo.ListParticipants(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListParticipants, err)
	}

	winners, err := SelectWinners(participants, g.WinnersCount, s.intn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSelectWinners, err)
	}

	if err := s.commitEnd(ctx, id, winners); err != nil {
		return nil, err
	}

	g.Ended = true
	g.Winners = winners

	s.render(ctx, g, len(participants))
	if len(winners) > 0 {
		if err := s.presenter.AnnounceWinners(ctx, g); err != nil {
			log.Warn(LogMsgWinnersAnnounceFailed, "giveaway_id", id, "error", err)
		}
	}

	s.publish(ctx, event.NewGiveawayEndedEvent(g, trigger, len(participants), s.now()))

	log.Info(LogMsgGiveawayEnded, "giveaway_id", id, "trigger", trigger, "participants", len(participants), "winners", len(winners))
	return g, nil
}

func (s *service) commitEnd(ctx context.Context, id string, winners []string) error {
	tx, err := s.repo.BeginGiveawayTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	rows, err := tx.MarkEndedIfActive(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToMarkEnded, err)
	}
	if rows == 0 {
		return domain.ErrGiveawayNotActive
	}

	if err := tx.ReplaceWinners(ctx, id, winners); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSaveWinners, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}
	return nil
}

// EndByMessage manually ends the active giveaway rendered into the given message
func (s *service) EndByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error) {
	g, err := s.repo.GetActiveGiveawayByMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGiveaway, err)
	}
	if g == nil {
		return nil, domain.ErrGiveawayNotActive
	}
	return s.End(ctx, g.ID, domain.EndTriggerManual)
}

// Reroll redraws winners for an ended giveaway from its full participant list.
// Previous winners are eligible again.
func (s *service) Reroll(ctx context.Context, id string, winners int) (*domain.Giveaway, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRerollGiveawayCalled, "giveaway_id", id, "winners", winners)

	if winners < 1 {
		return nil, fmt.Errorf("%w: winners must be at least 1", domain.ErrInvalidInput)
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	g, err := s.repo.GetGiveaway(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGiveaway, err)
	}
	if g == nil || !g.Ended {
		return nil, domain.ErrGiveawayNotEnded
	}

	participants, err := s.repo.ListParticipants(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListParticipants, err)
	}
	if len(participants) == 0 {
		return nil, domain.ErrNoParticipants
	}

	drawn, err := SelectWinners(participants, winners, s.intn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSelectWinners, err)
	}

	if err := s.commitWinners(ctx, id, drawn); err != nil {
		return nil, err
	}
	g.Winners = drawn

	s.render(ctx, g, len(participants))
	if err := s.presenter.AnnounceReroll(ctx, g); err != nil {
		log.Warn(LogMsgRerollAnnounceFailed, "giveaway_id", id, "error", err)
	}

	s.publish(ctx, event.NewGiveawayRerolledEvent(g, len(participants), s.now()))

	log.Info(LogMsgGiveawayRerolled, "giveaway_id", id, "winners", len(drawn))
	return g, nil
}

func (s *service) commitWinners(ctx context.Context, id string, winners []string) error {
	tx, err := s.repo.BeginGiveawayTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.ReplaceWinners(ctx, id, winners); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSaveWinners, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}
	return nil
}

// RerollByMessage rerolls the ended giveaway rendered into the given message
func (s *service) RerollByMessage(ctx context.Context, messageID string, winners int) (*domain.Giveaway, error) {
	g, err := s.repo.GetEndedGiveawayByMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGiveaway, err)
	}
	if g == nil {
		return nil, domain.ErrGiveawayNotEnded
	}
	return s.Reroll(ctx, g.ID, winners)
}
