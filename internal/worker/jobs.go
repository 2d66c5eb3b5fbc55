package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
)

// GiveawayEnder is the part of the giveaway service the worker drives
type GiveawayEnder interface {
	End(ctx context.Context, id, trigger string) (*domain.Giveaway, error)
	ListActive(ctx context.Context) ([]domain.Giveaway, error)
	ListDue(ctx context.Context) ([]domain.Giveaway, error)
}

// EndJob ends one giveaway. A giveaway that is already ended or gone is not a failure.
type EndJob struct {
	Service    GiveawayEnder
	GiveawayID string
	Trigger    string

	done func()
}

// Process implements Job
func (j *EndJob) Process(ctx context.Context) error {
	if j.done != nil {
		defer j.done()
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgEndingScheduledGiveaway, "giveaway_id", j.GiveawayID, "trigger", j.Trigger)

	if _, err := j.Service.End(ctx, j.GiveawayID, j.Trigger); err != nil {
		if isAlreadyHandled(err) {
			log.Info(LogMsgScheduledEndAlreadyHandled, "giveaway_id", j.GiveawayID, "trigger", j.Trigger)
			return nil
		}
		return fmt.Errorf("end giveaway %s: %w", j.GiveawayID, err)
	}
	return nil
}

// SweepJob ends every due giveaway whose timer was lost
type SweepJob struct {
	Service GiveawayEnder
}

// Process implements Job
func (j *SweepJob) Process(ctx context.Context) error {
	due, err := j.Service.ListDue(ctx)
	if err != nil {
		return fmt.Errorf("list due giveaways: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgSweepFoundDue, "count", len(due))

	var errs []error
	for _, g := range due {
		end := &EndJob{Service: j.Service, GiveawayID: g.ID, Trigger: domain.EndTriggerSweep}
		if err := end.Process(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func isAlreadyHandled(err error) bool {
	return errors.Is(err, domain.ErrGiveawayNotActive) || errors.Is(err, domain.ErrGiveawayNotFound)
}
