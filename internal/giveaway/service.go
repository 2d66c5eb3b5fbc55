package giveaway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GiveawayBot_Go/internal/concurrency"
	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/event"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
	"github.com/osse101/GiveawayBot_Go/internal/repository"
)

// Service defines the interface for giveaway lifecycle operations
type Service interface {
	Start(ctx context.Context, req StartRequest) (*domain.Giveaway, error)
	End(ctx context.Context, id, trigger string) (*domain.Giveaway, error)
	EndByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error)
	Reroll(ctx context.Context, id string, winners int) (*domain.Giveaway, error)
	RerollByMessage(ctx context.Context, messageID string, winners int) (*domain.Giveaway, error)
	Join(ctx context.Context, messageID, userID string) (*domain.Giveaway, error)

	Refresh(ctx context.Context, id string) error
	RefreshAsync(ctx context.Context, id string)

	GetByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error)
	ListActive(ctx context.Context) ([]domain.Giveaway, error)
	ListDue(ctx context.Context) ([]domain.Giveaway, error)
	ListParticipants(ctx context.Context, id string, page int) (*domain.ParticipantPage, error)

	Shutdown(ctx context.Context) error
}

// Presenter renders giveaway state onto the chat platform
type Presenter interface {
	// Announce posts the initial giveaway message and returns its message id
	Announce(ctx context.Context, g *domain.Giveaway) (string, error)
	// Render edits the giveaway message to match persisted state
	Render(ctx context.Context, g *domain.Giveaway, participantCount int) error
	AnnounceWinners(ctx context.Context, g *domain.Giveaway) error
	AnnounceReroll(ctx context.Context, g *domain.Giveaway) error
}

// Option configures optional service dependencies
type Option func(*service)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithRandom overrides the random source used for winner selection
func WithRandom(intn RandomIntn) Option {
	return func(s *service) { s.intn = intn }
}

type service struct {
	repo      repository.Giveaway
	presenter Presenter
	eventBus  event.Bus
	locks     *concurrency.LockManager
	validate  *validator.Validate
	now       func() time.Time
	intn      RandomIntn
	wg        sync.WaitGroup // Tracks background renders for graceful shutdown
}

// NewService creates a new giveaway service
func NewService(repo repository.Giveaway, presenter Presenter, eventBus event.Bus, locks *concurrency.LockManager, opts ...Option) Service {
	s := &service{
		repo:      repo,
		presenter: presenter,
		eventBus:  eventBus,
		locks:     locks,
		validate:  validator.New(),
		now:       time.Now,
		intn:      CryptoIntn,
	}
	if s.locks == nil {
		s.locks = concurrency.NewLockManager()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh re-renders the giveaway message from persisted state. A missing giveaway is a no-op.
// It holds the giveaway lock through the edit so a stale active render cannot land after End.
func (s *service) Refresh(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	g, err := s.repo.GetGiveaway(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetGiveaway, err)
	}
	if g == nil {
		return nil
	}

	count, err := s.repo.CountParticipants(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCountParticipant, err)
	}

	s.render(ctx, g, count)
	return nil
}

// RefreshAsync runs Refresh in the background, detached from the caller's cancellation
func (s *service) RefreshAsync(ctx context.Context, id string) {
	bg := context.Background()
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		bg = logger.WithRequestID(bg, requestID)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.Refresh(bg, id); err != nil {
			logger.FromContext(bg).Warn(LogMsgRefreshFailed, "giveaway_id", id, "error", err)
		}
	}()
}

// GetByMessage returns the giveaway rendered into the given message
func (s *service) GetByMessage(ctx context.Context, messageID string) (*domain.Giveaway, error) {
	g, err := s.repo.GetGiveawayByMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGiveaway, err)
	}
	if g == nil {
		return nil, domain.ErrGiveawayNotFound
	}
	return g, nil
}

// ListActive returns every giveaway that has not ended
func (s *service) ListActive(ctx context.Context) ([]domain.Giveaway, error) {
	giveaways, err := s.repo.ListActiveGiveaways(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListGiveaways, err)
	}
	return giveaways, nil
}

// ListDue returns active giveaways whose end time has passed
func (s *service) ListDue(ctx context.Context) ([]domain.Giveaway, error) {
	giveaways, err := s.repo.ListDueGiveaways(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListGiveaways, err)
	}
	return giveaways, nil
}

// Shutdown gracefully shuts down the giveaway service by waiting for background renders
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownForced)
		return ctx.Err()
	}
}

// render asks the presenter to redraw the giveaway; failures are logged, never returned
func (s *service) render(ctx context.Context, g *domain.Giveaway, participantCount int) {
	err := s.presenter.Render(ctx, g, participantCount)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrChannelUnavailable):
		logger.FromContext(ctx).Warn(LogMsgRenderChannelGone, "giveaway_id", g.ID, "channel_id", g.ChannelID)
	default:
		logger.FromContext(ctx).Error(LogMsgRenderFailed, "giveaway_id", g.ID, "error", err)
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
