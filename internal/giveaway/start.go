package giveaway

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/duration"
	"github.com/osse101/GiveawayBot_Go/internal/event"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
)

// StartRequest carries the start subcommand input
type StartRequest struct {
	ChannelID   string `validate:"required"`
	GuildID     string
	CreatorID   string `validate:"required"`
	Duration    string `validate:"required"`
	Winners     int    `validate:"min=1"`
	Prize       string `validate:"required,max=256"`
	Description string `validate:"max=2000"`
}

// Start creates a giveaway, announces it, and publishes giveaway.started so its completion is scheduled
func (s *service) Start(ctx context.Context, req StartRequest) (*domain.Giveaway, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgStartGiveawayCalled, "channel_id", req.ChannelID, "creator_id", req.CreatorID, "duration", req.Duration, "winners", req.Winners)

	req.Prize = strings.TrimSpace(req.Prize)
	req.Description = strings.TrimSpace(req.Description)
	if err := s.validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	// Malformed or non-positive durations fail before any row is written
	offset, err := duration.Parse(req.Duration)
	if err != nil {
		return nil, err
	}

	now := s.now()
	endsAt := now.Add(offset)
	description := req.Description
	if description == "" {
		description = domain.DefaultDescription
	}

	g := &domain.Giveaway{
		ID:           strconv.FormatInt(now.UnixMilli(), 10),
		ChannelID:    req.ChannelID,
		GuildID:      req.GuildID,
		CreatorID:    req.CreatorID,
		EndTime:      endsAt.Unix(),
		WinnersCount: req.Winners,
		Prize:        req.Prize,
		Description:  description,
		Winners:      []string{},
		CreatedAt:    now,
	}

	if err := s.repo.CreateGiveaway(ctx, g); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateGiveaway, err)
	}

	messageID, err := s.presenter.Announce(ctx, g)
	if err != nil {
		log.Warn(LogMsgAnnouncementOrphaned, "giveaway_id", g.ID, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToAnnounce, err)
	}

	if err := s.repo.AttachMessage(ctx, g.ID, messageID); err != nil {
		log.Warn(LogMsgMessageOrphaned, "giveaway_id", g.ID, "channel_id", g.ChannelID, "message_id", messageID, "error", err)
		s.withdraw(ctx, g, messageID)
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToAttachMessage, err)
	}
	g.MessageID = messageID

	s.publish(ctx, event.NewGiveawayStartedEvent(g, endsAt))

	log.Info(LogMsgGiveawayStarted, "giveaway_id", g.ID, "message_id", g.MessageID, "end_time", g.EndTime, "duration", duration.Humanize(offset))
	return g, nil
}

// withdraw redraws an announcement that could not be linked to its row in the ended form,
// so its buttons stop accepting clicks
func (s *service) withdraw(ctx context.Context, g *domain.Giveaway, messageID string) {
	orphan := *g
	orphan.MessageID = messageID
	orphan.Ended = true
	s.render(ctx, &orphan, 0)
}

// formatValidationError turns validator output into a single user-facing ErrInvalidInput
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, e.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, ", "))
}
