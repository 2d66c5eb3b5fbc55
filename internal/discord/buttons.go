package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/giveaway"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
)

// RegisterGiveawayComponents wires the giveaway buttons into the registry
func RegisterGiveawayComponents(r *CommandRegistry, svc giveaway.Service) {
	r.RegisterComponent(CustomIDJoin, joinHandler(svc))
	r.RegisterComponent(CustomIDViewParticipants, viewParticipantsHandler(svc))
	r.RegisterComponent(CustomIDParticipantsExit, closeParticipantsHandler)
	r.RegisterComponentPrefix(CustomIDParticipantsPrev, paginateParticipantsHandler(svc))
	r.RegisterComponentPrefix(CustomIDParticipantsNext, paginateParticipantsHandler(svc))
}

func joinHandler(svc giveaway.Service) InteractionHandler {
	return func(ctx context.Context, s Session, i *discordgo.InteractionCreate) error {
		if i.Message == nil {
			return respondEphemeral(s, i, MsgJoinClosed)
		}

		user := getInteractionUser(i)
		g, err := svc.Join(ctx, i.Message.ID, user.ID)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrAlreadyJoined):
			return respondEphemeral(s, i, MsgJoinAlreadyJoined)
		case errors.Is(err, domain.ErrGiveawayClosed):
			return respondEphemeral(s, i, MsgJoinClosed)
		default:
			logger.FromContext(ctx).Error(LogMsgJoinFailed, "message_id", i.Message.ID, "user_id", user.ID, "error", err)
			if respondErr := respondEphemeral(s, i, "❌ "+MsgGenericError); respondErr != nil {
				return errors.Join(err, respondErr)
			}
			return err
		}

		if err := respondEphemeral(s, i, MsgJoinSuccess); err != nil {
			logger.FromContext(ctx).Warn(LogMsgRespondFailed, "error", err)
		}
		svc.RefreshAsync(ctx, g.ID)
		return nil
	}
}

func viewParticipantsHandler(svc giveaway.Service) InteractionHandler {
	return func(ctx context.Context, s Session, i *discordgo.InteractionCreate) error {
		if !isAdmin(i) {
			logger.FromContext(ctx).Info(LogMsgPermissionDenied, "user_id", getInteractionUser(i).ID, "component", CustomIDViewParticipants)
			return respondEphemeral(s, i, MsgAdminRequiredParticipants)
		}
		if i.Message == nil {
			return respondEphemeral(s, i, MsgGiveawayNotFound)
		}

		g, err := svc.GetByMessage(ctx, i.Message.ID)
		if errors.Is(err, domain.ErrGiveawayNotFound) {
			return respondEphemeral(s, i, MsgGiveawayNotFound)
		}
		if err != nil {
			return participantsFailure(ctx, s, i, err)
		}

		page, err := svc.ListParticipants(ctx, g.ID, 0)
		if err != nil {
			return participantsFailure(ctx, s, i, err)
		}

		embed, components := participantsView(page)
		return respondEphemeralEmbed(s, i, embed, components)
	}
}

func paginateParticipantsHandler(svc giveaway.Service) InteractionHandler {
	return func(ctx context.Context, s Session, i *discordgo.InteractionCreate) error {
		if !isAdmin(i) {
			logger.FromContext(ctx).Info(LogMsgPermissionDenied, "user_id", getInteractionUser(i).ID, "component", i.MessageComponentData().CustomID)
			return respondEphemeral(s, i, MsgAdminRequiredParticipants)
		}

		action, giveawayID, current, err := parseParticipantsCustomID(i.MessageComponentData().CustomID)
		if err != nil {
			if respondErr := respondEphemeral(s, i, MsgUnknownAction); respondErr != nil {
				return errors.Join(err, respondErr)
			}
			return err
		}

		target := current + 1
		if action == participantsActionPrv {
			target = current - 1
		}

		page, err := svc.ListParticipants(ctx, giveawayID, target)
		if errors.Is(err, domain.ErrGiveawayNotFound) {
			return respondEphemeral(s, i, MsgGiveawayNotFound)
		}
		if err != nil {
			return participantsFailure(ctx, s, i, err)
		}

		embed, components := participantsView(page)
		return updateMessage(s, i, []*discordgo.MessageEmbed{embed}, components)
	}
}

// closeParticipantsHandler strips the pagination buttons and leaves the list visible
func closeParticipantsHandler(_ context.Context, s Session, i *discordgo.InteractionCreate) error {
	var embeds []*discordgo.MessageEmbed
	if i.Message != nil {
		embeds = i.Message.Embeds
	}
	return updateMessage(s, i, embeds, []discordgo.MessageComponent{})
}

func participantsFailure(ctx context.Context, s Session, i *discordgo.InteractionCreate, err error) error {
	logger.FromContext(ctx).Error(LogMsgParticipantsViewFailed, "error", err)
	if respondErr := respondEphemeral(s, i, "❌ "+MsgGenericError); respondErr != nil {
		return errors.Join(err, respondErr)
	}
	return fmt.Errorf("participants view: %w", err)
}
