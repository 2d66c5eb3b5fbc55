package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/giveaway"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
)

var (
	adminPermission int64 = discordgo.PermissionAdministrator
	minWinners            = 1.0
)

// GiveawayCommand returns the /giveaway command with its start, reroll and end subcommands
func GiveawayCommand(svc giveaway.Service) (*discordgo.ApplicationCommand, InteractionHandler) {
	winnersOption := func(description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        OptionWinners,
			Description: description,
			Required:    true,
			MinValue:    &minWinners,
		}
	}
	messageIDOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        OptionMessageID,
		Description: "The message ID of the giveaway",
		Required:    true,
	}

	cmd := &discordgo.ApplicationCommand{
		Name:                     CommandGiveaway,
		Description:              "Manage giveaways",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandStart,
				Description: "Start a new giveaway",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        OptionDuration,
						Description: "Duration of the giveaway (e.g. 1h, 30m, 2d)",
						Required:    true,
					},
					winnersOption("Number of winners"),
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        OptionPrize,
						Description: "The prize for the giveaway",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        OptionDescription,
						Description: "Description of the giveaway",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandReroll,
				Description: "Reroll an ended giveaway",
				Options: []*discordgo.ApplicationCommandOption{
					messageIDOption,
					winnersOption("Number of new winners"),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcommandEnd,
				Description: "End an active giveaway early",
				Options: []*discordgo.ApplicationCommandOption{
					messageIDOption,
				},
			},
		},
	}

	handler := func(ctx context.Context, s Session, i *discordgo.InteractionCreate) error {
		log := logger.FromContext(ctx)

		if !isAdmin(i) {
			log.Info(LogMsgPermissionDenied, "user_id", getInteractionUser(i).ID, "command", CommandGiveaway)
			return respondEphemeral(s, i, MsgAdminRequiredCommand)
		}

		options := i.ApplicationCommandData().Options
		if len(options) == 0 {
			return respondEphemeral(s, i, MsgUnknownAction)
		}
		sub := options[0]

		if err := deferEphemeral(s, i); err != nil {
			return fmt.Errorf("failed to defer response: %w", err)
		}

		g, successFmt, err := runGiveawaySubcommand(ctx, svc, i, sub)
		if err != nil {
			log.Warn(LogMsgGiveawayCommandFailed, "subcommand", sub.Name, "error", err)
			editEmbed(ctx, s, i, createEmbed(fmt.Sprintf(MsgFailedFmt, sub.Name, formatFriendlyError(err)), ColorFailure))
			if isUserError(err) {
				return nil
			}
			return err
		}

		editEmbed(ctx, s, i, createEmbed(fmt.Sprintf(successFmt, g.ID), ColorSuccess))
		return nil
	}

	return cmd, handler
}

func runGiveawaySubcommand(ctx context.Context, svc giveaway.Service, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) (*domain.Giveaway, string, error) {
	opts := optionMap(sub.Options)

	switch sub.Name {
	case SubcommandStart:
		g, err := svc.Start(ctx, giveaway.StartRequest{
			ChannelID:   i.ChannelID,
			GuildID:     i.GuildID,
			CreatorID:   getInteractionUser(i).ID,
			Duration:    stringOption(opts, OptionDuration),
			Winners:     intOption(opts, OptionWinners),
			Prize:       stringOption(opts, OptionPrize),
			Description: stringOption(opts, OptionDescription),
		})
		return g, MsgStartedFmt, err
	case SubcommandReroll:
		g, err := svc.RerollByMessage(ctx, stringOption(opts, OptionMessageID), intOption(opts, OptionWinners))
		return g, MsgRerolledFmt, err
	case SubcommandEnd:
		g, err := svc.EndByMessage(ctx, stringOption(opts, OptionMessageID))
		return g, MsgEndedFmt, err
	default:
		return nil, "", fmt.Errorf("%w: unknown subcommand %q", domain.ErrInvalidInput, sub.Name)
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	if opt, ok := opts[name]; ok {
		return int(opt.IntValue())
	}
	return 0
}
