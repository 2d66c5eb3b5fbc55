package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
	"github.com/osse101/GiveawayBot_Go/internal/logger"
	"github.com/osse101/GiveawayBot_Go/internal/metrics"
)

// InteractionHandler handles a slash command or component interaction.
// Returned errors are logged and counted; user-facing replies are the handler's job.
type InteractionHandler func(ctx context.Context, s Session, i *discordgo.InteractionCreate) error

type prefixHandler struct {
	prefix  string
	handler InteractionHandler
}

// CommandRegistry holds the registered commands and component routes
type CommandRegistry struct {
	Commands   map[string]*discordgo.ApplicationCommand
	Handlers   map[string]InteractionHandler
	components map[string]InteractionHandler
	prefixes   []prefixHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands:   make(map[string]*discordgo.ApplicationCommand),
		Handlers:   make(map[string]InteractionHandler),
		components: make(map[string]InteractionHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler InteractionHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterComponent routes a component interaction whose custom id equals customID
func (r *CommandRegistry) RegisterComponent(customID string, handler InteractionHandler) {
	r.components[customID] = handler
}

// RegisterComponentPrefix routes component interactions whose custom id starts with prefix.
// Exact matches win over prefixes; prefixes are tried in registration order.
func (r *CommandRegistry) RegisterComponentPrefix(prefix string, handler InteractionHandler) {
	r.prefixes = append(r.prefixes, prefixHandler{prefix: prefix, handler: handler})
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(ctx context.Context, s Session, i *discordgo.InteractionCreate) {
	kind, name, handler := r.resolve(i)
	log := logger.FromContext(ctx)
	if handler == nil {
		log.Debug(LogMsgUnknownInteraction, "type", i.Type.String(), "name", name)
		return
	}

	err := handler(ctx, s, i)
	metrics.RecordInteraction(kind, name, err != nil)
	if err != nil {
		log.Error(LogMsgInteractionFailed, "kind", kind, "name", name, "error", err)
	}
}

func (r *CommandRegistry) resolve(i *discordgo.InteractionCreate) (kind, name string, handler InteractionHandler) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name = i.ApplicationCommandData().Name
		return InteractionKindCommand, name, r.Handlers[name]
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		if h, ok := r.components[customID]; ok {
			return InteractionKindComponent, customID, h
		}
		for _, p := range r.prefixes {
			if strings.HasPrefix(customID, p.prefix) {
				return InteractionKindComponent, strings.TrimSuffix(p.prefix, customIDSeparator), p.handler
			}
		}
		return InteractionKindComponent, customID, nil
	default:
		return "", i.Type.String(), nil
	}
}

// syncCommands registers the desired commands, skipping the write when Discord already has them.
// An empty guildID registers globally.
func syncCommands(ctx context.Context, s Session, appID, guildID string, desired []*discordgo.ApplicationCommand, forceUpdate bool) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCheckingCommands, "guild_id", guildID)

	if forceUpdate {
		log.Info(LogMsgCommandsForceUpdate, "count", len(desired))
		if _, err := s.ApplicationCommandBulkOverwrite(appID, guildID, desired); err != nil {
			return fmt.Errorf("failed to bulk overwrite commands: %w", err)
		}
		log.Info(LogMsgCommandsUpdated, "count", len(desired))
		return nil
	}

	existing, err := s.ApplicationCommands(appID, guildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	if commandsEqual(existing, desired) {
		log.Info(LogMsgCommandsUnchanged, "count", len(existing))
		return nil
	}

	log.Info(LogMsgCommandsChanged, "existing", len(existing), "desired", len(desired))
	if _, err := s.ApplicationCommandBulkOverwrite(appID, guildID, desired); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	log.Info(LogMsgCommandsUpdated, "count", len(desired))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := existingMap[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}
	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
		return false
	}

	return optionsEqual(a.Options, b.Options)
}

func optionsEqual(a, b []*discordgo.ApplicationCommandOption) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !optionEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// optionEqual checks if two command options are equivalent, descending into subcommands
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}

	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || fmt.Sprint(a.Choices[i].Value) != fmt.Sprint(b.Choices[i].Value) {
			return false
		}
	}

	return optionsEqual(a.Options, b.Options)
}

// isAdmin reports whether the invoking member holds the Administrator permission.
// DM interactions carry no member and are never admin.
func isAdmin(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

// respondEphemeral replies with text only the invoking user can see
func respondEphemeral(s Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// respondEphemeralEmbed replies with an embed and components only the invoking user can see
func respondEphemeralEmbed(s Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

// updateMessage edits the message the component is attached to in place
func updateMessage(s Session, i *discordgo.InteractionCreate, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     embeds,
			Components: components,
		},
	})
}

// deferEphemeral acknowledges an interaction with a deferred ephemeral reply.
// Required before any operation that might take longer than 3 seconds.
func deferEphemeral(s Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

// editEmbed replaces a deferred reply with embed
func editEmbed(ctx context.Context, s Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgEditResponseFailed, "error", err)
	}
}

// createEmbed creates a result embed with the default footer
func createEmbed(description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterDefault,
		},
	}
}

var inputErrors = []error{domain.ErrInvalidInput, domain.ErrInvalidDuration}

var friendlyErrors = []error{
	domain.ErrGiveawayNotFound,
	domain.ErrGiveawayNotActive,
	domain.ErrGiveawayNotEnded,
	domain.ErrGiveawayClosed,
	domain.ErrAlreadyJoined,
	domain.ErrNoParticipants,
	domain.ErrChannelUnavailable,
	domain.ErrMessageUnavailable,
}

// formatFriendlyError turns a lifecycle error into text safe to show the invoking user.
// Validation errors keep their detail; unrecognised errors never leak internals.
func formatFriendlyError(err error) string {
	if err == nil {
		return ""
	}

	for _, sentinel := range inputErrors {
		if errors.Is(err, sentinel) {
			msg := err.Error()
			if idx := strings.Index(msg, sentinel.Error()); idx >= 0 {
				return msg[idx:]
			}
			return sentinel.Error()
		}
	}

	for _, sentinel := range friendlyErrors {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return MsgGenericError
}

// isUserError reports whether err is an expected rejection rather than a failure of the bot
func isUserError(err error) bool {
	for _, sentinel := range append(inputErrors, friendlyErrors...) {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
