package discord

import "time"

// Embed colors
const (
	ColorActive       = 0x00ff00
	ColorEnded        = 0xff0000
	ColorReroll       = 0xff9900
	ColorParticipants = 0x0099ff
	ColorSuccess      = 0x00ff00
	ColorFailure      = 0xff0000
)

// Embed titles
const (
	TitleNewGiveaway     = "🎁 NEW GIVEAWAY 🎁"
	TitleGiveaway        = "🎉 GIVEAWAY 🎉"
	TitleGiveawayEnded   = "🎉 GIVEAWAY ENDED 🎉"
	TitleGiveawayWinners = "🎉 GIVEAWAY WINNERS 🎉"
	TitleGiveawayReroll  = "🎉 GIVEAWAY REROLLED 🎉"
	TitleParticipantsFmt = "Participants (%s)"
)

// Component custom ids. Pagination ids append "<giveawayID>_<page>" to the prefix.
const (
	CustomIDJoin             = "join_giveaway"
	CustomIDViewParticipants = "view_participants"
	CustomIDParticipantsPrev = "participants_prev_"
	CustomIDParticipantsNext = "participants_next_"
	CustomIDParticipantsExit = "participants_close"

	customIDSeparator     = "_"
	participantsIDPrefix  = "participants"
	participantsActionPrv = "prev"
	participantsActionNxt = "next"
)

// Button labels
const (
	LabelJoinFmt          = "Join Giveaway (%s)"
	LabelViewParticipants = "View Participants"
	LabelPrev             = "◀️"
	LabelNext             = "▶️"
	LabelClose            = "Close"
)

// Command names
const (
	CommandGiveaway   = "giveaway"
	SubcommandStart   = "start"
	SubcommandReroll  = "reroll"
	SubcommandEnd     = "end"
	OptionDuration    = "duration"
	OptionWinners     = "winners"
	OptionPrize       = "prize"
	OptionDescription = "description"
	OptionMessageID   = "message_id"
)

// Interaction kinds used as metric labels
const (
	InteractionKindCommand   = "command"
	InteractionKindComponent = "component"
)

const (
	// FooterDefault is used when the guild name cannot be resolved
	FooterDefault = "Giveaway Bot"

	guildCacheSize = 256
	guildCacheTTL  = 30 * time.Minute
)

// Log messages
const (
	LogMsgBotReady               = "Discord bot is ready"
	LogMsgBotRunning             = "Discord bot is now running"
	LogMsgGatewayDisconnected    = "Discord gateway disconnected"
	LogMsgGatewayResumed         = "Discord gateway resumed"
	LogMsgInteractionFailed      = "Interaction handler failed"
	LogMsgUnknownInteraction     = "No handler for interaction"
	LogMsgRespondFailed          = "Failed to respond to interaction"
	LogMsgEditResponseFailed     = "Failed to edit interaction response"
	LogMsgGuildLookupFailed      = "Failed to resolve guild for footer"
	LogMsgCheckingCommands       = "Checking Discord commands"
	LogMsgCommandsUnchanged      = "Commands unchanged, skipping registration"
	LogMsgCommandsForceUpdate    = "Force update enabled, replacing all commands"
	LogMsgCommandsChanged        = "Commands changed, updating"
	LogMsgCommandsUpdated        = "Commands updated successfully"
	LogMsgGiveawayCommandFailed  = "Giveaway command failed"
	LogMsgPermissionDenied       = "Interaction rejected, missing administrator permission"
	LogMsgJoinFailed             = "Join giveaway failed"
	LogMsgParticipantsViewFailed = "Participants view failed"
)
