package giveaway

// Error context prefixes, wrapped around lower-level failures
const (
	ErrContextFailedToGetGiveaway      = "failed to get giveaway"
	ErrContextFailedToCreateGiveaway   = "failed to create giveaway"
	ErrContextFailedToAnnounce         = "failed to announce giveaway"
	ErrContextFailedToAttachMessage    = "failed to attach giveaway message"
	ErrContextFailedToListParticipants = "failed to list participants"
	ErrContextFailedToCountParticipant = "failed to count participants"
	ErrContextFailedToAddParticipant   = "failed to add participant"
	ErrContextFailedToListGiveaways    = "failed to list giveaways"
	ErrContextFailedToSelectWinners    = "failed to select winners"
	ErrContextFailedToBeginTx          = "failed to begin transaction"
	ErrContextFailedToMarkEnded        = "failed to mark giveaway ended"
	ErrContextFailedToSaveWinners      = "failed to save winners"
	ErrContextFailedToCommitTx         = "failed to commit transaction"
)

// Log messages
const (
	LogMsgStartGiveawayCalled   = "StartGiveaway called"
	LogMsgGiveawayStarted       = "Giveaway started"
	LogMsgEndGiveawayCalled     = "EndGiveaway called"
	LogMsgGiveawayEnded         = "Giveaway ended"
	LogMsgRerollGiveawayCalled  = "RerollGiveaway called"
	LogMsgGiveawayRerolled      = "Giveaway rerolled"
	LogMsgParticipantJoined     = "Participant joined giveaway"
	LogMsgAnnouncementOrphaned  = "Giveaway row stored but announcement failed"
	LogMsgMessageOrphaned       = "Giveaway announced but message id not stored, disabling announcement"
	LogMsgRenderChannelGone     = "Giveaway channel no longer available, skipping render"
	LogMsgRenderFailed          = "Failed to render giveaway"
	LogMsgWinnersAnnounceFailed = "Failed to announce giveaway winners"
	LogMsgRerollAnnounceFailed  = "Failed to announce giveaway reroll"
	LogMsgPublishFailed         = "Failed to publish giveaway event"
	LogMsgRefreshFailed         = "Background giveaway refresh failed"
	LogMsgShuttingDown          = "Shutting down giveaway service"
	LogMsgShutdownDone          = "Giveaway service shutdown complete"
	LogMsgShutdownForced        = "Giveaway service shutdown forced by context cancellation"
)
