package discord

// Friendly message constants for Discord responses
const (
	MsgAdminRequiredCommand      = "❌ You need **ADMINISTRATOR** permission to use this command!"
	MsgAdminRequiredParticipants = "❌ You need **ADMINISTRATOR** permission to view participants!"

	MsgJoinSuccess       = "✅ You have successfully joined the giveaway!"
	MsgJoinAlreadyJoined = "❌ You have already joined this giveaway!"
	MsgJoinClosed        = "❌ This giveaway has ended or does not exist!"

	MsgStartedFmt  = "✅ Giveaway started successfully! [Giveaway ID: `%s`]"
	MsgRerolledFmt = "✅ Giveaway rerolled successfully! [Giveaway ID: `%s`]"
	MsgEndedFmt    = "✅ Giveaway ended successfully! [Giveaway ID: `%s`]"
	MsgFailedFmt   = "❌ Failed to %s giveaway: %s"

	MsgNoParticipants = "No participants found."
	MsgNoWinners      = "No winners"
	MsgCongratulate   = "🎉 Congratulations to the winners!"
	MsgCongratulateRe = "🎉 Congratulations to the new winners!"

	MsgGiveawayNotFound = "❌ Giveaway not found."
	MsgUnknownAction    = "❌ Unknown action."
	MsgGenericError     = "something went wrong, please try again later"
)
