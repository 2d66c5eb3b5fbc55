package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginGiveawayTransaction = "failed to begin giveaway transaction"
	ErrMsgFailedToCommitTransaction        = "failed to commit transaction"
)

// Error Messages - Giveaway Operations
const (
	ErrMsgFailedToCreateGiveaway   = "failed to create giveaway"
	ErrMsgFailedToAttachMessage    = "failed to attach giveaway message"
	ErrMsgFailedToGetGiveaway      = "failed to get giveaway"
	ErrMsgFailedToListGiveaways    = "failed to list giveaways"
	ErrMsgFailedToGetWinners       = "failed to get giveaway winners"
	ErrMsgFailedToMarkEnded        = "failed to mark giveaway ended"
	ErrMsgFailedToClearWinners     = "failed to clear giveaway winners"
	ErrMsgFailedToInsertWinner     = "failed to insert giveaway winner"
	ErrMsgMessageAlreadyAttached   = "message already attached to another giveaway"
	ErrMsgGiveawayMessageNotStored = "giveaway row missing while attaching message"
)

// Error Messages - Participant Operations
const (
	ErrMsgFailedToAddParticipant      = "failed to add participant"
	ErrMsgFailedToListParticipants    = "failed to list participants"
	ErrMsgFailedToCountParticipants   = "failed to count participants"
	ErrMsgFailedToListParticipantPage = "failed to list participant page"
)
