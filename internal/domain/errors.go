package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Giveaway lookup errors
	ErrMsgGiveawayNotFound  = "giveaway not found"
	ErrMsgGiveawayNotActive = "giveaway not found or already ended"
	ErrMsgGiveawayNotEnded  = "giveaway not found or not ended"
	ErrMsgGiveawayClosed    = "this giveaway has ended or does not exist"

	// Participant errors
	ErrMsgAlreadyJoined  = "you have already joined this giveaway"
	ErrMsgNoParticipants = "no participants to reroll"

	// Input errors
	ErrMsgInvalidDuration = "invalid duration"
	ErrMsgInvalidInput    = "invalid input"

	// Platform errors
	ErrMsgChannelUnavailable = "channel not found"
	ErrMsgMessageUnavailable = "message not found"

	// Database errors
	ErrMsgTxClosed = "tx is closed"
)

var (
	ErrGiveawayNotFound  = errors.New(ErrMsgGiveawayNotFound)
	ErrGiveawayNotActive = errors.New(ErrMsgGiveawayNotActive)
	ErrGiveawayNotEnded  = errors.New(ErrMsgGiveawayNotEnded)
	ErrGiveawayClosed    = errors.New(ErrMsgGiveawayClosed)

	ErrAlreadyJoined  = errors.New(ErrMsgAlreadyJoined)
	ErrNoParticipants = errors.New(ErrMsgNoParticipants)

	ErrInvalidDuration = errors.New(ErrMsgInvalidDuration)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)

	ErrChannelUnavailable = errors.New(ErrMsgChannelUnavailable)
	ErrMessageUnavailable = errors.New(ErrMsgMessageUnavailable)
)
