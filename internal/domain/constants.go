package domain

// Giveaway limits
const (
	// ParticipantsPageSize is the number of participants shown per page
	ParticipantsPageSize = 25

	MaxPrizeLength       = 256
	MaxDescriptionLength = 2000

	// DefaultDescription is used when a giveaway is started without one
	DefaultDescription = "No description provided"
)
