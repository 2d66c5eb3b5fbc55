package domain

import "time"

// Giveaway represents a timed prize drawing hosted in a channel
type Giveaway struct {
	ID           string    `json:"id"`
	ChannelID    string    `json:"channel_id"`
	GuildID      string    `json:"guild_id,omitempty"`
	MessageID    string    `json:"message_id,omitempty"`
	CreatorID    string    `json:"creator_id"`
	EndTime      int64     `json:"end_time"` // epoch seconds
	WinnersCount int       `json:"winners_count"`
	Prize        string    `json:"prize"`
	Description  string    `json:"description"`
	Ended        bool      `json:"ended"`
	Winners      []string  `json:"winners"`
	CreatedAt    time.Time `json:"created_at"`
}

// Remaining returns how long until the giveaway is due at the given instant.
// Non-positive values mean the giveaway is overdue.
func (g *Giveaway) Remaining(now time.Time) time.Duration {
	return time.Duration(g.EndTime*1000-now.UnixMilli()) * time.Millisecond
}

// Participant represents a user who has joined a giveaway
type Participant struct {
	ID         int64  `json:"id"`
	UserID     string `json:"user_id"`
	GiveawayID string `json:"giveaway_id"`
	JoinTime   int64  `json:"join_time"` // epoch milliseconds
}

// ParticipantPage is one page of a giveaway's participant list, ordered by join time
type ParticipantPage struct {
	GiveawayID string        `json:"giveaway_id"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	PageSize   int           `json:"page_size"`
	Items      []Participant `json:"items"`
}

// Offset returns the zero-based index of the first item on the page
func (p *ParticipantPage) Offset() int {
	return p.Page * p.PageSize
}

// HasPrev reports whether a previous page exists
func (p *ParticipantPage) HasPrev() bool {
	return p.Page > 0
}

// HasNext reports whether a following page exists
func (p *ParticipantPage) HasNext() bool {
	return p.Page < p.TotalPages-1
}

// Event types
const (
	EventGiveawayStarted  = "giveaway.started"
	EventGiveawayEnded    = "giveaway.ended"
	EventGiveawayRerolled = "giveaway.rerolled"
	EventGiveawayJoined   = "giveaway.joined"
)

// End triggers recorded on giveaway.ended events
const (
	EndTriggerTimer  = "timer"
	EndTriggerManual = "manual"
	EndTriggerSweep  = "sweep"
)
