package postgres

import (
	"errors"
	"math"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/GiveawayBot_Go/internal/database/generated"
	"github.com/osse101/GiveawayBot_Go/internal/domain"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// strToText converts a string to pgtype.Text, treating "" as NULL
func strToText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// clampInt32 narrows pagination arguments for the generated query params
func clampInt32(i int) int32 {
	switch {
	case i > math.MaxInt32:
		return math.MaxInt32
	case i < 0:
		return 0
	default:
		return int32(i)
	}
}

func mapGiveaway(row generated.Giveaway, winners []string) *domain.Giveaway {
	if winners == nil {
		winners = []string{}
	}
	return &domain.Giveaway{
		ID:           row.ID,
		ChannelID:    row.ChannelID,
		GuildID:      row.GuildID,
		MessageID:    row.MessageID.String,
		CreatorID:    row.CreatorID,
		EndTime:      row.EndTime,
		WinnersCount: int(row.WinnersCount),
		Prize:        row.Prize,
		Description:  row.Description,
		Ended:        row.Ended,
		Winners:      winners,
		CreatedAt:    row.CreatedAt.Time,
	}
}

func mapParticipants(rows []generated.Participant) []domain.Participant {
	participants := make([]domain.Participant, 0, len(rows))
	for _, row := range rows {
		participants = append(participants, domain.Participant{
			ID:         row.ID,
			UserID:     row.UserID,
			GiveawayID: row.GiveawayID,
			JoinTime:   row.JoinTime,
		})
	}
	return participants
}
