package giveaway

import (
	"context"
	"fmt"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
)

// ListParticipants returns one page of participants in join order.
// Out-of-range pages are clamped into [0, TotalPages-1]; TotalPages is at least 1.
func (s *service) ListParticipants(ctx context.Context, id string, page int) (*domain.ParticipantPage, error) {
	g, err := s.repo.GetGiveaway(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGiveaway, err)
	}
	if g == nil {
		return nil, domain.ErrGiveawayNotFound
	}

	total, err := s.repo.CountParticipants(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCountParticipant, err)
	}

	size := domain.ParticipantsPageSize
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	page = max(0, min(page, totalPages-1))

	result := &domain.ParticipantPage{
		GiveawayID: id,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		PageSize:   size,
		Items:      []domain.Participant{},
	}
	if total == 0 {
		return result, nil
	}

	items, err := s.repo.ListParticipantPage(ctx, id, size, result.Offset())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListParticipants, err)
	}
	result.Items = items
	return result, nil
}
