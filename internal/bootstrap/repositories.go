package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GiveawayBot_Go/internal/database/postgres"
	"github.com/osse101/GiveawayBot_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Giveaway repository.Giveaway
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Giveaway: postgres.NewGiveawayRepository(dbPool),
	}
}
