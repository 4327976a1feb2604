package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/database/postgres"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/distribution"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/leaderboard"
)

// Repositories holds all repository implementations used by the application.
// Centralized here so dependency injection stays in one place.
type Repositories struct {
	Distribution distribution.Repository
	Leaderboard  leaderboard.Repository
	Settings     *postgres.SettingsRepository
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Distribution: postgres.NewDistributionRepository(dbPool),
		Leaderboard:  postgres.NewLeaderboardRepository(dbPool),
		Settings:     postgres.NewSettingsRepository(dbPool),
	}
}
