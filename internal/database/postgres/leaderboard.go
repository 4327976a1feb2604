package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/leaderboard"
)

// LeaderboardRepository reads ranked participants from the scores table.
// The engine treats the ranking store as read-only; scores are written by
// the game backend.
type LeaderboardRepository struct {
	pool *pgxpool.Pool
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(pool *pgxpool.Pool) leaderboard.Repository {
	return &LeaderboardRepository{pool: pool}
}

// GetRankedParticipants returns up to limit participants for a timeframe,
// ranked by score descending with dense 1-based ranks
func (r *LeaderboardRepository) GetRankedParticipants(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.Participant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT address, fid, display_name, score,
		       ROW_NUMBER() OVER (ORDER BY score DESC, updated_at ASC) AS rank
		FROM leaderboard_scores
		WHERE timeframe = $1
		ORDER BY score DESC, updated_at ASC
		LIMIT $2`,
		string(timeframe), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryLeaderboard, err)
	}
	defer rows.Close()

	participants := make([]domain.Participant, 0, limit)
	for rows.Next() {
		var p domain.Participant
		var rank int64
		if err := rows.Scan(&p.Address, &p.FID, &p.DisplayName, &p.Score, &rank); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgQueryLeaderboard, err)
		}
		p.Rank = int(rank)
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryLeaderboard, err)
	}
	return participants, nil
}
