package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/distribution"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/logger"
)

// DistributionRepository persists distribution records in PostgreSQL
type DistributionRepository struct {
	pool *pgxpool.Pool
}

// NewDistributionRepository creates a new DistributionRepository
func NewDistributionRepository(pool *pgxpool.Pool) distribution.Repository {
	return &DistributionRepository{pool: pool}
}

// Record inserts one immutable distribution record. Records are never
// updated after insert.
func (r *DistributionRepository) Record(ctx context.Context, record *domain.DistributionRecord) error {
	outcomesJSON, err := json.Marshal(record.Outcomes)
	if err != nil {
		return fmt.Errorf("failed to marshal outcomes: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO reward_distributions
			(id, timeframe, trigger_type, status, total_amount, recipient_count, outcomes, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		record.ID,
		string(record.Timeframe),
		string(record.TriggerType),
		string(record.Status),
		record.TotalAmount,
		record.RecipientCount,
		outcomesJSON,
		record.CreatedAt,
		record.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInsertDistribution, err)
	}
	return nil
}

// History returns the most recent records for a timeframe, newest first.
// Rows whose outcome payload fails to unmarshal are skipped so one bad
// row never fails the whole query.
func (r *DistributionRepository) History(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.DistributionRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.pool.Query(ctx, `
		SELECT id, timeframe, trigger_type, status, total_amount, recipient_count, outcomes, created_at, expires_at
		FROM reward_distributions
		WHERE timeframe = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		string(timeframe), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryDistributions, err)
	}
	defer rows.Close()

	records := make([]domain.DistributionRecord, 0, limit)
	for rows.Next() {
		var (
			rec          domain.DistributionRecord
			id           uuid.UUID
			tf, trig, st string
			outcomesJSON []byte
			createdAt    time.Time
			expiresAt    time.Time
		)
		if err := rows.Scan(&id, &tf, &trig, &st, &rec.TotalAmount, &rec.RecipientCount, &outcomesJSON, &createdAt, &expiresAt); err != nil {
			log.Warn("Skipping unreadable distribution row", "error", err)
			continue
		}
		if err := json.Unmarshal(outcomesJSON, &rec.Outcomes); err != nil {
			log.Warn("Skipping distribution row with malformed outcomes", "id", id, "error", err)
			continue
		}
		rec.ID = id
		rec.Timeframe = domain.Timeframe(tf)
		rec.TriggerType = domain.TriggerType(trig)
		rec.Status = domain.RunStatus(st)
		rec.CreatedAt = createdAt
		rec.ExpiresAt = expiresAt
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryDistributions, err)
	}
	return records, nil
}

// PurgeExpired deletes records past their retention window
func (r *DistributionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reward_distributions WHERE expires_at < now()`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgPurgeDistributions, err)
	}
	return tag.RowsAffected(), nil
}
