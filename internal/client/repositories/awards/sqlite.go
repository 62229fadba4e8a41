package awards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fitquest/fitquest/internal/client/models"
	"github.com/fitquest/fitquest/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, questID, userID int64) (*models.AwardMarker, error) {
	var (
		m         models.AwardMarker
		awardedAt int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT awarded, awarded_at, exp_amount, errored
		FROM award_markers WHERE quest_id = ? AND user_id = ?
	`, questID, userID).Scan(&m.Awarded, &awardedAt, &m.ExpAmount, &m.Errored)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get award marker [%d/%d]: %w", questID, userID, err)
	}
	m.Timestamp = time.Unix(awardedAt, 0).UTC()
	return &m, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, questID, userID int64, m models.AwardMarker) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO award_markers (quest_id, user_id, awarded, awarded_at, exp_amount, errored)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(quest_id, user_id) DO UPDATE SET
			awarded = excluded.awarded,
			awarded_at = excluded.awarded_at,
			exp_amount = excluded.exp_amount,
			errored = excluded.errored
	`, questID, userID, m.Awarded, m.Timestamp.Unix(), m.ExpAmount, m.Errored)
	if err != nil {
		return fmt.Errorf("failed to put award marker [%d/%d]: %w", questID, userID, err)
	}
	return nil
}
