package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type HighScore struct {
	Username  string
	Size      int64
	Seed      int64
	StartedAt time.Time
	EndedAt   time.Time
}

func (s HighScore) Playtime() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}

type HighScoreFilter struct {
	Username *string
	Size     *int64
}

// GetHighScores returns fair solved sessions (no solve command used)
// ordered by playtime ascending.
func (q *Queries) GetHighScores(
	ctx context.Context, filter HighScoreFilter,
) ([]HighScore, error) {
	rows, err := q.db.Query(ctx, `
		SELECT
			p.username,
			gs.size,
			gs.seed,
			gs.started_at,
			gs.ended_at
		FROM game_session gs
		JOIN player p USING (player_id)
		WHERE gs.solved
			AND NOT gs.used_solve
			AND gs.ended_at IS NOT NULL
			AND (@username::text IS NULL OR p.username = @username)
			AND (@size::bigint IS NULL OR gs.size = @size)
		ORDER BY gs.ended_at - gs.started_at ASC
		LIMIT 100`,
		pgx.NamedArgs{
			"username": filter.Username,
			"size":     filter.Size,
		},
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[HighScore])
}
