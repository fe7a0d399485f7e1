package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type GameSession struct {
	GameSessionId int64
	PlayerId      *int64
	Size          int64
	Seed          int64
	Solved        bool
	UsedSolve     bool
	StartedAt     time.Time
	EndedAt       *time.Time
	State         []byte
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateGameSession(
	ctx context.Context, session *GameSession,
) (*GameSession, error) {
	rows, err := q.db.Query(ctx, `
		INSERT INTO game_session (
			player_id, size, seed, solved, used_solve, started_at, state
		)
		VALUES (
			@player_id, @size, @seed, @solved, @used_solve, @started_at, @state
		)
		RETURNING *`,
		pgx.NamedArgs{
			"player_id":  session.PlayerId,
			"size":       session.Size,
			"seed":       session.Seed,
			"solved":     session.Solved,
			"used_solve": session.UsedSolve,
			"started_at": session.StartedAt,
			"state":      session.State,
		},
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func (q *Queries) GetGameSession(
	ctx context.Context, gameSessionId int64,
) (*GameSession, error) {
	rows, err := q.db.Query(ctx, `
		SELECT * FROM game_session
		WHERE game_session_id = @game_session_id`,
		pgx.NamedArgs{"game_session_id": gameSessionId},
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func (q *Queries) UpdateGameSession(
	ctx context.Context, session *GameSession,
) (*GameSession, error) {
	rows, err := q.db.Query(ctx, `
		UPDATE game_session SET
			solved = @solved,
			used_solve = @used_solve,
			ended_at = @ended_at,
			state = @state,
			updated_at = now()
		WHERE game_session_id = @game_session_id
		RETURNING *`,
		pgx.NamedArgs{
			"game_session_id": session.GameSessionId,
			"solved":          session.Solved,
			"used_solve":      session.UsedSolve,
			"ended_at":        session.EndedAt,
			"state":           session.State,
		},
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}
