package handlers

import (
	"strconv"
	"time"

	"github.com/gorilla/schema"

	"github.com/vancomm/galaxies-server/internal/galaxies"
	"github.com/vancomm/galaxies-server/internal/repository"
)

type CreateNewGameDTO struct {
	Size int    `schema:"size,required"`
	Seed *int64 `schema:"seed"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type HighScoresDTO struct {
	Username *string `schema:"username"`
	Size     *int64  `schema:"size"`
}

func ParseHighScoresDTO(src map[string][]string) (HighScoresDTO, error) {
	var dto HighScoresDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type GameSessionDTO struct {
	GameSessionId string           `json:"game_session_id"`
	Size          int              `json:"size"`
	Seed          int64            `json:"seed"`
	Dots          []galaxies.Dot   `json:"dots"`
	Drawn         []galaxies.Edge  `json:"drawn"`
	Arrows        []galaxies.Arrow `json:"arrows"`
	ValidCells    []int            `json:"valid_cells"`
	Solved        bool             `json:"solved"`
	UsedSolve     bool             `json:"used_solve"`
	StartedAt     int64            `json:"started_at"`
	EndedAt       *int64           `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	gameSessionId int64,
	startedAt time.Time,
	endedAt *time.Time,
	m *galaxies.Model,
) *GameSessionDTO {
	var endedAtInt *int64
	if endedAt != nil {
		e := endedAt.UnixMilli()
		endedAtInt = &e
	}
	return &GameSessionDTO{
		GameSessionId: strconv.FormatInt(gameSessionId, 10),
		Size:          m.Size,
		Seed:          m.Seed,
		Dots:          m.Puzzle.Dots,
		Drawn:         m.Drawn.Edges(),
		Arrows:        m.Arrows,
		ValidCells:    galaxies.ValidCells(m.Size, m.Drawn, m.Puzzle.Dots),
		Solved:        m.IsSolved(),
		UsedSolve:     m.UsedSolve,
		StartedAt:     startedAt.UnixMilli(),
		EndedAt:       endedAtInt,
	}
}

type HighScoreDTO struct {
	Username   string `json:"username"`
	Size       int64  `json:"size"`
	Seed       int64  `json:"seed"`
	StartedAt  int64  `json:"started_at"`
	EndedAt    int64  `json:"ended_at"`
	PlaytimeMs int64  `json:"playtime_ms"`
}

func NewHighScoreDTO(s repository.HighScore) HighScoreDTO {
	return HighScoreDTO{
		Username:   s.Username,
		Size:       s.Size,
		Seed:       s.Seed,
		StartedAt:  s.StartedAt.UnixMilli(),
		EndedAt:    s.EndedAt.UnixMilli(),
		PlaytimeMs: int64(s.Playtime() / time.Millisecond),
	}
}
