package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/galaxies-server/internal/config"
	"github.com/vancomm/galaxies-server/internal/galaxies"
	"github.com/vancomm/galaxies-server/internal/middleware"
	"github.com/vancomm/galaxies-server/internal/repository"
)

type GameHandler struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
	rnd     *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
		rnd:     rnd,
	}
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	seed := g.rnd.Int64()
	if dto.Seed != nil {
		seed = *dto.Seed
	}

	model, err := galaxies.NewModel(galaxies.GameParams{Size: dto.Size, Seed: seed})
	if errors.Is(err, galaxies.ErrUnsupportedSize) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to generate a new game", "error", err)
		return
	}

	state, err := model.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to encode game state", "error", err)
		return
	}

	var playerId *int64
	if claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims); ok {
		playerId = &claims.PlayerId
	}

	session, err := g.repo.CreateGameSession(r.Context(), &repository.GameSession{
		PlayerId:  playerId,
		Size:      int64(model.Size),
		Seed:      model.Seed,
		StartedAt: time.Now().UTC(),
		State:     state,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionId, session.StartedAt, session.EndedAt, model,
	))
}

// fetchSession loads a session and its decoded model, writing the error
// response itself when it fails.
func (g GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *galaxies.Model, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.GetGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	model, err := galaxies.DecodeModel(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}

	return session, model, true
}

// saveAndSend persists the model back into the session and replies with the
// session DTO. A freshly solved game stamps ended_at.
func (g GameHandler) saveAndSend(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, model *galaxies.Model,
) {
	solved := model.IsSolved()
	if solved && session.EndedAt == nil {
		now := time.Now().UTC()
		session.EndedAt = &now
	}

	state, err := model.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to serialize game state", "error", err)
		return
	}

	session.Solved = solved
	session.UsedSolve = model.UsedSolve
	session.State = state

	if _, err := g.repo.UpdateGameSession(r.Context(), session); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionId, session.StartedAt, session.EndedAt, model,
	))
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, model, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionId, session.StartedAt, session.EndedAt, model,
	))
}

func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	session, model, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	var err error
	switch move := query.Get("move"); move {
	case "toggle":
		var e galaxies.Edge
		if e, err = parseEdgeQuery(query); err == nil {
			err = model.ToggleEdge(e)
		}
	case "arrow":
		var dot int
		var dir galaxies.Direction
		if dot, dir, err = parseArrowQuery(query); err == nil {
			err = model.PlaceArrow(dot, dir)
		}
	case "undo":
		model.Undo()
	case "redo":
		model.Redo()
	case "restart":
		model.Restart()
	default:
		err = fmt.Errorf("unknown move %q", move)
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	g.saveAndSend(w, r, session, model)
}

func (g GameHandler) Hint(w http.ResponseWriter, r *http.Request) {
	session, model, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	hint, err := model.Hint()
	if errors.Is(err, galaxies.ErrNoCandidates) {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to compute hint", "error", err)
		return
	}

	if r.URL.Query().Get("apply") == "1" {
		if err := model.ToggleEdge(hint.Edge); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			g.logger.Error("unable to apply hint", "error", err)
			return
		}
		g.saveAndSend(w, r, session, model)
		return
	}

	sendJSONOrLog(w, g.logger, hint)
}

func (g GameHandler) RankedHints(w http.ResponseWriter, r *http.Request) {
	_, model, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	k := 5
	if s := r.URL.Query().Get("k"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.logger, wrapError(fmt.Errorf("k must be an int")))
			return
		}
		k = parsed
	}

	sendJSONOrLog(w, g.logger, model.RankedHints(k))
}

func (g GameHandler) Solve(w http.ResponseWriter, r *http.Request) {
	session, model, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	model.Solve()
	g.saveAndSend(w, r, session, model)
}

func (g GameHandler) HighScores(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseHighScoresDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	scores, err := g.repo.GetHighScores(r.Context(), repository.HighScoreFilter{
		Username: dto.Username,
		Size:     dto.Size,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch high scores", "error", err)
		return
	}

	dtos := make([]HighScoreDTO, len(scores))
	for i, s := range scores {
		dtos[i] = NewHighScoreDTO(s)
	}
	sendJSONOrLog(w, g.logger, dtos)
}

func parseEdgeQuery(query map[string][]string) (galaxies.Edge, error) {
	get := func(key string) (int, error) {
		vs, ok := query[key]
		if !ok || len(vs) == 0 {
			return 0, fmt.Errorf("missing query parameter %q", key)
		}
		return strconv.Atoi(vs[0])
	}
	var e galaxies.Edge
	orients, ok := query["orient"]
	if !ok || len(orients) == 0 {
		return e, fmt.Errorf("missing query parameter %q", "orient")
	}
	orient, err := galaxies.ParseOrient(orients[0])
	if err != nil {
		return e, err
	}
	x, err := get("x")
	if err != nil {
		return e, err
	}
	y, err := get("y")
	if err != nil {
		return e, err
	}
	return galaxies.Edge{Orient: orient, X: x, Y: y}, nil
}

func parseArrowQuery(query map[string][]string) (int, galaxies.Direction, error) {
	dots, ok := query["dot"]
	if !ok || len(dots) == 0 {
		return 0, 0, fmt.Errorf("missing query parameter %q", "dot")
	}
	dot, err := strconv.Atoi(dots[0])
	if err != nil {
		return 0, 0, fmt.Errorf("dot must be an int")
	}
	dirs, ok := query["dir"]
	if !ok || len(dirs) == 0 {
		return 0, 0, fmt.Errorf("missing query parameter %q", "dir")
	}
	dir, err := galaxies.ParseDirection(dirs[0])
	if err != nil {
		return 0, 0, err
	}
	return dot, dir, nil
}
