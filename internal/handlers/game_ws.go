package handlers

import (
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/galaxies-server/internal/galaxies"
)

func iterBySep(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

var commandNargs = map[string]int{
	"t": 3,
	"a": 2,
	"u": 0,
	"r": 0,
	"x": 0,
	"h": 0,
	"s": 0,
}

// ApplyCommand executes one text command against the model. The grammar is
// shared by the websocket protocol and the interactive CLI:
//
//	t <h|v> <x> <y>   toggle an edge
//	a <dot> <dir>     place an arrow
//	u                 undo
//	r                 redo
//	x                 restart
//	h                 apply the best hint
//	s                 show the solution
func ApplyCommand(m *galaxies.Model, c string) error {
	parts := strings.Split(c, " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command")
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "t":
		orient, err := galaxies.ParseOrient(parts[1])
		if err != nil {
			return err
		}
		x, err := strconv.Atoi(parts[2])
		if err != nil {
			return fmt.Errorf("x must be an int")
		}
		y, err := strconv.Atoi(parts[3])
		if err != nil {
			return fmt.Errorf("y must be an int")
		}
		return m.ToggleEdge(galaxies.Edge{Orient: orient, X: x, Y: y})
	case "a":
		dot, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("dot must be an int")
		}
		dir, err := galaxies.ParseDirection(parts[2])
		if err != nil {
			return err
		}
		return m.PlaceArrow(dot, dir)
	case "u":
		m.Undo()
		return nil
	case "r":
		m.Redo()
		return nil
	case "x":
		m.Restart()
		return nil
	case "h":
		hint, err := m.Hint()
		if err != nil {
			return err
		}
		return m.ToggleEdge(hint.Edge)
	case "s":
		m.Solve()
		return nil
	}
	return fmt.Errorf("invalid command")
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, model, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}

	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		for _, line := range iterBySep(text, "\n") {
			if err := ApplyCommand(model, line); err != nil {
				if werr := c.WriteJSON(wrapError(err)); werr != nil {
					g.logger.Error("unable to write json", slog.Any("error", werr))
					return
				}
				continue
			}
		}

		state, err := model.Bytes()
		if err != nil {
			g.logger.Error("unable to serialize game state", slog.Any("error", err))
			return
		}

		session.Solved = model.IsSolved()
		session.UsedSolve = model.UsedSolve
		session.State = state
		if session.Solved && session.EndedAt == nil {
			now := time.Now().UTC()
			session.EndedAt = &now
		}

		if _, err := g.repo.UpdateGameSession(r.Context(), session); err != nil {
			g.logger.Error("unable to update session in db", slog.Any("error", err))
			return
		}

		dto := NewGameSessionDTO(
			session.GameSessionId, session.StartedAt, session.EndedAt, model,
		)
		if err := c.WriteJSON(dto); err != nil {
			g.logger.Error("unable to write json", slog.Any("error", err))
			break
		}
	}
}
