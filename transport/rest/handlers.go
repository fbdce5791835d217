package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/session"
)

type createSessionResponse struct {
	SessionID string       `json:"session_id"`
	View      session.View `json:"view"`
}

type startGameRequest struct {
	Mode       entity.GameMode   `json:"mode"`
	Difficulty entity.Difficulty `json:"difficulty,omitempty"`
}

type abilityRequest struct {
	Ability entity.AbilityType `json:"ability"`
}

func (that *Server) createSession(w http.ResponseWriter, r *http.Request) {
	id, view, err := that.useCase.CreateSession(r.Context())
	if err != nil {
		that.writeError(w, r, err, nil)
		return
	}

	writeJSON(w, http.StatusCreated, createSessionResponse{SessionID: id, View: view})
}

func (that *Server) getSession(w http.ResponseWriter, r *http.Request) {
	view, err := that.useCase.GetSession(r.Context(), sessionID(r))
	that.respond(w, r, view, err)
}

func (that *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := that.useCase.DeleteSession(r.Context(), sessionID(r)); err != nil {
		that.writeError(w, r, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) configureTwists(w http.ResponseWriter, r *http.Request) {
	var twists entity.TwistConfig
	if err := decode(r, &twists); err != nil {
		that.writeError(w, r, err, nil)
		return
	}

	view, err := that.useCase.ConfigureTwists(r.Context(), sessionID(r), twists)
	that.respond(w, r, view, err)
}

func (that *Server) startGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := decode(r, &req); err != nil {
		that.writeError(w, r, err, nil)
		return
	}

	view, err := that.useCase.StartGame(r.Context(), sessionID(r), req.Mode, req.Difficulty)
	that.respond(w, r, view, err)
}

func (that *Server) resetGame(w http.ResponseWriter, r *http.Request) {
	view, err := that.useCase.ResetGame(r.Context(), sessionID(r))
	that.respond(w, r, view, err)
}

func (that *Server) changeTwists(w http.ResponseWriter, r *http.Request) {
	view, err := that.useCase.ChangeTwists(r.Context(), sessionID(r))
	that.respond(w, r, view, err)
}

func (that *Server) attemptMove(w http.ResponseWriter, r *http.Request) {
	var target entity.Coords
	if err := decode(r, &target); err != nil {
		that.writeError(w, r, err, nil)
		return
	}

	view, err := that.useCase.AttemptMove(r.Context(), sessionID(r), target)
	that.respond(w, r, view, err)
}

func (that *Server) activateAbility(w http.ResponseWriter, r *http.Request) {
	var req abilityRequest
	if err := decode(r, &req); err != nil {
		that.writeError(w, r, err, nil)
		return
	}

	view, err := that.useCase.ActivateAbility(r.Context(), sessionID(r), req.Ability)
	that.respond(w, r, view, err)
}

func (that *Server) toggleUndo(w http.ResponseWriter, r *http.Request) {
	view, err := that.useCase.ToggleUndo(r.Context(), sessionID(r))
	that.respond(w, r, view, err)
}

func (that *Server) checkTimeout(w http.ResponseWriter, r *http.Request) {
	view, err := that.useCase.CheckTimeout(r.Context(), sessionID(r))
	that.respond(w, r, view, err)
}

func sessionID(r *http.Request) string {
	return chi.URLParam(r, "sessionID")
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidPayload, err)
	}

	return nil
}
