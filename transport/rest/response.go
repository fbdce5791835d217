package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/session"
)

var errInvalidPayload = errors.New("invalid payload")

type errorResponse struct {
	Error string        `json:"error"`
	View  *session.View `json:"view,omitempty"`
}

var badRequestErrors = []error{
	errInvalidPayload,
	apperror.ErrInvalidCell,
	apperror.ErrUnknownAbility,
	apperror.ErrUnknownDifficulty,
	apperror.ErrUnknownMode,
}

// conflictErrors are rule rejections: the request was well formed but the game state
// does not allow it.
var conflictErrors = []error{
	apperror.ErrCellOccupied,
	apperror.ErrColumnFull,
	apperror.ErrMaxLevelReached,
	apperror.ErrNotYourMark,
	apperror.ErrInvalidSwap,
	apperror.ErrEmptyCellRemoval,
	apperror.ErrNoAbilityChargesLeft,
	apperror.ErrGameNotActive,
	apperror.ErrTwistDisabled,
	apperror.ErrAbilityInProgress,
	apperror.ErrGameAlreadyStarted,
}

func statusFor(err error) int {
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return http.StatusNotFound
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}

	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return http.StatusConflict
		}
	}

	return http.StatusInternalServerError
}

func (that *Server) respond(w http.ResponseWriter, r *http.Request, view session.View, err error) {
	if err != nil {
		that.writeError(w, r, err, &view)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// writeError hides internal failures from the client; rule rejections carry the view so
// the client can show the message.
func (that *Server) writeError(w http.ResponseWriter, r *http.Request, err error, view *session.View) {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, status, errorResponse{Error: http.StatusText(status)})

		return
	}

	resp := errorResponse{Error: apperror.Message(err)}
	if view != nil && view.Phase != "" {
		resp.View = view
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
