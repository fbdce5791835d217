package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/session"
)

const (
	actionSessionNew   = "session:new"
	actionSessionJoin  = "session:join"
	actionTwistsSet    = "twists:set"
	actionTwistsChange = "twists:change"
	actionGameStart    = "game:start"
	actionGameMove     = "game:move"
	actionGameAbility  = "game:ability"
	actionGameUndo     = "game:undo"
	actionGameReset    = "game:reset"
	actionGameTick     = "game:tick"
	actionError        = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is shared by requests and responses; each action reads the fields it needs.
type Payload struct {
	SessionID  string              `json:"session_id,omitempty"`
	Twists     *entity.TwistConfig `json:"twists,omitempty"`
	Mode       entity.GameMode     `json:"mode,omitempty"`
	Difficulty entity.Difficulty   `json:"difficulty,omitempty"`
	Cell       *entity.Coords      `json:"cell,omitempty"`
	Ability    entity.AbilityType  `json:"ability,omitempty"`

	View  *session.View `json:"view,omitempty"`
	Error string        `json:"error,omitempty"`
}

func newMessage(action string, payload Payload) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	return Message{Action: action, Payload: data}, nil
}
