package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultTurnTimeLimit is the Sudden Death clock when none is configured.
const DefaultTurnTimeLimit = 10 * time.Second

// TwistConfig is the set of rule modifications for one session.
type TwistConfig struct {
	Undo            bool          `json:"undo"`
	Gravity         bool          `json:"gravity"`
	SuddenDeath     bool          `json:"sudden_death"`
	Evolve          bool          `json:"evolve"`
	Abilities       bool          `json:"abilities"`
	BoardShift      bool          `json:"board_shift"`
	MemoryChallenge bool          `json:"memory_challenge"`
	TurnTimeLimit   time.Duration `json:"-"`
}

// Standard reports whether no twist is enabled.
func (that TwistConfig) Standard() bool {
	return !that.Undo && !that.Gravity && !that.SuddenDeath && !that.Evolve &&
		!that.Abilities && !that.BoardShift && !that.MemoryChallenge
}

// WithDefaults fills in parameters a twist needs but the caller left unset.
func (that TwistConfig) WithDefaults(turnTimeLimit time.Duration) TwistConfig {
	if that.TurnTimeLimit <= 0 {
		that.TurnTimeLimit = turnTimeLimit
	}

	if that.TurnTimeLimit <= 0 {
		that.TurnTimeLimit = DefaultTurnTimeLimit
	}

	return that
}

type twistConfigJSON struct {
	plainTwistConfig
	TurnTimeLimitSeconds float64 `json:"turn_time_limit_seconds,omitempty"`
}

type plainTwistConfig TwistConfig

// MarshalJSON writes the Sudden Death limit as turn_time_limit_seconds.
func (that TwistConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(twistConfigJSON{
		plainTwistConfig:     plainTwistConfig(that),
		TurnTimeLimitSeconds: that.TurnTimeLimit.Seconds(),
	})
}

func (that *TwistConfig) UnmarshalJSON(data []byte) error {
	var raw twistConfigJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal twists: %w", err)
	}

	if raw.TurnTimeLimitSeconds < 0 {
		return fmt.Errorf("negative turn time limit: %v", raw.TurnTimeLimitSeconds)
	}

	*that = TwistConfig(raw.plainTwistConfig)
	that.TurnTimeLimit = time.Duration(raw.TurnTimeLimitSeconds * float64(time.Second))

	return nil
}
