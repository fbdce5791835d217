package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwistConfig_JSON(t *testing.T) {
	t.Run("Turn time limit is read in seconds", func(t *testing.T) {
		// Given: a client payload with a ten second clock
		var twists TwistConfig

		// When: decoding it
		err := json.Unmarshal([]byte(`{"sudden_death":true,"turn_time_limit_seconds":10}`), &twists)

		// Then: the limit is ten seconds
		require.NoError(t, err)
		assert.Equal(t, TwistConfig{SuddenDeath: true, TurnTimeLimit: 10 * time.Second}, twists)
	})

	t.Run("Turn time limit is written in seconds", func(t *testing.T) {
		data, err := json.Marshal(TwistConfig{Gravity: true, TurnTimeLimit: 1500 * time.Millisecond})
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))

		assert.Equal(t, 1.5, raw["turn_time_limit_seconds"])
		assert.Equal(t, true, raw["gravity"])
		assert.NotContains(t, raw, "TurnTimeLimit")
	})

	t.Run("Round trip keeps every flag", func(t *testing.T) {
		twists := TwistConfig{
			Undo: true, Gravity: true, SuddenDeath: true, Evolve: true,
			Abilities: true, BoardShift: true, MemoryChallenge: true,
			TurnTimeLimit: 7 * time.Second,
		}

		data, err := json.Marshal(twists)
		require.NoError(t, err)

		var decoded TwistConfig
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, twists, decoded)
	})

	t.Run("Missing limit falls back to the default", func(t *testing.T) {
		var twists TwistConfig
		require.NoError(t, json.Unmarshal([]byte(`{"sudden_death":true}`), &twists))

		assert.Equal(t, DefaultTurnTimeLimit, twists.WithDefaults(0).TurnTimeLimit)
	})

	t.Run("Negative limit is rejected", func(t *testing.T) {
		var twists TwistConfig

		require.Error(t, json.Unmarshal([]byte(`{"turn_time_limit_seconds":-1}`), &twists))
	})
}
