package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/entity"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/session"
	mockedUseCase "github.com/rocketscienceinc/twisted-tictactoe/mocks/usecase"
)

func dial(t *testing.T, pollInterval time.Duration) (*websocket.Conn, *mockedUseCase.MockGameUseCase) {
	t.Helper()

	useCase := mockedUseCase.NewMockGameUseCase(t)
	server := New(slog.New(slog.NewTextHandler(io.Discard, nil)), useCase, pollInterval)

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn, useCase
}

func sendAction(t *testing.T, conn *websocket.Conn, action string, payload Payload) {
	t.Helper()

	msg, err := newMessage(action, payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(msg))
}

func receive(t *testing.T, conn *websocket.Conn) (string, Payload) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))

	var payload Payload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))

	return msg.Action, payload
}

func TestNewSessionAndMove(t *testing.T) {
	conn, useCase := dial(t, time.Hour)

	// Given: a new session
	useCase.EXPECT().
		CreateSession(mock.Anything).
		Return("abc", session.View{Phase: session.PhaseConfiguring}, nil).
		Once()

	sendAction(t, conn, actionSessionNew, Payload{})

	action, payload := receive(t, conn)
	assert.Equal(t, actionSessionNew, action)
	assert.Equal(t, "abc", payload.SessionID)
	require.NotNil(t, payload.View)
	assert.Equal(t, session.PhaseConfiguring, payload.View.Phase)

	// When: a move is rejected by the rules
	rejected := session.View{Phase: session.PhaseInProgress, Message: "Column is full! Try another."}
	useCase.EXPECT().
		AttemptMove(mock.Anything, "abc", entity.Coords{Row: 0, Col: 1}).
		Return(rejected, apperror.ErrColumnFull).
		Once()

	sendAction(t, conn, actionGameMove, Payload{Cell: &entity.Coords{Row: 0, Col: 1}})

	// Then: the client gets the message and the view
	action, payload = receive(t, conn)
	assert.Equal(t, actionGameMove, action)
	assert.Equal(t, "Column is full! Try another.", payload.Error)
	require.NotNil(t, payload.View)
	assert.Equal(t, session.PhaseInProgress, payload.View.Phase)
}

func TestActionsNeedASession(t *testing.T) {
	conn, _ := dial(t, time.Hour)

	sendAction(t, conn, actionGameUndo, Payload{})

	action, payload := receive(t, conn)
	assert.Equal(t, actionGameUndo, action)
	assert.Equal(t, "no session joined", payload.Error)
	assert.Nil(t, payload.View)
}

func TestUnknownAction(t *testing.T) {
	conn, _ := dial(t, time.Hour)

	sendAction(t, conn, "game:cheat", Payload{})

	action, payload := receive(t, conn)
	assert.Equal(t, actionError, action)
	assert.Contains(t, payload.Error, "game:cheat")
}

func TestJoinUnknownSession(t *testing.T) {
	conn, useCase := dial(t, time.Hour)

	useCase.EXPECT().
		GetSession(mock.Anything, "missing").
		Return(session.View{}, apperror.ErrSessionNotFound).
		Once()

	sendAction(t, conn, actionSessionJoin, Payload{SessionID: "missing"})

	_, payload := receive(t, conn)
	assert.Equal(t, "session not found", payload.Error)
}

func TestSuddenDeathTicks(t *testing.T) {
	conn, useCase := dial(t, 20*time.Millisecond)

	// Given: a joined Sudden Death game
	running := session.View{
		Phase:  session.PhaseInProgress,
		Twists: entity.TwistConfig{SuddenDeath: true},
	}
	useCase.EXPECT().
		GetSession(mock.Anything, "abc").
		Return(running, nil).
		Once()

	// When: the poller finds the turn expired
	over := running
	over.Phase = session.PhaseOver
	over.Outcome = entity.Win(entity.PlayerO)
	useCase.EXPECT().
		CheckTimeout(mock.Anything, "abc").
		Return(over, nil).
		Once()

	sendAction(t, conn, actionSessionJoin, Payload{SessionID: "abc"})

	action, _ := receive(t, conn)
	require.Equal(t, actionSessionJoin, action)

	// Then: the finished game is pushed without a request
	action, payload := receive(t, conn)
	assert.Equal(t, actionGameTick, action)
	require.NotNil(t, payload.View)
	assert.Equal(t, entity.Win(entity.PlayerO), payload.View.Outcome)
}

func TestSetTwistsTakesSeconds(t *testing.T) {
	conn, useCase := dial(t, time.Hour)

	// Given: a joined session
	useCase.EXPECT().
		GetSession(mock.Anything, "abc").
		Return(session.View{Phase: session.PhaseConfiguring}, nil).
		Once()

	sendAction(t, conn, actionSessionJoin, Payload{SessionID: "abc"})

	action, _ := receive(t, conn)
	require.Equal(t, actionSessionJoin, action)

	// When: the client sets a ten second Sudden Death clock
	twists := entity.TwistConfig{SuddenDeath: true, TurnTimeLimit: 10 * time.Second}
	useCase.EXPECT().
		ConfigureTwists(mock.Anything, "abc", twists).
		Return(session.View{Phase: session.PhaseConfiguring, Twists: twists}, nil).
		Once()

	raw := `{"action":"twists:set","payload":{"twists":{"sudden_death":true,"turn_time_limit_seconds":10}}}`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(raw)))

	// Then: the limit reaches the game as ten seconds and is echoed back the same way
	action, payload := receive(t, conn)
	assert.Equal(t, actionTwistsSet, action)
	require.NotNil(t, payload.View)
	assert.Equal(t, 10*time.Second, payload.View.Twists.TurnTimeLimit)
}
