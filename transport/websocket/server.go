package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/usecase"
)

const defaultPollInterval = time.Second

type handlerFunc func(ctx context.Context, c *client, payload *Payload) error

type Server struct {
	logger       *slog.Logger
	useCase      usecase.GameUseCase
	pollInterval time.Duration

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc

	srv *http.Server
}

// New - pollInterval is how often Sudden Death sessions are checked for a timeout.
func New(logger *slog.Logger, useCase usecase.GameUseCase, pollInterval time.Duration) *Server {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	server := &Server{
		logger:       logger.With("component", "websocket"),
		useCase:      useCase,
		pollInterval: pollInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		actionSessionNew:   server.handleNewSession,
		actionSessionJoin:  server.handleJoinSession,
		actionTwistsSet:    server.handleSetTwists,
		actionTwistsChange: server.handleChangeTwists,
		actionGameStart:    server.handleStartGame,
		actionGameMove:     server.handleMove,
		actionGameAbility:  server.handleAbility,
		actionGameUndo:     server.handleUndo,
		actionGameReset:    server.handleReset,
	}

	return server
}

func (that *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/ws", that.serveWS)

	return r
}

// Start - starts WebSocket server.
func (that *Server) Start(port string) error {
	that.srv = &http.Server{
		Addr:              ":" + port,
		Handler:           that.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if that.srv == nil {
		return nil
	}

	if err := that.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// serveWS - upgrades the connection and serves it until the client goes away.
func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	c := &client{conn: conn}

	go that.pollTimeouts(ctx, c)

	log.Debug("WebSocket connection established", "remote", r.RemoteAddr)

	if err = that.handleMessages(ctx, c); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return fmt.Errorf("failed to read message: %w", err)
			}

			return nil
		}

		handler, ok := that.handlers[msg.Action]
		if !ok {
			log.Warn("unknown action", "action", msg.Action)

			if err := that.sendError(c, actionError, fmt.Sprintf("unknown action %q", msg.Action)); err != nil {
				return err
			}

			continue
		}

		var payload Payload
		if len(msg.Payload) > 0 {
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				if err = that.sendError(c, msg.Action, "invalid payload"); err != nil {
					return err
				}

				continue
			}
		}

		if err := handler(ctx, c, &payload); err != nil {
			return fmt.Errorf("failed to handle %s: %w", msg.Action, err)
		}
	}
}

// pollTimeouts pushes the view of a Sudden Death session every poll interval, so the
// client sees the clock run down and the game end when it runs out.
func (that *Server) pollTimeouts(ctx context.Context, c *client) {
	log := that.logger.With("method", "pollTimeouts")

	ticker := time.NewTicker(that.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			id, ok := c.tickTarget()
			if !ok {
				continue
			}

			view, err := that.useCase.CheckTimeout(ctx, id)
			if err != nil {
				log.Error("failed to check timeout", "session_id", id, "error", err)
				continue
			}

			if err = that.reply(c, actionGameTick, view, nil); err != nil {
				log.Error("failed to push tick", "session_id", id, "error", err)
				return
			}
		}
	}
}
