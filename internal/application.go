package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/config"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/repository"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/session"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/usecase"
	"github.com/rocketscienceinc/twisted-tictactoe/transport/rest"
	"github.com/rocketscienceinc/twisted-tictactoe/transport/websocket"
)

const shutdownTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	sessionRepo, closeStorage, err := newSessionRepository(ctx, log, conf)
	if err != nil {
		return err
	}

	defer closeStorage()

	gameUseCase := usecase.NewGameManager(logger, sessionRepo, session.WithTurnTimeLimit(conf.Game.TurnTimeLimit))

	restServer := rest.New(logger, gameUseCase)
	wsServer := websocket.New(logger, gameUseCase, conf.Game.TimeoutPollInterval)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := restServer.Start(conf.HTTPPort); httpErr != nil {
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(conf.SocketPort); wsErr != nil {
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		err = fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		err = fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if shutdownErr := restServer.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error("could not stop HTTP server", "error", shutdownErr)
	}

	if shutdownErr := wsServer.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error("could not stop WebSocket server", "error", shutdownErr)
	}

	return err
}

// newSessionRepository picks the session store from config. The returned func releases it.
func newSessionRepository(
	ctx context.Context, log *slog.Logger, conf *config.Config,
) (repository.SessionRepository, func(), error) {
	if conf.Storage == config.StorageMemory {
		log.Info("Using in-memory session storage")

		return repository.NewMemorySessionRepository(conf.Redis.SessionTTL), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	log.Info("Using redis session storage", "addr", redisAddrString)

	return repository.NewSessionRepository(redisStorage, conf.Redis.SessionTTL), closeStorage, nil
}
