package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/usecase"
)

type Server struct {
	logger  *slog.Logger
	useCase usecase.GameUseCase

	srv *http.Server
}

func New(logger *slog.Logger, useCase usecase.GameUseCase) *Server {
	return &Server{
		logger:  logger.With("component", "rest"),
		useCase: useCase,
	}
}

// Router - builds the HTTP API.
func (that *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(that.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", that.createSession)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", that.getSession)
			r.Delete("/", that.deleteSession)

			r.Put("/twists", that.configureTwists)
			r.Post("/start", that.startGame)
			r.Post("/reset", that.resetGame)
			r.Post("/change-twists", that.changeTwists)

			r.Post("/moves", that.attemptMove)
			r.Post("/abilities", that.activateAbility)
			r.Post("/undo", that.toggleUndo)
			r.Post("/timeout", that.checkTimeout)
		})
	})

	return r
}

// Start - serves the API until Shutdown is called.
func (that *Server) Start(port string) error {
	that.srv = &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
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

func (that *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		that.logger.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
