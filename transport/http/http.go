package http

import (
	"context"
	"errors"
	"flexwork/config"
	"flexwork/shared/constant"
	"flexwork/transport/http/middleware"
	"flexwork/transport/http/response"
	"flexwork/transport/http/router"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config     *config.Config
	Routes     router.Routes
	Middleware middleware.AppMiddleware

	port     string
	state    atomic.Int32
	mux      *chi.Mux
	server   *http.Server
	once     sync.Once
	done     chan struct{}
	cleanups []func(ctx context.Context)

	// cancelBase ends hijacked connections such as websockets, which
	// Shutdown does not wait for.
	cancelBase context.CancelFunc
}

// New builds the booking API server listening on SERVER_PORT.
func New(cfg *config.Config, r *router.Router, app middleware.AppMiddleware) *HTTP {
	return newServer(cfg, r, app, cfg.Server.Port)
}

// NewRelay builds the notification relay server listening on PORT.
func NewRelay(cfg *config.Config, r *router.Relay, app middleware.AppMiddleware) *HTTP {
	return newServer(cfg, r, app, cfg.RelayPort)
}

func newServer(cfg *config.Config, routes router.Routes, app middleware.AppMiddleware, port string) *HTTP {
	return &HTTP{
		Config:     cfg,
		Routes:     routes,
		Middleware: app,
		port:       port,
		done:       make(chan struct{}),
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// OnShutdown registers fn to run after the server stopped accepting requests.
func (h *HTTP) OnShutdown(fn func(ctx context.Context)) {
	h.cleanups = append(h.cleanups, fn)
}

// Serve blocks until the server has shut down after SIGINT or SIGTERM.
func (h *HTTP) Serve() {
	h.setup()

	baseCtx, cancel := context.WithCancel(context.Background())
	h.cancelBase = cancel

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.port),
		Handler:           h.mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return baseCtx
		},
	}

	h.setupGracefulShutdown()

	log.Info().Str("port", h.port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.done
}

// ServeHTTP lets the router be used without a listener, for example in tests.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.state.Store(int32(ServerStateReady))
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(
		chiMiddleware.RequestID,
		chiMiddleware.Recoverer,
		h.rejectWhenShuttingDown,
		h.Middleware.CORS(),
		h.Middleware.Tracing,
		h.Middleware.RateLimit(),
	)

	h.Routes.SetupRoutes(h.mux)
}

// rejectWhenShuttingDown refuses new work once the cleanup period started.
func (h *HTTP) rejectWhenShuttingDown(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.State() == ServerStateInCleanupPeriod {
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer close(h.done)

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		shutdownConfig.GracePeriodSeconds = 0
		shutdownConfig.CleanupPeriodSeconds = 0
	} else {
		log.Info().Msg("Received SIGTERM.")
	}

	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds+1)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server did not shut down cleanly")
	}

	h.cancelBase()

	for _, cleanup := range h.cleanups {
		cleanup(ctx)
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
