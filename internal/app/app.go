package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	_ "github.com/agusnoopy3000/huertohogar-api/docs"
	"github.com/agusnoopy3000/huertohogar-api/internal/config"
	"github.com/agusnoopy3000/huertohogar-api/internal/middleware"
	"github.com/agusnoopy3000/huertohogar-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

const apiPrefix = "/api/v1"

type application struct {
	logger *slog.Logger

	router   chi.Router
	api      chi.Router
	verifier middleware.TokenVerifier
	httpSrv  *http.Server

	starters []Starter
	closers  []Closer
}

func New(logger *slog.Logger, cfg config.Config, verifier middleware.TokenVerifier) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics)
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Cors.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	api := chi.NewRouter()
	router.Mount(apiPrefix, api)

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &application{
		logger:   logger,
		httpSrv:  httpSrv,
		router:   router,
		api:      api,
		verifier: verifier,
	}
}

type PublicHandler interface {
	InitPublic(r chi.Router)
}

// SetPublicHandlers регистрирует маршруты, доступные без токена.
func (a *application) SetPublicHandlers(handlers ...PublicHandler) {
	a.api.Group(func(r chi.Router) {
		for _, h := range handlers {
			h.InitPublic(r)
		}
	})
}

type HTTPHandler interface {
	Init(r chi.Router)
}

// SetHTTPHandlers регистрирует маршруты, требующие bearer токен.
func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	a.api.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(a.verifier))
		for _, h := range handlers {
			h.Init(r)
		}
	})
}

type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = append(a.starters, starters...)
}

type Closer interface {
	Close() error
}

// SetClosers задает ресурсы, закрываемые после остановки http сервера, в указанном порядке.
func (a *application) SetClosers(closers ...Closer) {
	a.closers = append(a.closers, closers...)
}

func (a *application) Start(ctx context.Context) error {
	// фоновые задачи стартеров живут дольше Start, поэтому ctx не отменяется группой
	var g errgroup.Group
	for _, s := range a.starters {
		g.Go(func() error {
			return s.Start(ctx)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	go a.serve(ln)

	a.logger.Info("application started", slog.String("addr", a.httpSrv.Addr))
	return nil
}

func (a *application) serve(ln net.Listener) {
	if err := a.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("http server stopped unexpectedly", slog.Any("error", err))
	}
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
