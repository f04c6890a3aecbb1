package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/agusnoopy3000/huertohogar-api/internal/app"
	"github.com/agusnoopy3000/huertohogar-api/internal/auth"
	"github.com/agusnoopy3000/huertohogar-api/internal/config"
	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/handler"
	"github.com/agusnoopy3000/huertohogar-api/internal/mirror"
	"github.com/agusnoopy3000/huertohogar-api/internal/postgres"
	"github.com/agusnoopy3000/huertohogar-api/internal/repo"
	"github.com/agusnoopy3000/huertohogar-api/internal/service"
	"github.com/agusnoopy3000/huertohogar-api/internal/storage"
	"github.com/agusnoopy3000/huertohogar-api/pkg/cache"
	"github.com/agusnoopy3000/huertohogar-api/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// @title                       HuertoHogar API
// @version                     1.0
// @description                 Каталог товаров, заказы и документы HuertoHogar
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	// цены и суммы отдаются числами, как в каталоге фронтенда
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))

	orderRepo := repo.NewOrderRepo(db)
	productRepo := repo.NewProductRepo(db)
	userRepo := repo.NewUserRepo(db)
	documentRepo := repo.NewDocumentRepo(db)
	txManager := trm.NewManager(db)

	orderCache := cache.NewLRU[string, entities.Order](conf.Cache.Capacity, conf.Cache.TTL)
	dispatcher := mirror.NewDispatcher(logger, newMirrorSink(logger, conf.Kafka), conf.Mirror.QueueSize, conf.Mirror.PublishTimeout)

	tokens := auth.NewTokenManager(conf.JWT.Secret, conf.JWT.TTL, conf.JWT.Issuer)
	hasher := auth.NewHasher(conf.Passwords.Cost)
	documents := storage.NewS3(logger, conf.Storage)

	orderService := service.NewOrderService(logger, txManager, orderRepo, productRepo, userRepo, orderCache, dispatcher)
	productService := service.NewProductService(logger, productRepo)
	userService := service.NewUserService(logger, userRepo, hasher, tokens, orderService)
	documentService := service.NewDocumentService(logger, documentRepo, documents)

	authHandler := handler.NewAuthHandler(logger, userService)
	orderHandler := handler.NewOrderHandler(logger, orderService)
	productHandler := handler.NewProductHandler(logger, productService)
	userHandler := handler.NewUserHandler(logger, userService)
	documentHandler := handler.NewDocumentHandler(logger, documentService)
	handler.RegisterMetrics()

	app := app.New(logger, conf, tokens)

	app.SetPublicHandlers(authHandler, productHandler)
	app.SetHTTPHandlers(orderHandler, productHandler, userHandler, documentHandler)
	app.SetStarters(
		orderCache,
		dispatcher,
		cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity},
		adminBootstrapAdapter{svc: userService, admin: conf.Admin},
	)
	app.SetClosers(dispatcher)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func newMirrorSink(logger *slog.Logger, cfg config.Kafka) mirror.Sink {
	if !cfg.Enabled {
		logger.Info("order mirror disabled")
		return mirror.NopSink{}
	}
	logger.Info("order mirror enabled", slog.String("topic", cfg.Topic))
	return mirror.NewKafkaSink(cfg)
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}

type adminEnsurer interface {
	EnsureAdmin(ctx context.Context, email, password string) error
}

type adminBootstrapAdapter struct {
	svc   adminEnsurer
	admin config.Admin
}

func (a adminBootstrapAdapter) Start(ctx context.Context) error {
	if a.admin.Email == "" {
		return nil
	}
	return a.svc.EnsureAdmin(ctx, a.admin.Email, a.admin.Password)
}
