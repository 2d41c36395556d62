package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"founderhub/internal/auth"
	"founderhub/internal/config"
	"founderhub/internal/database"
	"founderhub/internal/database/migration"
	handlers "founderhub/internal/http/handler"
	"founderhub/internal/http/middleware"
	"founderhub/internal/logging"
	"founderhub/internal/otel"
	"founderhub/internal/repository/postgres"
	"founderhub/internal/service"
	"founderhub/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title FounderHub API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// .env is auto-loaded if present; real environment variables win.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Location())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.Tracing, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		return err
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		return fmt.Errorf("init object storage: %w", err)
	}

	verifier, err := auth.NewJWKSVerifier(ctx, cfg.Auth)
	if err != nil {
		return err
	}

	founderRepo := postgres.NewFounderPostgres(db)
	startupRepo := postgres.NewStartupPostgres(db)
	skillRepo := postgres.NewSkillPostgres(db)
	hobbyRepo := postgres.NewHobbyPostgres(db)
	helpRepo := postgres.NewHelpRequestPostgres(db)
	eventRepo := postgres.NewEventPostgres(db)

	services := handlers.Services{
		DB:           db,
		Store:        objStore,
		Verifier:     verifier,
		Location:     cfg.Location(),
		Founders:     service.NewFounderService(founderRepo, log),
		Startups:     service.NewStartupService(startupRepo, log),
		Skills:       service.NewSkillService(skillRepo),
		Hobbies:      service.NewHobbyService(hobbyRepo),
		HelpRequests: service.NewHelpRequestService(helpRepo, founderRepo, log),
		Events:       service.NewEventService(eventRepo),
		Images:       service.NewImageService(objStore, int64(cfg.MaxUploadMB)<<20, cfg.MinIO.PresignTTL()),
		Imports:      service.NewImportService(founderRepo, startupRepo, skillRepo, log),
		Dashboard:    service.NewDashboardService(founderRepo, startupRepo, skillRepo, hobbyRepo, helpRepo, eventRepo),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	services.Gatherer = reg

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(log),
		BodyLimit:    (cfg.MaxUploadMB + 1) << 20,
	})

	app.Use(otelfiber.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Authorization, Content-Type, X-Request-ID",
	}))
	// RequestID must run before Logger so every log line carries the id.
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, services)

	app.Get("/swagger/*", handlers.SwaggerDocs(cfg.AppHost))

	addr := ":" + cfg.Port
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server_started", zap.String("addr", addr))
		return app.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("server_stopping")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})
	return g.Wait()
}
