package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-craft-gallery/docs"
	"github.com/sbilibin2017/gw-craft-gallery/internal/config"
	"github.com/sbilibin2017/gw-craft-gallery/internal/handlers"
	"github.com/sbilibin2017/gw-craft-gallery/internal/jwt"
	"github.com/sbilibin2017/gw-craft-gallery/internal/logger"
	"github.com/sbilibin2017/gw-craft-gallery/internal/middlewares"
	"github.com/sbilibin2017/gw-craft-gallery/internal/migrations"
	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
	"github.com/sbilibin2017/gw-craft-gallery/internal/probe"
	"github.com/sbilibin2017/gw-craft-gallery/internal/repositories"
	"github.com/sbilibin2017/gw-craft-gallery/internal/services"
	"github.com/sbilibin2017/gw-craft-gallery/internal/storage/minio"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const healthCheckInterval = 10 * time.Second

// @title gw-craft-gallery API
// @version 1.0.0
// @description Community gallery for paintings, flower arrangements and charm bracelets
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// userStore is what the gallery, asset and auth services need from the user repository.
type userStore interface {
	services.OwnerStore
	services.UserStore
	services.UploadCounter
}

// assetStore is what the gallery and asset services need from the asset repository.
type assetStore interface {
	services.AssetStore
	services.AssetCounter
}

// backend holds the repositories of the configured persistence backend.
type backend struct {
	creations services.CreationStore
	users     userStore
	assets    assetStore
	db        *sqlx.DB // nil on the file backend
	check     probe.CheckFunc
	close     func()
}

// openBackend opens the file store or connects to PostgreSQL and applies migrations.
func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	if cfg.Gallery.Backend == config.BackendFile {
		db, err := repositories.OpenJSONFileDB(cfg.Gallery.DataDir)
		if err != nil {
			return nil, err
		}
		return &backend{
			creations: repositories.NewFileCreationRepository(db),
			users:     repositories.NewFileUserRepository(db),
			assets:    repositories.NewFileAssetRepository(db),
			check: func(context.Context) error {
				_, err := os.Stat(cfg.Gallery.DataDir)
				return err
			},
			close: func() {},
		}, nil
	}

	logger.Log.Infow("connecting to PostgreSQL", "max_open_conns", cfg.Postgres.MaxOpenConns)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Up(db.DB); err != nil {
		db.Close()
		return nil, err
	}

	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	return &backend{
		creations: repositories.NewCreationRepository(db, txGetter),
		users:     repositories.NewUserRepository(db, txGetter),
		assets:    repositories.NewAssetRepository(db, txGetter),
		db:        db,
		check:     db.PingContext,
		close:     func() { db.Close() },
	}, nil
}

// app is the wired service graph served by the router.
type app struct {
	cfg     *config.Config
	tokens  *jwt.JWT
	revoked middlewares.RevocationChecker // nil without Redis
	db      *sqlx.DB                      // wraps /api in a transaction when set
	gallery *services.GalleryService
	assets  *services.AssetService
	auth    *services.AuthService
}

// newApp wires services onto the backend and the optional collaborators.
func newApp(cfg *config.Config, b *backend, sessions *repositories.SessionRepository, writer services.KafkaWriter, blobs services.BlobStorage) *app {
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWT.Secret), jwt.WithExpiration(cfg.JWT.Expiration))

	a := &app{
		cfg:     cfg,
		tokens:  tokens,
		db:      b.db,
		gallery: services.NewGalleryService(b.creations, b.users, b.assets, writer),
		assets:  services.NewAssetService(b.assets, b.users, blobs, writer),
	}

	var revoker services.TokenRevoker
	if sessions != nil {
		a.revoked = sessions
		revoker = sessions
	}
	a.auth = services.NewAuthService(b.users, tokens, revoker)
	return a
}

// newRouter mounts every route under /api plus the swagger UI.
func newRouter(a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.cfg.App.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		if a.db != nil {
			r.Use(middlewares.TxMiddleware(a.db))
		}

		sessionTTL := a.tokens.Expiration()
		r.Post("/login", handlers.NewLoginHandler(a.auth, sessionTTL))
		r.Post("/register", handlers.NewRegisterHandler(a.auth, sessionTTL))

		r.Get("/creations", handlers.NewAllCreationsHandler(a.gallery))
		r.Get("/creations/trending", handlers.NewTrendingHandler(a.gallery))
		r.Get("/stats", handlers.NewStatsHandler(a.gallery))
		r.Get("/stats/gallery", handlers.NewGalleryStatsHandler(a.gallery))
		r.Get("/users/{id}", handlers.NewUserProfileHandler(a.gallery))

		for _, kind := range models.Kinds {
			r.Get("/"+kind.Collection(), handlers.NewListCreationsHandler(kind, a.gallery))
			r.Get("/"+kind.Collection()+"/{id}", handlers.NewGetCreationHandler(kind, a.gallery))
		}
		for _, kind := range models.AssetKinds {
			r.Get("/"+kind.Collection(), handlers.NewListAssetsHandler(kind, a.assets))
		}

		// Protected routes
		r.Group(func(r chi.Router) {
			if a.cfg.App.RateLimit > 0 {
				r.Use(httprate.LimitByIP(a.cfg.App.RateLimit, time.Minute))
			}
			r.Use(middlewares.AuthMiddleware(a.tokens, a.revoked))

			r.Post("/logout", handlers.NewLogoutHandler(a.auth, a.tokens))
			r.Post("/creations/{id}/like", handlers.NewLikeCreationHandler(a.gallery, a.tokens))

			for _, kind := range models.Kinds {
				r.Post("/"+kind.Collection(), handlers.NewInsertCreationHandler(kind, a.gallery, a.tokens))
				r.Delete("/"+kind.Collection()+"/{id}", handlers.NewDeleteCreationHandler(kind, a.gallery, a.tokens))
			}
			for _, kind := range models.AssetKinds {
				r.Post("/"+kind.Collection(), handlers.NewUploadAssetHandler(kind, a.assets, a.tokens, a.cfg.Gallery.MaxUploadBytes))
			}
		})
	})

	addr := net.JoinHostPort(a.cfg.App.Host, a.cfg.App.Port)
	docs.SwaggerInfo.Host = addr
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", addr)),
	))

	return r
}

// run initializes the logger, the backend, optional Redis, Kafka and MinIO clients,
// the health probe and the HTTP server. It blocks until ctx is done or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	b, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.close()
	logger.Log.Infow("gallery backend ready", "backend", cfg.Gallery.Backend)

	checks := map[string]probe.CheckFunc{"store": b.check}

	var sessions *repositories.SessionRepository
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		sessions = repositories.NewSessionRepository(rdb)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	} else {
		logger.Log.Warn("Redis not configured, logout will not revoke tokens")
	}

	var writer services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		writer = kw
		if b.db != nil {
			writer = services.NewTxKafkaWriter(kw, middlewares.AfterCommit)
		}
	}

	var blobs services.BlobStorage
	if cfg.Storage.Endpoint != "" {
		mc, err := minio.Connect(ctx, minio.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			return err
		}
		blobs = mc
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.App.Host, cfg.App.Port),
		Handler:           newRouter(newApp(cfg, b, sessions, writer, blobs)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if cfg.Health.Port != "" {
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.App.Host, cfg.Health.Port))
		if err != nil {
			return fmt.Errorf("health probe listen failed: %w", err)
		}
		hs := probe.New(checks)
		defer hs.Stop()
		go hs.Watch(ctxShutdown, healthCheckInterval)
		go func() {
			logger.Log.Infof("gRPC health probe listening on %s", lis.Addr())
			if err := hs.Serve(lis); err != nil {
				errChan <- err
			}
		}()
	}

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
