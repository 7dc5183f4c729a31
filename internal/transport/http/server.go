package http

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/liyedanpdx/WEB602-Project-2/internal/config"
	"github.com/liyedanpdx/WEB602-Project-2/internal/database"
	"github.com/liyedanpdx/WEB602-Project-2/internal/handler"
	"github.com/liyedanpdx/WEB602-Project-2/internal/logging"
	appredis "github.com/liyedanpdx/WEB602-Project-2/internal/redis"
	"github.com/liyedanpdx/WEB602-Project-2/internal/repository"
	"github.com/liyedanpdx/WEB602-Project-2/internal/service"
	"github.com/liyedanpdx/WEB602-Project-2/internal/session"
	appmw "github.com/liyedanpdx/WEB602-Project-2/internal/transport/http/middleware"
	"github.com/liyedanpdx/WEB602-Project-2/internal/view"
)

// Run wires the application together and serves until interrupted.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.SessionSecret == "" {
		return errors.New("SESSION_SECRET must be set")
	}

	logger := logging.New(cfg.Environment)

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		return err
	}
	logger.Info("connected to database")

	// Redis backs sessions and rate limiting. Without it, sessions fall
	// back to process memory (logins die with the process, matching the
	// original deployment) and the rate limiter fails open.
	var rdb *appredis.Client
	var sessionStore session.Store = session.NewMemoryStore()
	if cfg.RedisURL != "" {
		rdb, err = appredis.NewClient(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		defer rdb.Close()
		if err := rdb.Ping(ctx); err != nil {
			return err
		}
		sessionStore = session.NewRedisStore(rdb.Client)
		logger.Info("connected to redis")
	} else {
		logger.Warn("REDIS_URL not set; using in-memory sessions and no rate limiting")
	}

	useTLS := cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""
	sessions := session.NewManager(sessionStore, cfg.SessionSecret, cfg.SessionMaxAge, useTLS)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	authService := service.NewAuthService(userRepo, service.NewBcryptHasher(), sessions, logger)
	postService := service.NewPostService(postRepo, userRepo, logger)

	renderer, err := view.NewRenderer(logger, cfg.Environment == "development")
	if err != nil {
		return fmt.Errorf("failed to build renderer: %w", err)
	}

	routerCfg := RouterConfig{
		AuthHandler:  handler.NewAuthHandler(authService, renderer, logger),
		PostHandler:  handler.NewPostHandler(postService, renderer, logger),
		PagesHandler: handler.NewPagesHandler(authService, renderer, logger),
		AuthService:  authService,
		RateLimits: map[string]appmw.Policy{
			RateRegister: {Max: cfg.RegisterRateMax, Window: cfg.RegisterRateWindow},
			RateLogin:    {Max: cfg.LoginRateMax, Window: cfg.LoginRateWindow},
		},
		StaticDir: "public",
		Logger:    logger,
	}
	if rdb != nil {
		routerCfg.Redis = rdb.Client
	}

	server := &stdhttp.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      NewRouter(routerCfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", server.Addr).Info("server listening")
		var serveErr error
		if useTLS {
			serveErr = server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			serveErr = server.ListenAndServe()
		}
		if serveErr != nil && serveErr != stdhttp.ErrServerClosed {
			errCh <- serveErr
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
