package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/conduit-core/docs"
	"github.com/sbilibin2017/conduit-core/internal/database"
	"github.com/sbilibin2017/conduit-core/internal/handlers"
	"github.com/sbilibin2017/conduit-core/internal/jwt"
	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/middlewares"
	"github.com/sbilibin2017/conduit-core/internal/repositories"
	"github.com/sbilibin2017/conduit-core/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title conduit-core API
// @version 1.0.0
// @description Social blogging service: users, profiles, articles, comments, and tags
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		logLevel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		logLevel,
		jwtSecret, jwtExp,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns
// all application, database, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, and HTTP server. It sets up
// routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := database.DSN(pgHost, pgPort, pgUser, pgPassword, pgDB)
	db, err := database.Connect(ctx, dsn, pgMaxOpenConns, pgMaxIdleConns)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Log.Errorw("migration error", "error", err)
		return err
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	followReadRepo := repositories.NewFollowReadRepository(db)
	followWriteRepo := repositories.NewFollowWriteRepository(db, txGetter)
	articleReadRepo := repositories.NewArticleReadRepository(db)
	articleWriteRepo := repositories.NewArticleWriteRepository(db, txGetter)
	favoriteReadRepo := repositories.NewFavoriteReadRepository(db)
	favoriteWriteRepo := repositories.NewFavoriteWriteRepository(db, txGetter)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	commentWriteRepo := repositories.NewCommentWriteRepository(db, txGetter)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	profileService := services.NewProfileService(userReadRepo, followReadRepo, followWriteRepo)
	articleService := services.NewArticleService(articleReadRepo, articleWriteRepo)
	favoriteService := services.NewFavoriteService(articleReadRepo, favoriteReadRepo, favoriteWriteRepo)
	commentService := services.NewCommentService(articleReadRepo, commentReadRepo, commentWriteRepo)

	// Setup router
	authMiddleware := middlewares.AuthMiddleware(tokens)
	softAuthMiddleware := middlewares.SoftAuthMiddleware(tokens)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/users", handlers.NewRegisterHandler(authService))
		r.Post("/users/login", handlers.NewLoginHandler(authService))

		// Optionally authenticated reads
		r.Group(func(r chi.Router) {
			r.Use(softAuthMiddleware)
			r.Get("/profiles/{username}", handlers.NewProfileHandler(profileService))
			r.Get("/articles", handlers.NewListArticlesHandler(articleService))
			r.Get("/articles/{slug}", handlers.NewGetArticleHandler(articleService))
			r.Get("/articles/{slug}/comments", handlers.NewListCommentsHandler(commentService))
			r.Get("/tags", handlers.NewTagsHandler(articleService))
		})

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/user", handlers.NewCurrentUserHandler(userService, tokens))
			r.Put("/user", handlers.NewUpdateUserHandler(userService, tokens))
			r.Post("/profiles/{username}/follow", handlers.NewFollowHandler(profileService))
			r.Delete("/profiles/{username}/follow", handlers.NewUnfollowHandler(profileService))
			r.Get("/articles/feed", handlers.NewFeedArticlesHandler(articleService))
			r.Post("/articles", handlers.NewCreateArticleHandler(articleService))
			r.Put("/articles/{slug}", handlers.NewUpdateArticleHandler(articleService))
			r.With(middlewares.TxMiddleware(db)).
				Delete("/articles/{slug}", handlers.NewDeleteArticleHandler(articleService))
			r.Post("/articles/{slug}/favorite", handlers.NewFavoriteArticleHandler(favoriteService))
			r.Delete("/articles/{slug}/favorite", handlers.NewUnfavoriteArticleHandler(favoriteService))
			r.Post("/articles/{slug}/comments", handlers.NewAddCommentHandler(commentService))
			r.Delete("/articles/{slug}/comments/{id}", handlers.NewDeleteCommentHandler(commentService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
