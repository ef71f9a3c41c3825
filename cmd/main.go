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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/stayswap/stayswap/internal/facades"
	"github.com/stayswap/stayswap/internal/handlers"
	"github.com/stayswap/stayswap/internal/jwt"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/middlewares"
	"github.com/stayswap/stayswap/internal/repositories"
	"github.com/stayswap/stayswap/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title stayswap API
// @version 1.0.0
// @description Booking-swap marketplace: list bookings for exchange, submit booking or cash proposals, run auctions
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds application, PostgreSQL, Redis, Kafka, escrow and JWT settings.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	CacheTTLSecond    int

	KafkaBrokers string
	KafkaTopic   string

	EscrowBaseURL       string
	EscrowTimeoutSecond int

	JWTSecretKey string
	JWTExpSecond int
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key, defaultValue string) (int, error) {
		return strconv.Atoi(getEnv(key, defaultValue))
	}

	cfg := &config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		PGHost:     getEnv("POSTGRES_HOST", "localhost"),
		PGUser:     getEnv("POSTGRES_USER", "user"),
		PGPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:       getEnv("POSTGRES_DB", "database"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),
		KafkaTopic:   getEnv("KAFKA_SWAP_EVENTS_TOPIC", "swap-events"),

		EscrowBaseURL: getEnv("ESCROW_BASE_URL", "http://localhost:8090"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
	}

	var err error
	if cfg.PGPort, err = getEnvInt("POSTGRES_PORT", "5432"); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return nil, err
	}
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", "10"); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return nil, err
	}
	if cfg.CacheTTLSecond, err = getEnvInt("CACHE_TTL_SECOND", "30"); err != nil {
		return nil, err
	}
	if cfg.EscrowTimeoutSecond, err = getEnvInt("ESCROW_TIMEOUT_SECOND", "10"); err != nil {
		return nil, err
	}
	if cfg.JWTExpSecond, err = getEnvInt("JWT_EXP_SECOND", "3600"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for swap lifecycle events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBrokers),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Escrow service client
	escrow := facades.NewEscrowHTTPFacade(cfg.EscrowBaseURL, time.Duration(cfg.EscrowTimeoutSecond)*time.Second)

	// Initialize JWT service
	tokener := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	bookingReadRepo := repositories.NewBookingReadRepository(db)
	bookingWriteRepo := repositories.NewBookingWriteRepository(db, txGetter)
	swapReadRepo := repositories.NewSwapReadRepository(db, txGetter)
	swapWriteRepo := repositories.NewSwapWriteRepository(db, txGetter)
	proposalReadRepo := repositories.NewProposalReadRepository(db, txGetter)
	proposalWriteRepo := repositories.NewProposalWriteRepository(db, txGetter)
	targetReadRepo := repositories.NewTargetReadRepository(db, txGetter)
	targetWriteRepo := repositories.NewTargetWriteRepository(db, txGetter)
	swapContextRepo := repositories.NewSwapContextReadRepository(db, txGetter)
	cacheRepo := repositories.NewProposalCacheRepository(rdb, time.Duration(cfg.CacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	bookingService := services.NewBookingService(bookingReadRepo, bookingWriteRepo)
	swapService := services.NewSwapService(
		swapReadRepo, swapWriteRepo, bookingReadRepo, bookingWriteRepo,
		proposalReadRepo, proposalWriteRepo, targetWriteRepo, escrow, kafkaWriter,
	)
	proposalService := services.NewProposalService(
		swapReadRepo, swapWriteRepo, bookingReadRepo,
		proposalReadRepo, proposalWriteRepo, targetReadRepo, targetWriteRepo,
		swapContextRepo, cacheRepo, kafkaWriter,
	)
	auctionService := services.NewAuctionService(
		swapWriteRepo, bookingReadRepo, proposalReadRepo, proposalWriteRepo,
		targetWriteRepo, cacheRepo, kafkaWriter,
	)
	targetingService := services.NewTargetingService(
		swapReadRepo, swapWriteRepo, targetReadRepo, targetWriteRepo,
		proposalWriteRepo, proposalService, cacheRepo,
	)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	createBookingHandler := handlers.NewCreateBookingHandler(bookingService, tokener)
	listBookingsHandler := handlers.NewListBookingsHandler(bookingService, tokener)
	getBookingHandler := handlers.NewGetBookingHandler(bookingService, tokener)
	removeBookingHandler := handlers.NewRemoveBookingHandler(bookingService, tokener)
	createSwapHandler := handlers.NewCreateSwapHandler(swapService, tokener)
	getSwapHandler := handlers.NewGetSwapHandler(swapService, targetingService, auctionService, tokener)
	listSwapsHandler := handlers.NewListSwapsHandler(swapService, tokener)
	cancelSwapHandler := handlers.NewCancelSwapHandler(swapService, tokener)
	completeSwapHandler := handlers.NewCompleteSwapHandler(swapService, tokener)
	submitProposalHandler := handlers.NewSubmitProposalHandler(proposalService, tokener)
	acceptProposalHandler := handlers.NewAcceptProposalHandler(proposalService, tokener)
	rejectProposalHandler := handlers.NewRejectProposalHandler(proposalService, tokener)
	proposalDetailsHandler := handlers.NewProposalDetailsHandler(proposalService, tokener)
	selectWinnerHandler := handlers.NewSelectWinnerHandler(auctionService, tokener)
	rankProposalsHandler := handlers.NewRankProposalsHandler(auctionService, tokener)
	retargetHandler := handlers.NewRetargetHandler(targetingService, tokener)
	cancelTargetingHandler := handlers.NewCancelTargetingHandler(targetingService, tokener)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))

			r.Get("/bookings", listBookingsHandler)
			r.Get("/bookings/{id}", getBookingHandler)
			r.Get("/swaps", listSwapsHandler)
			r.Get("/proposals/{id}", proposalDetailsHandler)
			r.Get("/auctions/{id}/ranking", rankProposalsHandler)

			// Mutating routes run inside a request-scoped transaction.
			// Swap reads share it because lazy expiry and auto-selection
			// may write.
			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))

				r.Get("/swaps/{id}", getSwapHandler)
				r.Post("/bookings", createBookingHandler)
				r.Delete("/bookings/{id}", removeBookingHandler)
				r.Post("/swaps", createSwapHandler)
				r.Post("/swaps/{id}/cancel", cancelSwapHandler)
				r.Post("/swaps/{id}/complete", completeSwapHandler)
				r.Post("/swaps/{id}/proposals", submitProposalHandler)
				r.Post("/swaps/{id}/retarget", retargetHandler)
				r.Delete("/swaps/{id}/targets/{targetID}", cancelTargetingHandler)
				r.Post("/proposals/accept", acceptProposalHandler)
				r.Post("/proposals/reject", rejectProposalHandler)
				r.Post("/auctions/{id}/winner", selectWinnerHandler)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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
