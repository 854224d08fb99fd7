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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/hivemind/internal/handlers"
	"github.com/sbilibin2017/hivemind/internal/jwt"
	"github.com/sbilibin2017/hivemind/internal/logger"
	"github.com/sbilibin2017/hivemind/internal/middlewares"
	"github.com/sbilibin2017/hivemind/internal/repositories"
	"github.com/sbilibin2017/hivemind/internal/services"
	"github.com/sbilibin2017/hivemind/internal/tx"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/hivemind/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title HiveMind API
// @version 1.0.0
// @description Idea board: post ideas, comment on them, and vote them up or down
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisRankingTTL,
		kafkaBrokers, kafkaVoteTopic,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisRankingTTL,
		kafkaBrokers, kafkaVoteTopic,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisRankingTTLSecond int,
	kafkaBrokers []string, kafkaVoteTopic string,
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

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if redisRankingTTLSecond, err = strconv.Atoi(getEnv("REDIS_RANKING_TTL_SECOND", "60")); err != nil {
		return
	}

	// Kafka config, publishing is disabled when no brokers are set
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			kafkaBrokers = append(kafkaBrokers, b)
		}
	}
	kafkaVoteTopic = getEnv("KAFKA_VOTE_TOPIC", "hivemind.votes")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// kafkaBatchTimeout bounds how long a published vote event waits for its batch to fill.
const kafkaBatchTimeout = 10 * time.Millisecond

// newKafkaWriter returns a writer for vote events keyed by idea id.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchSize:              1,
		BatchTimeout:           kafkaBatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisRankingTTLSecond int,
	kafkaBrokers []string, kafkaVoteTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}
	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}

	// Kafka writer for vote events
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := newKafkaWriter(kafkaBrokers, kafkaVoteTopic)
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing vote events to Kafka topic %s", kafkaVoteTopic)
	}

	// Initialize JWT service
	jwtService := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	ideaRepo := repositories.NewIdeaRepository(db, tx.FromContext)
	voteRepo := repositories.NewVoteRepository(db, tx.FromContext)
	commentRepo := repositories.NewCommentRepository(db, tx.FromContext)
	rankingCache := repositories.NewRankingCacheRepository(rdb, time.Duration(redisRankingTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService)
	ideaService := services.NewIdeaService(ideaRepo, rankingCache)
	commentService := services.NewCommentService(commentRepo, ideaRepo)
	voteService := services.NewVoteService(tx.NewManager(db), ideaRepo, voteRepo, kafkaWriter)
	policyService := services.NewPolicyService(ideaRepo, voteRepo, commentRepo)

	// Middlewares
	authMiddleware := middlewares.AuthMiddleware(jwtService)
	txMiddleware := middlewares.TxMiddleware(db)
	canModifyIdea := middlewares.PolicyMiddleware(jwtService, "id", policyService.CanUserModifyIdea)
	canModifyComment := middlewares.PolicyMiddleware(jwtService, "id", policyService.CanUserModifyComment)
	canVoteIdea := middlewares.PolicyMiddleware(jwtService, "ideaId", policyService.CanUserVoteIdea)
	canModifyVote := middlewares.PolicyMiddleware(jwtService, "ideaId", policyService.CanUserModifyVote)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/signup", handlers.NewRegisterHandler(authService))
		r.Post("/auth", handlers.NewLoginHandler(authService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/countIdeas", handlers.NewCountIdeasHandler(ideaService))
			r.Get("/allIdeas/{page}", handlers.NewAllIdeasHandler(ideaService))
			r.Get("/countControversialIdeas", handlers.NewCountControversialIdeasHandler(ideaService))
			r.Get("/controversialIdeas/{page}", handlers.NewControversialIdeasHandler(ideaService))
			r.Get("/countUnpopularMainstreamIdeas", handlers.NewCountUnpopularMainstreamIdeasHandler(ideaService))
			r.Get("/unpopularIdeas/{page}", handlers.NewUnpopularIdeasHandler(ideaService))
			r.Get("/mainstreamIdeas/{page}", handlers.NewMainstreamIdeasHandler(ideaService))

			r.Post("/ideas", handlers.NewCreateIdeaHandler(ideaService, jwtService))
			r.Get("/ideas/{id}", handlers.NewGetIdeaHandler(ideaService))
			r.With(txMiddleware, canModifyIdea).Put("/ideas/{id}", handlers.NewUpdateIdeaHandler(ideaService))
			r.With(txMiddleware, canModifyIdea).Delete("/ideas/{id}", handlers.NewDeleteIdeaHandler(ideaService))

			r.Get("/ideas/{id}/comments", handlers.NewListCommentsHandler(commentService))
			r.Post("/ideas/{id}/comments", handlers.NewCreateCommentHandler(commentService, jwtService))
			r.With(txMiddleware, canModifyComment).Put("/comments/{id}", handlers.NewUpdateCommentHandler(commentService))
			r.With(txMiddleware, canModifyComment).Delete("/comments/{id}", handlers.NewDeleteCommentHandler(commentService))

			r.With(canVoteIdea).Post("/upVotes/{ideaId}", handlers.NewUpvoteHandler(voteService, jwtService))
			r.With(canVoteIdea).Post("/downVotes/{ideaId}", handlers.NewDownvoteHandler(voteService, jwtService))
			r.With(canModifyVote).Delete("/upVotes/{ideaId}", handlers.NewRetractUpvoteHandler(voteService, jwtService))
			r.With(canModifyVote).Delete("/downVotes/{ideaId}", handlers.NewRetractDownvoteHandler(voteService, jwtService))
			r.Get("/votes", handlers.NewListVotesHandler(voteService, jwtService))
		})
	})

	r.Handle("/metrics", promhttp.Handler())
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
