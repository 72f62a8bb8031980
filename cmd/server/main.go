package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"tulika/internal/config"
	"tulika/internal/domain/services"
	"tulika/internal/handler"
	"tulika/internal/middleware"
	"tulika/internal/repository/postgres"
	serviceAuth "tulika/internal/service/auth"
	serviceNotes "tulika/internal/service/notes"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"delete_cascade", cfg.DeleteCascade,
	)

	ctx := context.Background()

	// Apply schema migrations before opening the pool
	if err := postgres.RunMigrations(ctx, cfg.DatabaseURL, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create pgx connection pool
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	itemRepo := postgres.NewItemRepository(repoConfig)
	userRepo := postgres.NewUserRepository(repoConfig)
	sessionRepo := postgres.NewSessionRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create services
	cascade := services.ShallowCascade
	if cfg.DeleteCascade == "recursive" {
		cascade = services.RecursiveCascade
	}
	noteService := serviceNotes.NewService(itemRepo, txManager, cascade, logger)
	authService := serviceAuth.NewService(userRepo, sessionRepo, cfg.SessionTTL, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	notesHandler := handler.NewNotesHandler(noteService, logger)

	logger.Info("services initialized")

	// Create HTTP router
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.Health)

	// Identity/session group (open)
	mux.HandleFunc("/api/auth", authHandler.Handle)

	// Note store group (requires an active session)
	requireSession := middleware.RequireSession(authService)
	mux.Handle("/api/notes", requireSession(http.HandlerFunc(notesHandler.Handle)))

	// Build middleware chain. Order: CORS → Recovery → Routes
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
