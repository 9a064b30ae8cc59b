package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"wordnest/internal/config"
	"wordnest/internal/handlers"
	"wordnest/internal/middleware"
	"wordnest/internal/model"
	"wordnest/internal/repository"
	"wordnest/internal/service"
	"wordnest/internal/tts"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the configured one is built.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if cfg.Database.AutoMigrate {
		slog.Info("Running schema auto-migration")
		if err := db.AutoMigrate(
			&model.User{},
			&model.Collection{},
			&model.VocabularyEntry{},
			&model.ProgressRecord{},
			&model.QuizResult{},
		); err != nil {
			slog.Error("Error running auto-migration", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// Dependency injection
	userRepo := repository.NewGormUserRepository()
	collectionRepo := repository.NewGormCollectionRepository()
	vocabRepo := repository.NewGormVocabularyRepository()
	progressRepo := repository.NewGormProgressRepository()
	resultRepo := repository.NewGormQuizResultRepository()

	authService := service.NewAuthService(db, userRepo, cfg)
	userService := service.NewUserService(db, userRepo)
	collectionService := service.NewCollectionService(db, collectionRepo, vocabRepo)
	vocabService := service.NewVocabularyService(db, vocabRepo, collectionRepo, cfg)
	studyService := service.NewStudyService(db, vocabRepo, collectionRepo)
	resultService := service.NewResultService(db, resultRepo, progressRepo, cfg)
	dashboardService := service.NewDashboardService(db, vocabRepo, collectionRepo, resultRepo, cfg)

	ttsClient := tts.NewClient(cfg.TTS.Endpoint, time.Duration(cfg.TTS.TimeoutSeconds)*time.Second)

	authHandler := handlers.NewAuthHandler(authService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	collectionHandler := handlers.NewCollectionHandler(collectionService, logger)
	vocabHandler := handlers.NewVocabularyHandler(vocabService, logger)
	studyHandler := handlers.NewStudyHandler(studyService, logger)
	resultHandler := handlers.NewResultHandler(resultService, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)
	speechHandler := handlers.NewSpeechHandler(ttsClient, logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(cfg))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", userHandler.GetMe)
				r.Put("/me", userHandler.PutMe)
			})

			r.Route("/collections", func(r chi.Router) {
				r.Post("/", collectionHandler.PostCollection)
				r.Get("/", collectionHandler.GetCollections)
				r.Get("/{collection_id}", collectionHandler.GetCollection)
				r.Put("/{collection_id}", collectionHandler.PutCollection)
				r.Delete("/{collection_id}", collectionHandler.DeleteCollection)
				r.Get("/{collection_id}/vocabulary/words", vocabHandler.GetEntriesByCollection)
			})

			r.Route("/vocabulary", func(r chi.Router) {
				r.Post("/", vocabHandler.PostEntry)
				r.Get("/", vocabHandler.GetEntries)
				r.Get("/{vocab_id}", vocabHandler.GetEntry)
				r.Put("/{vocab_id}", vocabHandler.PutEntry)
				r.Delete("/{vocab_id}", vocabHandler.DeleteEntry)
				r.Patch("/{vocab_id}/mastered", vocabHandler.PatchMastered)
				r.Post("/import", vocabHandler.ImportEntries)
				r.Post("/import/preview", vocabHandler.PreviewImport)
			})

			r.Get("/study/session", studyHandler.GetSession)

			r.Route("/quiz-results", func(r chi.Router) {
				r.Post("/", resultHandler.PostResult)
				r.Get("/", resultHandler.GetResults)
			})

			r.Get("/progress", resultHandler.GetProgress)
			r.Get("/dashboard/stats", dashboardHandler.GetStats)
			r.Post("/speech", speechHandler.Synthesize)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}
