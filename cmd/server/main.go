package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/photoalbum/server/docs"
	"github.com/photoalbum/server/internal/config"
	"github.com/photoalbum/server/internal/handlers"
	"github.com/photoalbum/server/internal/observability"
	"github.com/photoalbum/server/internal/repository"
	"github.com/photoalbum/server/internal/services"
)

const serviceVersion = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize telemetry
	ctx := context.Background()
	telemetry, err := observability.Initialize(ctx, observability.NewConfig("photoalbum-server", serviceVersion))
	if err != nil {
		log.Printf("Warning: telemetry initialization failed: %v", err)
	}

	// Initialize database
	var db *sql.DB
	if cfg.UsePostgres() {
		log.Println("Using PostgreSQL database")
		db, err = repository.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL database: %v", err)
		}
	} else {
		log.Println("Using SQLite database")
		db, err = repository.NewSQLiteDB(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite database: %v", err)
		}
	}
	defer db.Close()

	// Initialize repositories
	collectionRepo := repository.NewCollectionRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	cascadeRepo, err := repository.NewCascadeRepository(db)
	if err != nil {
		log.Fatalf("Failed to initialize cascade repository: %v", err)
	}

	// Initialize services
	storageService, err := services.NewPhotoStorageService(
		cfg.PhotoStorage.BasePath,
		cfg.PhotoStorage.AllowedExtensions,
		cfg.PhotoStorage.MaxFileSizeMB,
	)
	if err != nil {
		log.Fatalf("Failed to initialize storage service: %v", err)
	}

	collectionService := services.NewCollectionService(collectionRepo, cascadeRepo, storageService)
	albumService := services.NewAlbumService(albumRepo, collectionRepo, photoRepo, cascadeRepo, storageService)
	photoService := services.NewPhotoService(photoRepo, cascadeRepo, storageService)
	locationService := services.NewLocationService(locationRepo, albumRepo, photoRepo)

	// Initialize handlers
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	albumHandler := handlers.NewAlbumHandler(albumService)
	photoHandler := handlers.NewPhotoHandler(photoService)
	locationHandler := handlers.NewLocationHandler(locationService)
	healthHandler := handlers.NewHealthHandler()

	httpMetrics, err := observability.NewHTTPMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize HTTP metrics: %v", err)
	}

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.TracingMiddleware("photoalbum-server"))
	r.Use(observability.MetricsMiddleware(httpMetrics))

	// Routes
	r.Get("/health", healthHandler.HealthCheck)
	r.Get("/api/health", healthHandler.HealthCheck)
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Route("/api/collections", func(r chi.Router) {
		r.Get("/", collectionHandler.List)
		r.Post("/", collectionHandler.Create)
		r.Get("/{id}", collectionHandler.Get)
		r.Put("/{id}", collectionHandler.Update)
		r.Patch("/{id}", collectionHandler.Update)
		r.Delete("/{id}", collectionHandler.Delete)
	})

	r.Route("/api/albums", func(r chi.Router) {
		r.Get("/", albumHandler.List)
		r.Post("/", albumHandler.Create)
		r.Get("/{id}", albumHandler.Get)
		r.Put("/{id}", albumHandler.Update)
		r.Patch("/{id}", albumHandler.Update)
		r.Delete("/{id}", albumHandler.Delete)
	})

	r.Route("/api/photos", func(r chi.Router) {
		r.Post("/upload", photoHandler.Upload)
		r.Get("/", photoHandler.List)
		r.Post("/", photoHandler.Create)
		r.Get("/{id}", photoHandler.Get)
		r.Put("/{id}", photoHandler.Update)
		r.Patch("/{id}", photoHandler.Update)
		r.Delete("/{id}", photoHandler.Delete)
	})

	r.Route("/api/locations", func(r chi.Router) {
		r.Get("/album/{id}", locationHandler.ByAlbum)
		r.Get("/photo/{id}", locationHandler.ByPhoto)
		r.Post("/", locationHandler.Create)
		r.Delete("/", locationHandler.Delete)
	})

	// Create server
	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Longer for uploads
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Photo Album Server starting on %s", cfg.ServerAddress)
		log.Printf("Upload path: %s", cfg.PhotoStorage.BasePath)
		log.Printf("Max file size: %dMB", cfg.PhotoStorage.MaxFileSizeMB)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			log.Printf("Warning: telemetry shutdown failed: %v", err)
		}
	}

	log.Println("Server stopped")
}
