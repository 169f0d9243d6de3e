package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/myazici/portfolio-site-backend/auth"
	"github.com/myazici/portfolio-site-backend/config"
	"github.com/myazici/portfolio-site-backend/database"
	"github.com/myazici/portfolio-site-backend/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database) (Server, error) {
	c := config.New()

	// Ensure correct port is set
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	gate := auth.NewGate(
		config.GetString(c, "ADMIN_PASSWORD", ""),
		config.GetString(c, "ADMIN_PASSWORD_HASH", ""),
		[]byte(config.GetString(c, "AUTH_SECRET", "")),
		time.Duration(config.GetInt(c, "SESSION_TTL_HOURS", 168))*time.Hour,
	)

	// The media store and mailer are optional at startup; endpoints that
	// need them return a configuration error instead.
	var mediaStore services.MediaStore
	if store, err := services.NewCloudinaryStore(
		config.GetString(c, "CLOUDINARY_CLOUD_NAME", ""),
		config.GetString(c, "CLOUDINARY_API_KEY", ""),
		config.GetString(c, "CLOUDINARY_API_SECRET", ""),
	); err != nil {
		log.Warn().Err(err).Msg("Media store disabled")
	} else {
		mediaStore = store
	}

	var mailer services.Mailer
	if m, err := services.NewResendMailer(
		config.GetString(c, "RESEND_API_KEY", ""),
		config.GetString(c, "RESEND_FROM_EMAIL", ""),
	); err != nil {
		log.Warn().Err(err).Msg("Mailer disabled")
	} else {
		mailer = m
	}

	router := newRouter(database,
		withConfig(c),
		withStartupTime(startupTime),
		withGate(gate),
		withPolicy(auth.NewAdminPolicy()),
		withMediaStore(mediaStore),
		withMailer(mailer),
	)

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
	gate        *auth.Gate
	policy      auth.Policy
	mediaStore  services.MediaStore
	mailer      services.Mailer
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withGate(gate *auth.Gate) func(*router) {
	return func(r *router) {
		r.gate = gate
	}
}

func withPolicy(policy auth.Policy) func(*router) {
	return func(r *router) {
		r.policy = policy
	}
}

func withMediaStore(store services.MediaStore) func(*router) {
	return func(r *router) {
		r.mediaStore = store
	}
}

func withMailer(mailer services.Mailer) func(*router) {
	return func(r *router) {
		r.mailer = mailer
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	if router.policy == nil {
		router.policy = auth.NewAdminPolicy()
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(MetricsMiddleware)

	// Apply CORS middleware
	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize all handlers
	handlers := initializeHandlers(database, &router)

	// Initialize auth middleware
	authMiddleware := newAuthMiddleware(router.gate, router.policy)

	// Setup all route types
	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
