package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes wires the public surface and the session-gated admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/healthz", handlers.healthHandler.health())
		r.Get("/public/projects", handlers.projectHandler.getPublicProjects())
		r.Get("/public/profile", handlers.profileHandler.getPublicProfile())
		r.Get("/download-cv", handlers.cvHandler.downloadCV())
		r.Post("/contact", handlers.contactHandler.sendContactMessage())

		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/logout", handlers.authHandler.logout())
	})

	r.Method("GET", "/metrics", promhttp.Handler())

	// Admin routes: the session check runs before any handler validation
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		// Project Image Handler endpoints
		r.Delete("/project-image/{imageID}", handlers.projectImageHandler.deleteProjectImage())

		// Profile Handler endpoints
		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Put("/profile", handlers.profileHandler.upsertProfile())

		// Upload Handler endpoints
		r.Post("/upload/profile-pic", handlers.uploadHandler.uploadProfilePicture())
		r.Post("/upload/cv", handlers.uploadHandler.uploadCV())
		r.Post("/upload/project-image", handlers.uploadHandler.uploadProjectImages())
	})
}
