package api

import (
	"github.com/myazici/portfolio-site-backend/config"
	"github.com/myazici/portfolio-site-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, rt *router) *routeHandlers {
	secureCookies := config.GetBool(rt.config, "SECURE_COOKIES", true)

	return &routeHandlers{
		authHandler:         newAuthHandler(rt.gate, secureCookies),
		profileHandler:      newProfileHandler(database.ProfileRepo()),
		projectHandler:      newProjectHandler(database.ProjectRepo(), database.ProjectImageRepo()),
		projectImageHandler: newProjectImageHandler(database.ProjectImageRepo()),
		uploadHandler:       newUploadHandler(rt.mediaStore, database.ProfileRepo(), database.ProjectRepo(), database.ProjectImageRepo()),
		contactHandler: newContactHandler(
			rt.mailer,
			config.GetString(rt.config, "CONTACT_TO_EMAIL", ""),
		),
		cvHandler: newCVHandler(
			database.ProfileRepo(),
			config.GetString(rt.config, "CLOUDINARY_API_KEY", ""),
			config.GetString(rt.config, "CLOUDINARY_API_SECRET", ""),
		),
		healthHandler: newHealthHandler(rt.startupTime),
	}
}
