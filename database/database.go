package database

import (
	"gorm.io/gorm"

	"github.com/myazici/portfolio-site-backend/models"
)

type Database struct {
	profileRepo      *ProfileRepo
	projectRepo      *ProjectRepo
	projectImageRepo *ProjectImageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo:      NewProfileRepo(db),
		projectRepo:      NewProjectRepo(db),
		projectImageRepo: NewProjectImageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectImageRepo() *ProjectImageRepo {
	return d.projectImageRepo
}

// Migrate creates or updates the schema for every model, including the
// cascading foreign key from project_images to projects.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Project{},
		&models.ProjectImage{},
	)
}
