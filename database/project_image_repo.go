package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/myazici/portfolio-site-backend/models"
)

type ProjectImageRepo struct {
	db *gorm.DB
}

func NewProjectImageRepo(db *gorm.DB) *ProjectImageRepo {
	return &ProjectImageRepo{db}
}

// FindByID returns a project image by its ID, or nil if it does not exist.
func (r *ProjectImageRepo) FindByID(id uint) (*models.ProjectImage, error) {
	var image models.ProjectImage
	err := r.db.First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Add inserts a new project image into the database
func (r *ProjectImageRepo) Add(image *models.ProjectImage) error {
	return r.db.Create(image).Error
}

// Delete removes an image row only; the backing media object stays where it is.
func (r *ProjectImageRepo) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.ProjectImage{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
