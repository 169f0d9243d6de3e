package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/myazici/portfolio-site-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// Find returns the singleton profile row, or nil if it has not been created yet.
func (r *ProfileRepo) Find() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, models.ProfileRecordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert writes the profile under its fixed key. Concurrent first writes
// collide on the primary key and resolve to a single row instead of two.
func (r *ProfileRepo) Upsert(profile *models.Profile) error {
	profile.ID = models.ProfileRecordID
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(profile).Error
}
