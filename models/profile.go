package models

import "gorm.io/datatypes"

// ProfileRecordID is the fixed primary key of the one-and-only profile row.
// Writing through a well-known key means concurrent first writes collide on
// the primary key instead of creating a second row.
const ProfileRecordID uint = 1

// Profile is the site owner's profile. The table holds exactly one record.
type Profile struct {
	ID              uint              `json:"id" db:"id" gorm:"primaryKey"`
	ProfileImageURL *string           `json:"profileImageUrl" db:"profile_image_url" gorm:"type:text"`
	Description     *string           `json:"description" db:"description" gorm:"type:text"`
	CVURL           *string           `json:"cvUrl" db:"cv_url" gorm:"type:text"`
	ContactInfo     datatypes.JSONMap `json:"contactInfo" db:"contact_info" gorm:"type:jsonb"`
}
