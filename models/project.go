package models

// Project is a single portfolio entry with its gallery images.
type Project struct {
	ID          uint           `json:"id" db:"id" gorm:"primaryKey"`
	Title       string         `json:"title" db:"title" gorm:"type:text;not null"`
	Description *string        `json:"description" db:"description" gorm:"type:text"`
	Images      []ProjectImage `json:"images" gorm:"foreignKey:ProjectID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
