package models

// ProjectImage is one uploaded gallery image owned by a project. Rows are
// removed by the storage-layer cascade when the owning project is deleted.
type ProjectImage struct {
	ID        uint   `json:"id" db:"id" gorm:"primaryKey"`
	ImageURL  string `json:"imageUrl" db:"image_url" gorm:"type:text;not null"`
	ProjectID uint   `json:"projectId" db:"project_id" gorm:"index;not null"`
}
