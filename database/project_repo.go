package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/myazici/portfolio-site-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// projectImageJoinRow is one row of the projects/project_images left join.
// The image columns are pointers because a project with no images yields a
// single row with a NULL image side.
type projectImageJoinRow struct {
	ProjectID   uint
	Title       string
	Description *string
	ImageID     *uint
	ImageURL    *string
}

// FindAllWithImages returns every project with its images in one join query,
// ordered newest project first with images in attachment order. Grouping is a
// single order-preserving pass over the joined rows, so the listing never
// degenerates into a query per project.
func (r *ProjectRepo) FindAllWithImages() ([]*models.Project, error) {
	rows, err := r.joinRows(nil)
	if err != nil {
		return nil, err
	}
	return groupJoinRows(rows), nil
}

// FindWithImages returns a single project with its images, or nil if no
// project with the given id exists.
func (r *ProjectRepo) FindWithImages(id uint) (*models.Project, error) {
	rows, err := r.joinRows(&id)
	if err != nil {
		return nil, err
	}
	projects := groupJoinRows(rows)
	if len(projects) == 0 {
		return nil, nil
	}
	return projects[0], nil
}

func (r *ProjectRepo) joinRows(projectID *uint) ([]projectImageJoinRow, error) {
	query := r.db.Table("projects").
		Select("projects.id AS project_id, projects.title, projects.description, project_images.id AS image_id, project_images.image_url AS image_url").
		Joins("LEFT JOIN project_images ON project_images.project_id = projects.id").
		Order("projects.id DESC, project_images.id ASC")
	if projectID != nil {
		query = query.Where("projects.id = ?", *projectID)
	}

	var rows []projectImageJoinRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// groupJoinRows folds joined rows into nested projects, preserving the row
// order for both projects and images.
func groupJoinRows(rows []projectImageJoinRow) []*models.Project {
	projects := make([]*models.Project, 0, len(rows))
	byID := make(map[uint]*models.Project, len(rows))

	for _, row := range rows {
		project, seen := byID[row.ProjectID]
		if !seen {
			project = &models.Project{
				ID:          row.ProjectID,
				Title:       row.Title,
				Description: row.Description,
				Images:      []models.ProjectImage{},
			}
			byID[row.ProjectID] = project
			projects = append(projects, project)
		}
		if row.ImageID != nil && row.ImageURL != nil {
			project.Images = append(project.Images, models.ProjectImage{
				ID:        *row.ImageID,
				ImageURL:  *row.ImageURL,
				ProjectID: row.ProjectID,
			})
		}
	}
	return projects
}

// Exists reports whether a project with the given id exists.
func (r *ProjectRepo) Exists(id uint) (bool, error) {
	var project models.Project
	err := r.db.Select("id").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// UpdateFields applies a partial update. Only the columns in fields are
// touched; callers decide which fields were actually present in the request.
func (r *ProjectRepo) UpdateFields(id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a project row. The project_images foreign key cascade
// removes owned images at the storage layer.
func (r *ProjectRepo) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
