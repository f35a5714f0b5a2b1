package models

import "time"

type Project struct {
	ID              uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name            string    `gorm:"not null" json:"name" validate:"required,max=255" example:"WordPress"`
	Slug            string    `gorm:"not null;index" json:"slug" validate:"required,max=255" example:"wp"`
	Path            string    `gorm:"not null;uniqueIndex" json:"path" example:"wp/dev"`
	ParentProjectID *uint     `gorm:"index" json:"parent_project_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// HasParent reports whether the project sits below another project.
func (p *Project) HasParent() bool {
	return p.ParentProjectID != nil && *p.ParentProjectID != 0
}
