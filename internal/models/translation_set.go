package models

import "time"

type TranslationSet struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name      string    `gorm:"not null" json:"name" validate:"required,max=255" example:"German"`
	ProjectID uint      `gorm:"not null;uniqueIndex:idx_translation_set_project_slug_locale" json:"project_id" validate:"required" example:"1"`
	Slug      string    `gorm:"not null;size:255;uniqueIndex:idx_translation_set_project_slug_locale" json:"slug" validate:"required,max=255" example:"default"`
	Locale    string    `gorm:"not null;size:10;uniqueIndex:idx_translation_set_project_slug_locale" json:"locale" validate:"required,max=10" example:"de"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TranslationSet) TableName() string {
	return "translation_sets"
}
