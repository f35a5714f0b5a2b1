package models

import "time"

type Glossary struct {
	ID               uint      `gorm:"primaryKey" json:"id" example:"1"`
	TranslationSetID uint      `gorm:"uniqueIndex;not null" json:"translation_set_id" validate:"required" example:"1"`
	Description      string    `gorm:"type:text" json:"description" example:"Core WordPress terminology"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Glossary) TableName() string {
	return "glossaries"
}

// ResolvedGlossary is a glossary together with the translation set it was found on.
// Inherited is true when the glossary belongs to an ancestor project.
type ResolvedGlossary struct {
	Glossary       *Glossary       `json:"glossary"`
	TranslationSet *TranslationSet `json:"translation_set"`
	Inherited      bool            `json:"inherited" example:"false"`
}
