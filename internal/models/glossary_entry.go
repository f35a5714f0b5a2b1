package models

import "time"

// Parts of speech a glossary entry can be tagged with.
var PartsOfSpeech = []string{
	"noun",
	"verb",
	"adjective",
	"adverb",
	"interjection",
	"conjunction",
	"preposition",
	"pronoun",
	"expression",
	"abbreviation",
}

type GlossaryEntry struct {
	ID                   uint      `gorm:"primaryKey" json:"id" example:"1"`
	GlossaryID           uint      `gorm:"index;not null" json:"glossary_id" example:"1"`
	Term                 string    `gorm:"not null;index" json:"term" validate:"required,max=255" example:"post"`
	Type                 string    `gorm:"size:32" json:"type" validate:"omitempty,part_of_speech" example:"noun"`
	Examples             string    `gorm:"type:text" json:"examples" example:"Publish a post"`
	Comment              string    `gorm:"type:text" json:"comment" example:"Blog post, not mail"`
	SuggestedTranslation string    `gorm:"type:text" json:"suggested_translation" example:"Beitrag"`
	LastUpdate           time.Time `gorm:"column:last_update" json:"last_update"`
}

func (GlossaryEntry) TableName() string {
	return "glossary_entries"
}
