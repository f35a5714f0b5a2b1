package handlers

type CreateProjectRequest struct {
	Name            string `json:"name" example:"WordPress"`
	Slug            string `json:"slug" example:"wp"`
	ParentProjectID *uint  `json:"parent_project_id,omitempty" example:"1"`
}

type CreateTranslationSetRequest struct {
	Name      string `json:"name" example:"German"`
	ProjectID uint   `json:"project_id" example:"1"`
	Slug      string `json:"slug" example:"default"`
	Locale    string `json:"locale" example:"de"`
}

type CreateGlossaryRequest struct {
	TranslationSetID uint   `json:"translation_set_id" example:"1"`
	Description      string `json:"description" example:"Core WordPress terminology"`
}

type UpdateGlossaryRequest struct {
	Description string `json:"description" example:"Core WordPress terminology"`
}

type CopyEntriesRequest struct {
	SourceGlossaryID uint `json:"source_glossary_id" validate:"required" example:"2"`
}

type CopyEntriesResponse struct {
	Copied int64 `json:"copied" example:"12"`
}

type GlossaryEntryRequest struct {
	Term                 string `json:"term" example:"post"`
	Type                 string `json:"type" example:"noun"`
	Examples             string `json:"examples" example:"Publish a post"`
	Comment              string `json:"comment" example:"Blog post, not mail"`
	SuggestedTranslation string `json:"suggested_translation" example:"Beitrag"`
}
