package routes

import (
	"glossary-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, catalogHandler *handlers.CatalogHandler, glossaryHandler *handlers.GlossaryHandler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	projects := v1.Group("/projects")
	{
		projects.Post("/", catalogHandler.CreateProject)
		projects.Get("/:id", catalogHandler.GetProject)
	}

	sets := v1.Group("/translation-sets")
	{
		sets.Post("/", catalogHandler.CreateTranslationSet)
		sets.Get("/:id", catalogHandler.GetTranslationSet)
		sets.Get("/:id/glossary", glossaryHandler.ResolveGlossary)
	}

	glossaries := v1.Group("/glossaries")
	{
		glossaries.Post("/", glossaryHandler.CreateGlossary)
		glossaries.Get("/:id", glossaryHandler.GetGlossary)
		glossaries.Put("/:id", glossaryHandler.UpdateGlossary)
		glossaries.Delete("/:id", glossaryHandler.DeleteGlossary)
		glossaries.Post("/:id/copy", glossaryHandler.CopyEntries)
		glossaries.Post("/:id/export", glossaryHandler.ExportGlossary)
	}

	entries := glossaries.Group("/:id/entries")
	{
		entries.Get("/", glossaryHandler.ListEntries)
		entries.Post("/", glossaryHandler.AddEntry)
		entries.Delete("/:entryId", glossaryHandler.DeleteEntry)
	}
}
