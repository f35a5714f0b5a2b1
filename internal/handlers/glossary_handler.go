package handlers

import (
	"glossary-backend/internal/models"
	"glossary-backend/internal/services"
	"glossary-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GlossaryHandler struct {
	service services.GlossaryService
	logger  *logrus.Logger
}

func NewGlossaryHandler(service services.GlossaryService, logger *logrus.Logger) *GlossaryHandler {
	return &GlossaryHandler{
		service: service,
		logger:  logger,
	}
}

// ResolveGlossary godoc
// @Summary Resolve the glossary of a translation set
// @Description Returns the glossary attached to the translation set or, failing that, the one of the nearest parent project's set with the same slug and locale
// @Tags translation-sets
// @Produce json
// @Param id path int true "Translation set ID"
// @Success 200 {object} utils.StandardResponse "Resolved glossary, data is empty when there is none"
// @Failure 400 {object} utils.StandardResponse "Invalid translation set ID"
// @Failure 404 {object} utils.StandardResponse "Translation set not found"
// @Router /translation-sets/{id}/glossary [get]
func (h *GlossaryHandler) ResolveGlossary(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid translation set ID")
	}

	resolved, err := h.service.ResolveForTranslationSet(c.Context(), id)
	if err != nil {
		return respondWithError(c, h.logger, err, "Failed to resolve glossary")
	}

	if resolved == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, "No glossary found", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Glossary resolved successfully", resolved)
}

// CreateGlossary godoc
// @Summary Create a glossary
// @Description Attach a glossary to a translation set. A set can have at most one glossary.
// @Tags glossaries
// @Accept json
// @Produce json
// @Param glossary body CreateGlossaryRequest true "Glossary request object"
// @Success 201 {object} utils.StandardResponse "Glossary created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /glossaries [post]
func (h *GlossaryHandler) CreateGlossary(c *fiber.Ctx) error {
	var req CreateGlossaryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	glossary := &models.Glossary{
		TranslationSetID: req.TranslationSetID,
		Description:      req.Description,
	}
	if err := h.service.CreateGlossary(c.Context(), glossary); err != nil {
		return respondWithError(c, h.logger, err, "Failed to create glossary")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Glossary created successfully", glossary)
}

// GetGlossary godoc
// @Summary Get glossary by ID
// @Tags glossaries
// @Produce json
// @Param id path int true "Glossary ID"
// @Success 200 {object} utils.StandardResponse "Glossary details"
// @Failure 400 {object} utils.StandardResponse "Invalid glossary ID"
// @Failure 404 {object} utils.StandardResponse "Glossary not found"
// @Router /glossaries/{id} [get]
func (h *GlossaryHandler) GetGlossary(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid glossary ID")
	}

	glossary, err := h.service.GetGlossary(c.Context(), id)
	if err != nil {
		return respondWithError(c, h.logger, err, "Failed to get glossary")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Glossary retrieved successfully", glossary)
}

// UpdateGlossary godoc
// @Summary Update a glossary
// @Description Only the description can be changed
// @Tags glossaries
// @Accept json
// @Produce json
// @Param id path int true "Glossary ID"
// @Param glossary body UpdateGlossaryRequest true "Glossary update object"
// @Success 200 {object} utils.StandardResponse "Glossary updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Glossary not found"
// @Router /glossaries/{id} [put]
func (h *GlossaryHandler) UpdateGlossary(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid glossary ID")
	}

	var req UpdateGlossaryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	glossary, err := h.service.UpdateGlossary(c.Context(), id, req.Description)
	if err != nil {
		return respondWithError(c, h.logger, err, "Failed to update glossary")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Glossary updated successfully", glossary)
}

// DeleteGlossary godoc
// @Summary Delete a glossary
// @Description Delete a glossary together with all of its entries
// @Tags glossaries
// @Produce json
// @Param id path int true "Glossary ID"
// @Success 200 {object} utils.StandardResponse "Glossary deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid glossary ID"
// @Failure 404 {object} utils.StandardResponse "Glossary not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /glossaries/{id} [delete]
func (h *GlossaryHandler) DeleteGlossary(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid glossary ID")
	}

	if err := h.service.DeleteGlossary(c.Context(), id); err != nil {
		return respondWithError(c, h.logger, err, "Failed to delete glossary")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Glossary deleted successfully", nil)
}

// CopyEntries godoc
// @Summary Copy entries from another glossary
// @Description Appends a copy of every entry of the source glossary. Existing entries are kept and duplicates are not removed.
// @Tags glossaries
// @Accept json
// @Produce json
// @Param id path int true "Target glossary ID"
// @Param copy body CopyEntriesRequest true "Source glossary"
// @Success 200 {object} utils.StandardResponse{data=CopyEntriesResponse} "Entries copied"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Glossary not found"
// @Router /glossaries/{id}/copy [post]
func (h *GlossaryHandler) CopyEntries(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid glossary ID")
	}

	var req CopyEntriesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := services.ValidateStruct(&req); err != nil {
		return respondWithError(c, h.logger, err, "Invalid copy request")
	}

	copied, err := h.service.CopyEntries(c.Context(), req.SourceGlossaryID, id)
	if err != nil {
		return respondWithError(c, h.logger, err, "Failed to copy glossary entries")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Glossary entries copied successfully", CopyEntriesResponse{Copied: copied})
}

// ListEntries godoc
// @Summary List glossary entries
// @Tags glossary-entries
// @Produce json
// @Param id path int true "Glossary ID"
// @Success 200 {object} utils.StandardResponse "Glossary entries ordered by term"
// @Failure 404 {object} utils.StandardResponse "Glossary not found"
// @Router /glossaries/{id}/entries [get]
func (h *GlossaryHandler) ListEntries(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid glossary ID")
	}

	entries, err := h.service.ListEntries(c.Context(), id)
	if err != nil {
		return respondWithError(c, h.logger, err, "Failed to list glossary entries")
	}

	return utils.ListResponse(c, "Glossary entries retrieved successfully", entries)
}

// AddEntry godoc
// @Summary Add a glossary entry
// @Tags glossary-entries
// @Accept json
// @Produce json
// @Param id path int true "Glossary ID"
// @Param entry body GlossaryEntryRequest true "Glossary entry"
// @Success 201 {object} utils.StandardResponse "Entry created"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Glossary not found"
// @Router /glossaries/{id}/entries [post]
func (h *GlossaryHandler) AddEntry(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid glossary ID")
	}

	var req GlossaryEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	entry := &models.GlossaryEntry{
		Term:                 req.Term,
		Type:                 req.Type,
		Examples:             req.Examples,
		Comment:              req.Comment,
		SuggestedTranslation: req.SuggestedTranslation,
	}
	if err := h.service.AddEntry(c.Context(), id, entry); err != nil {
		return respondWithError(c, h.logger, err, "Failed to add glossary entry")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Glossary entry created successfully", entry)
}

// DeleteEntry godoc
// @Summary Delete a glossary entry
// @Tags glossary-entries
// @Produce json
// @Param id path int true "Glossary ID"
// @Param entryId path int true "Entry ID"
// @Success 200 {object} utils.StandardResponse "Entry deleted"
// @Failure 404 {object} utils.StandardResponse "Entry not found"
// @Router /glossaries/{id}/entries/{entryId} [delete]
func (h *GlossaryHandler) DeleteEntry(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid glossary ID")
	}
	entryID, ok := parseID(c, "entryId")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid entry ID")
	}

	if err := h.service.DeleteEntry(c.Context(), id, entryID); err != nil {
		return respondWithError(c, h.logger, err, "Failed to delete glossary entry")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Glossary entry deleted successfully", nil)
}

// ExportGlossary godoc
// @Summary Export a glossary as CSV
// @Description Renders the glossary to CSV, stores it in object storage and returns a presigned download URL
// @Tags glossaries
// @Produce json
// @Param id path int true "Glossary ID"
// @Success 200 {object} utils.StandardResponse{data=services.GlossaryExport} "Export created"
// @Failure 404 {object} utils.StandardResponse "Glossary not found"
// @Failure 500 {object} utils.StandardResponse "Export failed"
// @Router /glossaries/{id}/export [post]
func (h *GlossaryHandler) ExportGlossary(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid glossary ID")
	}

	export, err := h.service.ExportGlossary(c.Context(), id)
	if err != nil {
		return respondWithError(c, h.logger, err, "Failed to export glossary")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Glossary exported successfully", export)
}
