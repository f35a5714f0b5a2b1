package handlers

import (
	"glossary-backend/internal/models"
	"glossary-backend/internal/services"
	"glossary-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewCatalogHandler(service services.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// CreateProject godoc
// @Summary Create a project
// @Description Create a project, optionally below a parent project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body CreateProjectRequest true "Project request object"
// @Success 201 {object} utils.StandardResponse "Project created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /projects [post]
func (h *CatalogHandler) CreateProject(c *fiber.Ctx) error {
	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	project := &models.Project{
		Name:            req.Name,
		Slug:            req.Slug,
		ParentProjectID: req.ParentProjectID,
	}
	if err := h.service.CreateProject(c.Context(), project); err != nil {
		return respondWithError(c, h.logger, err, "Failed to create project")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Project created successfully", project)
}

// GetProject godoc
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} utils.StandardResponse "Project details"
// @Failure 400 {object} utils.StandardResponse "Invalid project ID"
// @Failure 404 {object} utils.StandardResponse "Project not found"
// @Router /projects/{id} [get]
func (h *CatalogHandler) GetProject(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid project ID")
	}

	project, err := h.service.GetProject(c.Context(), id)
	if err != nil {
		return respondWithError(c, h.logger, err, "Failed to get project")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Project retrieved successfully", project)
}

// CreateTranslationSet godoc
// @Summary Create a translation set
// @Description Create a locale/slug translation set on a project
// @Tags translation-sets
// @Accept json
// @Produce json
// @Param set body CreateTranslationSetRequest true "Translation set request object"
// @Success 201 {object} utils.StandardResponse "Translation set created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /translation-sets [post]
func (h *CatalogHandler) CreateTranslationSet(c *fiber.Ctx) error {
	var req CreateTranslationSetRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	set := &models.TranslationSet{
		Name:      req.Name,
		ProjectID: req.ProjectID,
		Slug:      req.Slug,
		Locale:    req.Locale,
	}
	if err := h.service.CreateTranslationSet(c.Context(), set); err != nil {
		return respondWithError(c, h.logger, err, "Failed to create translation set")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Translation set created successfully", set)
}

// GetTranslationSet godoc
// @Summary Get translation set by ID
// @Tags translation-sets
// @Produce json
// @Param id path int true "Translation set ID"
// @Success 200 {object} utils.StandardResponse "Translation set details"
// @Failure 400 {object} utils.StandardResponse "Invalid translation set ID"
// @Failure 404 {object} utils.StandardResponse "Translation set not found"
// @Router /translation-sets/{id} [get]
func (h *CatalogHandler) GetTranslationSet(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid translation set ID")
	}

	set, err := h.service.GetTranslationSet(c.Context(), id)
	if err != nil {
		return respondWithError(c, h.logger, err, "Failed to get translation set")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Translation set retrieved successfully", set)
}
