package handlers

import (
	"errors"
	"strconv"

	"glossary-backend/internal/repository"
	"glossary-backend/internal/services"
	"glossary-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondWithError maps service errors onto HTTP statuses. Only unexpected
// failures are logged.
func respondWithError(c *fiber.Ctx, logger *logrus.Logger, err error, message string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrRecordNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrProjectCycle):
		logger.WithError(err).WithField("path", c.Path()).Error("Malformed project hierarchy")
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	default:
		logger.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error(message)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, message)
	}
}

func parseID(c *fiber.Ctx, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
