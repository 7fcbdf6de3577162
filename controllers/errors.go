package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-dashboard/models"
	"hotel-dashboard/utils"
)

// respondServiceError maps the engine's error taxonomy to HTTP statuses. The
// message is the error text itself; services already phrase their errors for
// operator display.
func respondServiceError(c *gin.Context, err error) {
	var aggErr *models.AggregationError

	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrIllegalTransition):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrOperationInProgress):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.As(err, &aggErr):
		// The whole fan-out is retried as a unit; no partial recovery.
		utils.JSONRetryable(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, models.ErrTransport):
		utils.JSONError(c, http.StatusBadGateway, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}
