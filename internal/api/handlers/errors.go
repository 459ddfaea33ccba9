package handlers

import (
	"errors"
	"net/http"

	"FundPilot/internal/api/models"
	"FundPilot/internal/model"

	"github.com/gin-gonic/gin"
)

// writeError maps domain sentinel errors to HTTP statuses: bad
// configuration is the caller's fault, missing NAV data means the
// requested scheme or window cannot be served.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrConfig):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()},
		})
	case errors.Is(err, model.ErrData):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "DATA_UNAVAILABLE", Message: err.Error()},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()},
		})
	}
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	})
}

func notFound(c *gin.Context, code, message string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: message},
	})
}
