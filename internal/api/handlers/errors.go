package handlers

import (
	"errors"
	"net/http"

	"retirement-calc/internal/api/models"
	"retirement-calc/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError maps a calculator error onto the API error envelope.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	detail := models.ErrorDetail{Code: models.CodeInternal, Message: err.Error()}

	var calcErr *model.CalculationError
	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		status = http.StatusBadRequest
		detail.Code = models.CodeInvalidArgument
	case errors.As(err, &calcErr):
		status = http.StatusUnprocessableEntity
		detail.Code = models.CodeCalculation
		detail.Details = map[string]interface{}{"step": calcErr.Step}
	case errors.Is(err, model.ErrCalculation):
		status = http.StatusUnprocessableEntity
		detail.Code = models.CodeCalculation
	}

	zerolog.Ctx(c.Request.Context()).Warn().
		Err(err).
		Str("code", detail.Code).
		Msg("request failed")

	c.JSON(status, models.ErrorResponse{Error: detail})
}

// badRequest reports a body that failed to bind.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    models.CodeInvalidRequest,
			Message: err.Error(),
		},
	})
}
