package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"numbersense/classify-api/common/classify"
	"numbersense/classify-api/common/models"
	"numbersense/classify-api/common/numbers"
)

const invalidInputMessage = "Invalid input. Please enter a valid integer."

// @Summary      Classify a number
// @Description  Report primality, perfection, Armstrong status, parity, digit sum and a fun fact for an integer
// @Tags         classify
// @Produce      json
// @Param        number query    string true "Integer to classify"
// @Success      200    {object} models.ClassificationResult
// @Failure      400    {object} models.ErrorResponse
// @Router       /api/classify-number [get]
func handleClassifyNumber(svc *classify.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.ClassificationRequest
		// Binding a single optional string cannot fail; a missing value is "".
		_ = c.ShouldBindQuery(&request)

		result, err := svc.Classify(c.Request.Context(), request.Number)
		if err != nil {
			var invalid *numbers.InvalidInputError
			if !errors.As(err, &invalid) {
				zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Unexpected classification error")
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Number:  request.Number,
				Error:   true,
				Message: invalidInputMessage,
			})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// handleHealth reports service liveness
func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": serviceName,
	})
}
