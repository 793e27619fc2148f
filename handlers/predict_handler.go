package handlers

import (
	"net/http"

	"github.com/Bipul-Dubey/loan-prediction-api/models"
	"github.com/Bipul-Dubey/loan-prediction-api/services"
	"github.com/gin-gonic/gin"
)

type PredictHandler struct {
	predictService services.PredictService
}

func NewPredictHandler(predictService services.PredictService) *PredictHandler {
	return &PredictHandler{
		predictService: predictService,
	}
}

// Predict scores one loan application. Schema violations never reach the
// model; scoring failures come back as a 500 and the process keeps serving.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.LoanApplication
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.NewValidationError(err))
		return
	}

	result, err := h.predictService.Predict(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorDetail{
			Detail: "Prediction error: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
