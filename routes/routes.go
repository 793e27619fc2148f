package routes

import (
	"net/http"

	"github.com/Bipul-Dubey/loan-prediction-api/config"
	"github.com/Bipul-Dubey/loan-prediction-api/handlers"
	"github.com/Bipul-Dubey/loan-prediction-api/middleware"
	"github.com/Bipul-Dubey/loan-prediction-api/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(hm *handlers.HandlerManager, cfg *config.Config) *gin.Engine {
	models.RegisterTagNames()

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Loan Prediction API. Go to /docs to use the API.",
		})
	})

	r.GET("/docs", func(c *gin.Context) {
		c.JSON(http.StatusOK, apiDocs)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "loan-prediction",
		})
	})

	r.POST("/predict", hm.PredictHandler.Predict)

	return r
}

// apiDocs is a fixed description of the HTTP surface, served at /docs.
var apiDocs = gin.H{
	"title": "Loan Prediction API",
	"endpoints": gin.H{
		"GET /":         "welcome message",
		"GET /health":   "liveness check",
		"POST /predict": "score one loan application",
	},
	"predict_request_schema": gin.H{
		"Gender":            "Male | Female",
		"Married":           "Yes | No",
		"Dependents":        "integer, 0..3",
		"Education":         "Graduate | Not Graduate",
		"Self_Employed":     "Yes | No",
		"ApplicantIncome":   "float, > 0",
		"CoapplicantIncome": "float, >= 0",
		"LoanAmount":        "float, > 0",
		"Loan_Amount_Term":  "float, > 0 (months)",
		"Credit_History":    "0 or 1",
		"Property_Area":     "Rural | Urban | Semiurban",
	},
	"predict_response_schema": gin.H{
		"prediction":             "0 | 1",
		"status":                 "Approved | Not Approved",
		"confidence_probability": "percentage string, e.g. 84.32%",
	},
}
