package main

import (
	"log"

	"github.com/Bipul-Dubey/loan-prediction-api/classifier"
	"github.com/Bipul-Dubey/loan-prediction-api/config"
	"github.com/Bipul-Dubey/loan-prediction-api/handlers"
	"github.com/Bipul-Dubey/loan-prediction-api/routes"
	"github.com/Bipul-Dubey/loan-prediction-api/services"
)

func main() {
	cfg := config.Load()

	// Load the model artifact exactly once. A missing or corrupt file is
	// fatal; serving without a model is worse than not serving.
	clf, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		log.Fatal("Failed to load model artifact: ", err)
	}
	log.Printf("Loaded model artifact %s (%d features)", cfg.ModelPath, len(clf.Features()))

	// Create service manager with all dependencies
	serviceManager := services.NewServiceManager(clf)

	// Create handler manager with service manager
	handlerManager := handlers.NewHandlerManager(serviceManager)

	// Setup routes
	r := routes.SetupRoutes(handlerManager, cfg)

	log.Printf("🚀 Loan Prediction API starting on port %s", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
