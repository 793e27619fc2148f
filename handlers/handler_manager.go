package handlers

import (
	"github.com/Bipul-Dubey/loan-prediction-api/services"
)

type HandlerManager struct {
	PredictHandler *PredictHandler
	// Add more handlers here later if the API grows.
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		PredictHandler: NewPredictHandler(sm.PredictService),
	}
}
