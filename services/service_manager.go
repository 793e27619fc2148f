package services

import (
	"github.com/Bipul-Dubey/loan-prediction-api/classifier"
)

type ServiceManager struct {
	PredictService PredictService
	// Add more services here later if the API grows.
}

func NewServiceManager(clf *classifier.Classifier) *ServiceManager {
	return &ServiceManager{
		PredictService: NewPredictService(clf),
	}
}
