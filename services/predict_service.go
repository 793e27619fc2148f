package services

import (
	"context"
	"fmt"

	"github.com/Bipul-Dubey/loan-prediction-api/classifier"
	"github.com/Bipul-Dubey/loan-prediction-api/models"
)

type PredictService interface {
	Predict(ctx context.Context, app models.LoanApplication) (*models.PredictionResult, error)
}

type predictService struct {
	clf *classifier.Classifier
}

func NewPredictService(clf *classifier.Classifier) PredictService {
	return &predictService{
		clf: clf,
	}
}

// Predict projects a validated application onto the model's feature order,
// scores it, and maps the class label and class-1 probability to the API
// response shape.
func (s *predictService) Predict(ctx context.Context, app models.LoanApplication) (*models.PredictionResult, error) {
	vector, err := s.featurize(app)
	if err != nil {
		return nil, err
	}

	label, err := s.clf.Predict(vector)
	if err != nil {
		return nil, err
	}

	proba, err := s.clf.PredictProba(vector)
	if err != nil {
		return nil, err
	}

	status := "Not Approved"
	if label == 1 {
		status = "Approved"
	}

	return &models.PredictionResult{
		Prediction:            label,
		Status:                status,
		ConfidenceProbability: fmt.Sprintf("%.2f%%", proba*100),
	}, nil
}

// featurize encodes the application into the exact feature order the
// artifact declares. Categorical fields become 0/1 indicators and
// Property_Area is one-hot encoded; numeric fields pass through.
func (s *predictService) featurize(app models.LoanApplication) ([]float64, error) {
	encoded := map[string]float64{
		"Gender":                  indicator(app.Gender == "Male"),
		"Married":                 indicator(app.Married == "Yes"),
		"Dependents":              float64(*app.Dependents),
		"Education":               indicator(app.Education == "Graduate"),
		"Self_Employed":           indicator(app.SelfEmployed == "Yes"),
		"ApplicantIncome":         *app.ApplicantIncome,
		"CoapplicantIncome":       *app.CoapplicantIncome,
		"LoanAmount":              *app.LoanAmount,
		"Loan_Amount_Term":        *app.LoanAmountTerm,
		"Credit_History":          *app.CreditHistory,
		"Property_Area_Rural":     indicator(app.PropertyArea == "Rural"),
		"Property_Area_Semiurban": indicator(app.PropertyArea == "Semiurban"),
		"Property_Area_Urban":     indicator(app.PropertyArea == "Urban"),
	}

	features := s.clf.Features()
	vector := make([]float64, len(features))
	for i, name := range features {
		v, ok := encoded[name]
		if !ok {
			return nil, fmt.Errorf("model expects unknown feature %q", name)
		}
		vector[i] = v
	}

	return vector, nil
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
