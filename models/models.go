package models

// LoanApplication is the request body for POST /predict. Numeric required
// fields are pointers so a present zero (CoapplicantIncome: 0,
// Credit_History: 0) is not confused with an omitted field.
type LoanApplication struct {
	Gender            string   `json:"Gender" binding:"required,oneof=Male Female"`
	Married           string   `json:"Married" binding:"required,oneof=Yes No"`
	Dependents        *int     `json:"Dependents" binding:"required,min=0,max=3"`
	Education         string   `json:"Education" binding:"required,oneof=Graduate 'Not Graduate'"`
	SelfEmployed      string   `json:"Self_Employed" binding:"required,oneof=Yes No"`
	ApplicantIncome   *float64 `json:"ApplicantIncome" binding:"required,gt=0"`
	CoapplicantIncome *float64 `json:"CoapplicantIncome" binding:"required,gte=0"`
	LoanAmount        *float64 `json:"LoanAmount" binding:"required,gt=0"`
	LoanAmountTerm    *float64 `json:"Loan_Amount_Term" binding:"required,gt=0"`
	CreditHistory     *float64 `json:"Credit_History" binding:"required,eq=0|eq=1"`
	PropertyArea      string   `json:"Property_Area" binding:"required,oneof=Rural Urban Semiurban"`
}

// PredictionResult is the response body for a successful prediction.
type PredictionResult struct {
	Prediction            int    `json:"prediction"`
	Status                string `json:"status"`
	ConfidenceProbability string `json:"confidence_probability"`
}

// ErrorDetail carries a server-side failure message.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// FieldError names one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse lists every field that failed validation.
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}
