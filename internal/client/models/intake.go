package models

// Intake is the symptom-intake form submitted to /predict and /intake.
// Field names follow the backend schema.
type Intake struct {
	Age       int     `json:"age,omitempty"`
	Sex       string  `json:"sex,omitempty"` // male|female|other
	Height    float64 `json:"height,omitempty"`
	Weight    float64 `json:"weight,omitempty"`
	Systolic  float64 `json:"systolic,omitempty"`
	Diastolic float64 `json:"diastolic,omitempty"`
	Glucose   float64 `json:"glucose,omitempty"`

	Symptoms     []string `json:"symptoms,omitempty"`
	PastDiseases string   `json:"pastDiseases,omitempty"`
	Medications  string   `json:"medications,omitempty"`
}
