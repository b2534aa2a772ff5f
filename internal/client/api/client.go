// Package api implements the client for the remote CareMate backend. The
// backend speaks JSON over HTTP; every call maps transport failures to
// ErrUnavailable so callers can fall back to local mocks.
package api

import (
	"context"

	"github.com/caremate-ai/caremate/internal/client/models"
)

// PredictionResponse is the wire shape of POST /predict.
type PredictionResponse struct {
	Diseases        []models.DiseaseRisk    `json:"diseases"`
	OverallBand     models.RiskBand         `json:"overallBand,omitempty"`
	ShapTop         []models.FeatureImpact  `json:"shapTop,omitempty"`
	Recommendations *models.Recommendations `json:"recommendations,omitempty"`
	ReportID        string                  `json:"reportId,omitempty"`
	GeneratedAt     string                  `json:"generatedAt,omitempty"` // RFC 3339
}

type Client interface {
	Close() error
	Health(ctx context.Context) error
	Chat(ctx context.Context, text string) (string, error)
	Predict(ctx context.Context, intake models.Intake) (*PredictionResponse, error)
	Doctors(ctx context.Context) ([]models.Doctor, error)
	Consult(ctx context.Context, req models.ConsultRequest) (*models.ConsultBooking, error)
	SubmitIntake(ctx context.Context, intake models.Intake) error
	Dashboard(ctx context.Context) ([]models.Report, error)
	Report(ctx context.Context, id string) ([]byte, error)
}
