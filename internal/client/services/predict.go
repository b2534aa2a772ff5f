package services

import (
	"context"
	"fmt"
	"time"

	"github.com/caremate-ai/caremate/internal/client/api"
	"github.com/caremate-ai/caremate/internal/client/models"
	"github.com/caremate-ai/caremate/internal/logging"
	"github.com/google/uuid"
)

// PredictService runs risk screenings against the backend and records the
// results in history. When the backend fails, it derives a local estimate
// from the intake so the demo flow keeps working.
type PredictService struct {
	client  api.Client
	history *History
	log     logging.Logger

	now func() time.Time
}

func NewPredictService(client api.Client, history *History, log logging.Logger) *PredictService {
	return &PredictService{client: client, history: history, log: log, now: time.Now}
}

// Screen submits the intake and returns a normalized prediction. Backend
// failures are not surfaced: the local estimate takes over and the caller
// only sees a prediction.
func (s *PredictService) Screen(ctx context.Context, intake models.Intake) (*models.Prediction, error) {
	var prediction *models.Prediction

	resp, err := s.client.Predict(ctx, intake)
	if err != nil {
		s.log.Warn(ctx, "predict request failed, using local estimate", "error", err)
		prediction = localEstimate(intake, s.now())
	} else {
		prediction = normalize(resp, s.now())
	}

	s.history.AddPrediction(*prediction)
	if prediction.ReportID != "" {
		s.history.AddReport(reportFor(prediction))
	}
	return prediction, nil
}

// normalize fills the gaps a backend response may leave: per-disease bands
// derived from probabilities, the overall band from the worst disease, and a
// generated-at timestamp.
func normalize(resp *api.PredictionResponse, now time.Time) *models.Prediction {
	diseases := make([]models.DiseaseRisk, 0, len(resp.Diseases))
	for _, d := range resp.Diseases {
		if d.Band == "" {
			d.Band = models.BandFromProbability(d.Probability)
		}
		diseases = append(diseases, d)
	}

	overall := resp.OverallBand
	if overall == "" {
		overall = models.OverallBand(diseases)
	}

	generatedAt := now
	if resp.GeneratedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, resp.GeneratedAt); err == nil {
			generatedAt = parsed
		}
	}

	id := resp.ReportID
	if id == "" {
		id = uuid.NewString()
	}

	return &models.Prediction{
		ID:              id,
		GeneratedAt:     generatedAt,
		Diseases:        diseases,
		OverallBand:     overall,
		TopFactors:      resp.ShapTop,
		Recommendations: resp.Recommendations,
		ReportID:        resp.ReportID,
	}
}

// localEstimate reproduces the demo heuristics used when the backend is not
// reachable: rough risk curves over glucose, blood pressure, and age.
func localEstimate(intake models.Intake, now time.Time) *models.Prediction {
	age := float64(intake.Age)
	sys := intake.Systolic
	dia := intake.Diastolic
	glu := intake.Glucose

	diabetesProb := clamp01((glu - 90) / 120)
	heartProb := clamp01((sys-110)/70*0.7 + (dia-70)/40*0.3)
	kidneyProb := clamp01((age-40)/40*0.4 + (dia-70)/50*0.6)

	diseases := []models.DiseaseRisk{
		{Name: "Diabetes", Probability: diabetesProb, Band: models.BandFromProbability(diabetesProb)},
		{Name: "Heart", Probability: heartProb, Band: models.BandFromProbability(heartProb)},
		{Name: "Kidney", Probability: kidneyProb, Band: models.BandFromProbability(kidneyProb)},
	}

	factors := []models.FeatureImpact{
		{Feature: fmt.Sprintf("Glucose %g mg/dL", glu), Impact: glu - 110},
		{Feature: fmt.Sprintf("Systolic BP %g mmHg", sys), Impact: sys - 120},
		{Feature: fmt.Sprintf("Diastolic BP %g mmHg", dia), Impact: dia - 80},
		{Feature: fmt.Sprintf("Age %d", intake.Age), Impact: age - 45},
	}

	recommendations := &models.Recommendations{
		Summary: "Based on your intake, here are tailored next steps and lifestyle suggestions to lower your health risks.",
		NextSteps: []string{
			"Schedule a follow-up consultation if symptoms persist or worsen.",
			"Consider home BP monitoring for 1-2 weeks and record readings.",
			"If fasting glucose remains elevated, discuss HbA1c testing with your clinician.",
		},
		Lifestyle: []string{
			"Aim for 150 minutes/week of moderate activity (e.g., brisk walking).",
			"Reduce added sugars and refined carbs; focus on lean proteins and fiber.",
			"Prioritize 7-8 hours of sleep and manage stress with breathing or mindfulness.",
		},
	}

	return &models.Prediction{
		ID:              uuid.NewString(),
		GeneratedAt:     now,
		Diseases:        diseases,
		OverallBand:     models.OverallBand(diseases),
		TopFactors:      factors,
		Recommendations: recommendations,
	}
}

func reportFor(p *models.Prediction) models.Report {
	var top models.DiseaseRisk
	for _, d := range p.Diseases {
		if d.Probability > top.Probability {
			top = d
		}
	}

	return models.Report{
		ID:        p.ReportID,
		Date:      p.GeneratedAt,
		RiskScore: int(top.Probability*100 + 0.5),
		Summary:   fmt.Sprintf("Top: %s %s (%d%%)", top.Name, top.Band, int(top.Probability*100+0.5)),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
