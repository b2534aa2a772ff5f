// Package models defines the domain types exchanged between the CareMate
// client, its services, and the backend.
package models

import (
	"math"
	"time"
)

// RiskBand classifies a probability into the three bands the UI renders.
type RiskBand string

const (
	BandLow    RiskBand = "low"
	BandMedium RiskBand = "medium"
	BandHigh   RiskBand = "high"
)

// BandFromProbability maps a 0..1 probability to a band. Thresholds follow
// the UI contract: ≥67% high, ≥34% medium, else low.
func BandFromProbability(p float64) RiskBand {
	pct := math.Round(p * 100)
	switch {
	case pct >= 67:
		return BandHigh
	case pct >= 34:
		return BandMedium
	default:
		return BandLow
	}
}

// worse reports whether a outranks b.
func (a RiskBand) worse(b RiskBand) bool {
	rank := map[RiskBand]int{BandLow: 0, BandMedium: 1, BandHigh: 2}
	return rank[a] > rank[b]
}

// DiseaseRisk is one disease with its predicted probability.
type DiseaseRisk struct {
	Name        string   `json:"name"`
	Probability float64  `json:"probability"`
	Band        RiskBand `json:"band"`
}

// FeatureImpact is one row of the model explanation: a human-readable
// feature description and its signed impact on the risk.
type FeatureImpact struct {
	Feature string  `json:"feature"`
	Impact  float64 `json:"impact"`
}

// Recommendations carries the advice attached to a prediction.
type Recommendations struct {
	Summary   string   `json:"summary,omitempty"`
	NextSteps []string `json:"nextSteps,omitempty"`
	Lifestyle []string `json:"lifestyle,omitempty"`
}

// Prediction is the normalized risk-screening result shown to the user and
// kept in history.
type Prediction struct {
	ID              string           `json:"id"`
	GeneratedAt     time.Time        `json:"generatedAt"`
	Diseases        []DiseaseRisk    `json:"diseases"`
	OverallBand     RiskBand         `json:"overallBand,omitempty"`
	TopFactors      []FeatureImpact  `json:"shapTop,omitempty"`
	Recommendations *Recommendations `json:"recommendations,omitempty"`
	ReportID        string           `json:"reportId,omitempty"`
}

// OverallBand returns the worst band among the diseases, or BandLow when the
// list is empty.
func OverallBand(diseases []DiseaseRisk) RiskBand {
	overall := BandLow
	for _, d := range diseases {
		if d.Band.worse(overall) {
			overall = d.Band
		}
	}
	return overall
}
