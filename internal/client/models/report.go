package models

import "time"

// Report is one past screening shown on the dashboard.
type Report struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	RiskScore int       `json:"riskScore"` // 0..100
	Summary   string    `json:"summary,omitempty"`
	PDFLink   string    `json:"pdfLink,omitempty"`
}
