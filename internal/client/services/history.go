// Package services contains application services for the CareMate client:
// risk screening, AI-doctor chat, and doctor scheduling. Each service talks
// to the backend through api.Client and degrades to a local mock when the
// backend is unreachable, so the app stays usable offline.
package services

import (
	"sync"

	"github.com/caremate-ai/caremate/internal/client/models"
)

// History keeps the in-memory, newest-first report and prediction histories
// for the current process. It is a cache for the UI, not durable state.
type History struct {
	mu          sync.Mutex
	reports     []models.Report
	predictions []models.Prediction
}

func NewHistory() *History {
	return &History{}
}

func (h *History) AddReport(r models.Report) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reports = append([]models.Report{r}, h.reports...)
}

func (h *History) Reports() []models.Report {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]models.Report, len(h.reports))
	copy(out, h.reports)
	return out
}

func (h *History) AddPrediction(p models.Prediction) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.predictions = append([]models.Prediction{p}, h.predictions...)
}

func (h *History) Predictions() []models.Prediction {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]models.Prediction, len(h.predictions))
	copy(out, h.predictions)
	return out
}
