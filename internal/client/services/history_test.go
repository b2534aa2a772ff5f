package services

import (
	"testing"

	"github.com/caremate-ai/caremate/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_NewestFirst(t *testing.T) {
	h := NewHistory()
	h.AddReport(models.Report{ID: "r1"})
	h.AddReport(models.Report{ID: "r2"})

	reports := h.Reports()
	require.Len(t, reports, 2)
	assert.Equal(t, "r2", reports[0].ID)
	assert.Equal(t, "r1", reports[1].ID)
}

func TestHistory_ReturnsCopies(t *testing.T) {
	h := NewHistory()
	h.AddReport(models.Report{ID: "r1", Summary: "original"})

	got := h.Reports()
	got[0].Summary = "mutated"

	assert.Equal(t, "original", h.Reports()[0].Summary)
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory()
	assert.Empty(t, h.Reports())
	assert.Empty(t, h.Predictions())
}
