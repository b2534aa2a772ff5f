package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/caremate-ai/caremate/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the CareMate backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient constructs a client for the backend at baseURL. The timeout
// applies per request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}

func (c *HTTPClient) Chat(ctx context.Context, text string) (string, error) {
	var resp struct {
		Reply string `json:"reply"`
	}
	if err := c.post(ctx, "/chat", map[string]string{"text": text}, &resp); err != nil {
		return "", err
	}
	return resp.Reply, nil
}

func (c *HTTPClient) Predict(ctx context.Context, intake models.Intake) (*PredictionResponse, error) {
	var resp PredictionResponse
	if err := c.post(ctx, "/predict", intake, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Doctors(ctx context.Context) ([]models.Doctor, error) {
	var resp struct {
		Doctors []models.Doctor `json:"doctors"`
	}
	if err := c.get(ctx, "/doctors", &resp); err != nil {
		return nil, err
	}
	return resp.Doctors, nil
}

func (c *HTTPClient) Consult(ctx context.Context, req models.ConsultRequest) (*models.ConsultBooking, error) {
	var resp models.ConsultBooking
	if err := c.post(ctx, "/consult", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SubmitIntake(ctx context.Context, intake models.Intake) error {
	return c.post(ctx, "/intake", intake, nil)
}

// dashboardItem is the wire shape of one /dashboard entry.
type dashboardItem struct {
	PredictionID string `json:"prediction_id"`
	Date         string `json:"date"`
	Diseases     []struct {
		Disease     string  `json:"disease"`
		Probability float64 `json:"probability"`
		RiskBand    string  `json:"risk_band"`
	} `json:"diseases"`
	PDFLink string `json:"pdf_link"`
}

func (c *HTTPClient) Dashboard(ctx context.Context) ([]models.Report, error) {
	var resp struct {
		Items []dashboardItem `json:"items"`
	}
	if err := c.get(ctx, "/dashboard", &resp); err != nil {
		return nil, err
	}

	reports := make([]models.Report, 0, len(resp.Items))
	for _, item := range resp.Items {
		reports = append(reports, item.toReport())
	}
	return reports, nil
}

func (it dashboardItem) toReport() models.Report {
	date, _ := time.Parse(time.RFC3339, it.Date)

	var maxProb float64
	var parts []string
	for _, d := range it.Diseases {
		if d.Probability > maxProb {
			maxProb = d.Probability
		}
		parts = append(parts, fmt.Sprintf("%s %s (%.0f%%)", d.Disease, d.RiskBand, d.Probability*100))
	}

	return models.Report{
		ID:        it.PredictionID,
		Date:      date,
		RiskScore: int(maxProb*100 + 0.5),
		Summary:   strings.Join(parts, ", "),
		PDFLink:   it.PDFLink,
	}
}

// Report fetches the rendered PDF for a screening.
func (c *HTTPClient) Report(ctx context.Context, id string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/report/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, resp.Request.URL.Path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("backend returned %s for %s", resp.Status, resp.Request.URL.Path)
	default:
		return nil
	}
}
