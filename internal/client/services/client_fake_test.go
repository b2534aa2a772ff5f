package services

import (
	"context"

	"github.com/caremate-ai/caremate/internal/client/api"
	"github.com/caremate-ai/caremate/internal/client/models"
)

// fakeClient implements api.Client for service unit tests.
type fakeClient struct {
	healthErr error

	chatReply string
	chatErr   error

	predictResp *api.PredictionResponse
	predictErr  error

	doctorsRet []models.Doctor
	doctorsErr error

	consultRet *models.ConsultBooking
	consultErr error

	intakeErr    error
	dashboardRet []models.Report
	dashboardErr error
	reportRet    []byte
	reportErr    error

	// argument capture
	lastChatText string
	lastIntake   models.Intake
	lastConsult  models.ConsultRequest
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Health(ctx context.Context) error { return f.healthErr }

func (f *fakeClient) Chat(ctx context.Context, text string) (string, error) {
	f.lastChatText = text
	return f.chatReply, f.chatErr
}

func (f *fakeClient) Predict(ctx context.Context, intake models.Intake) (*api.PredictionResponse, error) {
	f.lastIntake = intake
	return f.predictResp, f.predictErr
}

func (f *fakeClient) Doctors(ctx context.Context) ([]models.Doctor, error) {
	return f.doctorsRet, f.doctorsErr
}

func (f *fakeClient) Consult(ctx context.Context, req models.ConsultRequest) (*models.ConsultBooking, error) {
	f.lastConsult = req
	return f.consultRet, f.consultErr
}

func (f *fakeClient) SubmitIntake(ctx context.Context, intake models.Intake) error {
	f.lastIntake = intake
	return f.intakeErr
}

func (f *fakeClient) Dashboard(ctx context.Context) ([]models.Report, error) {
	return f.dashboardRet, f.dashboardErr
}

func (f *fakeClient) Report(ctx context.Context, id string) ([]byte, error) {
	return f.reportRet, f.reportErr
}
