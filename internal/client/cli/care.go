package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caremate-ai/caremate/internal/client/api"
	"github.com/caremate-ai/caremate/internal/client/models"
	"github.com/caremate-ai/caremate/internal/filex"
)

// Chat sends a message to the AI doctor. When the message was not given on
// the command line, it is prompted for interactively.
func (a *App) Chat(ctx context.Context, text string) error {
	var err error
	if text == "" {
		text, err = getSimpleText(a.reader, "What would you like to ask?", os.Stdout)
		if err != nil {
			return err
		}
	}

	reply, err := a.chat.Advice(ctx, text)
	if err != nil {
		return err
	}
	if reply == "" {
		printlnFn("Please type a message.")
		return nil
	}
	printlnFn(reply)
	return nil
}

// Doctors prints the verified doctor roster.
func (a *App) Doctors(ctx context.Context) error {
	doctors, err := a.doctors.List(ctx)
	if err != nil {
		return err
	}
	for _, d := range doctors {
		tele := ""
		if d.Teleconsult {
			tele = "teleconsult"
		}
		printlnFn(fmt.Sprintf("%-4s %-20s %-18s %.1f★ %dy %s",
			d.ID, d.Name, d.Specialty, d.Rating, d.ExperienceYears, tele))
	}
	return nil
}

// Book schedules a consult with a doctor: teleconsult or sending the latest
// report. The most recent prediction, if any, is attached to the request.
func (a *App) Book(ctx context.Context) error {
	doctorID, err := getSimpleText(a.reader, "Doctor id (see 'doctors')", os.Stdout)
	if err != nil {
		return err
	}
	mode, err := getSimpleText(a.reader, "Mode: teleconsult or send_report", os.Stdout)
	if err != nil {
		return err
	}

	req := models.ConsultRequest{
		DoctorID: doctorID,
		Mode:     mode,
	}
	if u := a.session.CurrentUser(); u != nil {
		req.UserID = u.Email
	}
	if a.lastPrediction != nil {
		req.PredictionID = a.lastPrediction.ID
	}

	booking, err := a.doctors.Book(ctx, req)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Consult %s: %s", booking.ConsultID, booking.Status))
	return nil
}

// Reports lists the reports generated in this session, newest first.
func (a *App) Reports(ctx context.Context) error {
	reports := a.history.Reports()
	if len(reports) == 0 {
		printlnFn("No reports yet. Run 'predict' to generate one.")
		return nil
	}
	printReports(reports)
	return nil
}

// Dashboard shows the report history from the backend. Offline, it falls
// back to the local session history.
func (a *App) Dashboard(ctx context.Context) error {
	reports, err := a.client.Dashboard(ctx)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return err
		}
		a.log.Warn(ctx, "dashboard fetch failed, showing local history", "error", err)
		reports = a.history.Reports()
	}

	if len(reports) == 0 {
		printlnFn("No reports yet. Run 'predict' to generate one.")
		return nil
	}
	printReports(reports)
	return nil
}

// Report downloads the PDF for a report id into the local reports directory.
func (a *App) Report(ctx context.Context, id string) error {
	pdf, err := a.client.Report(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			printlnFn("No report with id", id)
			return nil
		}
		if errors.Is(err, api.ErrUnavailable) {
			printlnFn("Backend is unreachable; report download needs online mode.")
			return nil
		}
		return err
	}

	dir, err := filex.EnsureSubDir("reports")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, id+".pdf")
	if err := os.WriteFile(path, pdf, 0o660); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	printlnFn("Report saved to:", path)
	return nil
}

func printReports(reports []models.Report) {
	for _, r := range reports {
		printlnFn(fmt.Sprintf("%-12s %s  risk %3d  %s",
			r.ID, r.Date.Format(time.DateOnly), r.RiskScore, r.Summary))
	}
}
