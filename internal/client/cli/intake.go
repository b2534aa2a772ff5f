package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caremate-ai/caremate/internal/client/api"
	"github.com/caremate-ai/caremate/internal/client/models"
)

// Intake collects the symptom-intake form. Numeric fields are optional; an
// empty line keeps them at zero. The completed form is kept for the next
// 'predict' and, when the backend is reachable, submitted to /intake.
func (a *App) Intake(ctx context.Context) error {
	var intake models.Intake

	ageRaw, err := getSimpleText(a.reader, "Age", os.Stdout)
	if err != nil {
		return err
	}
	if ageRaw != "" {
		age, err := strconv.Atoi(ageRaw)
		if err != nil {
			return fmt.Errorf("not a number: %q", ageRaw)
		}
		intake.Age = age
	}

	sex, err := getSimpleText(a.reader, "Sex (male/female/other)", os.Stdout)
	if err != nil {
		return err
	}
	intake.Sex = strings.ToLower(sex)

	if intake.Height, err = GetNumber(a.reader, "Height (cm)", 0, os.Stdout); err != nil {
		return err
	}
	if intake.Weight, err = GetNumber(a.reader, "Weight (kg)", 0, os.Stdout); err != nil {
		return err
	}
	if intake.Systolic, err = GetNumber(a.reader, "Systolic BP (mmHg)", 0, os.Stdout); err != nil {
		return err
	}
	if intake.Diastolic, err = GetNumber(a.reader, "Diastolic BP (mmHg)", 0, os.Stdout); err != nil {
		return err
	}
	if intake.Glucose, err = GetNumber(a.reader, "Fasting glucose (mg/dL)", 0, os.Stdout); err != nil {
		return err
	}

	symptoms, err := GetMultiline(a.reader, "Symptoms, one per line:", os.Stdout)
	if err != nil {
		return err
	}
	if symptoms != "" {
		intake.Symptoms = strings.Split(symptoms, "\n")
	}

	if intake.PastDiseases, err = getSimpleText(a.reader, "Past diseases (optional)", os.Stdout); err != nil {
		return err
	}
	if intake.Medications, err = getSimpleText(a.reader, "Current medications (optional)", os.Stdout); err != nil {
		return err
	}

	a.lastIntake = &intake

	if err := a.client.SubmitIntake(ctx, intake); err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return err
		}
		a.log.Warn(ctx, "intake submission failed, kept locally", "error", err)
	}

	printlnFn("Intake saved. Type 'predict' to run your risk screening.")
	return nil
}

// Predict runs the risk screening over the most recent intake and prints the
// result. Requires 'intake' to have been filled in first.
func (a *App) Predict(ctx context.Context) error {
	if a.lastIntake == nil {
		printlnFn("No intake on file. Type 'intake' first.")
		return nil
	}

	prediction, err := a.predict.Screen(ctx, *a.lastIntake)
	if err != nil {
		return err
	}
	a.lastPrediction = prediction

	printlnFn(fmt.Sprintf("Overall risk: %s", prediction.OverallBand))
	for _, d := range prediction.Diseases {
		printlnFn(fmt.Sprintf("  %-10s %3.0f%%  %s", d.Name, d.Probability*100, d.Band))
	}

	if len(prediction.TopFactors) > 0 {
		printlnFn("Top factors:")
		for _, f := range prediction.TopFactors {
			printlnFn(fmt.Sprintf("  %s (impact %+.1f)", f.Feature, f.Impact))
		}
	}

	if r := prediction.Recommendations; r != nil {
		if r.Summary != "" {
			printlnFn(r.Summary)
		}
		for _, step := range r.NextSteps {
			printlnFn("  - " + step)
		}
		for _, tip := range r.Lifestyle {
			printlnFn("  - " + tip)
		}
	}

	if prediction.ReportID != "" {
		printlnFn(fmt.Sprintf("Report id: %s (type 'report %s' to download)", prediction.ReportID, prediction.ReportID))
	}
	return nil
}
