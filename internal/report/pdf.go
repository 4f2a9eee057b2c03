// Package report renders downloadable documents for coaches.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"

	"github.com/go-pdf/fpdf"
)

// PlanReportContentType is the MIME type of generated plan reports.
const PlanReportContentType = "application/pdf"

// BuildPlanReport renders a training plan as a PDF: header, schedule,
// goals and the assigned athletes. Returns the raw document bytes.
func BuildPlanReport(plan *domain.TrainingPlan, coach *domain.User, athletes []domain.User) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(plan.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, plan.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if coach != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Coach: %s <%s>", coach.Name, coach.Email), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Category: %s    Status: %s", plan.Category, plan.Status), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("%s to %s (%d weeks, %d sessions/week)",
		plan.StartDate.Format("Jan 2, 2006"), plan.EndDate.Format("Jan 2, 2006"),
		plan.Duration.Weeks, plan.Duration.SessionsPerWeek), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, plan.Description, "", "L", false)
	pdf.Ln(4)

	if len(athletes) > 0 {
		sectionHeader(pdf, "Assigned athletes")
		pdf.SetFont("Helvetica", "", 10)
		for _, a := range athletes {
			line := fmt.Sprintf("- %s <%s>", a.Name, a.Email)
			if a.SportsCategory != "" {
				line += fmt.Sprintf(" (%s)", a.SportsCategory)
			}
			pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if len(plan.Workouts) > 0 {
		sectionHeader(pdf, "Schedule")
		for _, w := range plan.Workouts {
			pdf.SetFont("Helvetica", "B", 10)
			title := fmt.Sprintf("Day %d: %s", w.Day, w.Title)
			if w.RestDay {
				title += " (rest day)"
			}
			pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			for _, ex := range w.Exercises {
				line := "  - " + ex.Name
				if ex.Sets > 0 {
					line += fmt.Sprintf(", %d sets", ex.Sets)
				}
				if ex.Reps != "" {
					line += fmt.Sprintf(" x %s", ex.Reps)
				}
				if ex.Duration != "" {
					line += fmt.Sprintf(", %s", ex.Duration)
				}
				if ex.Intensity != "" {
					line += fmt.Sprintf(" [%s]", ex.Intensity)
				}
				pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
			}
		}
		pdf.Ln(4)
	}

	if len(plan.Goals) > 0 {
		sectionHeader(pdf, "Goals")
		pdf.SetFont("Helvetica", "", 10)
		for _, g := range plan.Goals {
			line := fmt.Sprintf("- %s: %s", g.Metric, g.Target)
			if g.Deadline != nil {
				line += fmt.Sprintf(" by %s", g.Deadline.Format("Jan 2, 2006"))
			}
			pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
		}
	}

	pdf.SetY(-20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s", time.Now().Format(time.RFC1123)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}
