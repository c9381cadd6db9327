package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
)

var ErrNoBreakdown = errors.New("quote has no breakdown to render")

// RenderProposal produces the customer-facing proposal PDF: customer and job
// header, per-surface pricing table, the cost waterfall and the deposit
// schedule.
func RenderProposal(q entities.Quote) ([]byte, error) {
	if q.Breakdown == nil {
		return nil, ErrNoBreakdown
	}
	b := q.Breakdown

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Proposal %s", q.ID), false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 10, "Painting Proposal")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 10)
	writeHeaderLine(doc, "Prepared for", q.CustomerName)
	if q.JobAddress != "" {
		writeHeaderLine(doc, "Job address", q.JobAddress)
	}
	if q.JobType != "" {
		writeHeaderLine(doc, "Job type", capitalize(string(q.JobType)))
	}
	writeHeaderLine(doc, "Date", time.Now().Format("January 2, 2006"))
	doc.Ln(6)

	if len(b.Surfaces) > 0 {
		doc.SetFont("Helvetica", "B", 11)
		doc.Cell(0, 8, "Scope of Work")
		doc.Ln(9)

		doc.SetFont("Helvetica", "B", 9)
		doc.SetFillColor(235, 235, 235)
		doc.CellFormat(50, 7, "Area", "1", 0, "L", true, 0, "")
		doc.CellFormat(50, 7, "Surface", "1", 0, "L", true, 0, "")
		doc.CellFormat(30, 7, "Quantity", "1", 0, "R", true, 0, "")
		doc.CellFormat(30, 7, "Labor", "1", 0, "R", true, 0, "")
		doc.CellFormat(30, 7, "Materials", "1", 1, "R", true, 0, "")

		doc.SetFont("Helvetica", "", 9)
		for _, s := range b.Surfaces {
			doc.CellFormat(50, 7, s.Area, "1", 0, "L", false, 0, "")
			doc.CellFormat(50, 7, s.Category, "1", 0, "L", false, 0, "")
			doc.CellFormat(30, 7, fmt.Sprintf("%.1f %s", s.Quantity, unitLabel(s.Unit)), "1", 0, "R", false, 0, "")
			doc.CellFormat(30, 7, money(s.LaborCost), "1", 0, "R", false, 0, "")
			doc.CellFormat(30, 7, money(s.MaterialCost), "1", 1, "R", false, 0, "")
		}
		doc.Ln(4)
	}

	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(0, 8, "Investment")
	doc.Ln(9)

	doc.SetFont("Helvetica", "", 10)
	writeTotalLine(doc, "Labor", b.LaborTotal, false)
	if b.MaterialTotal > 0 {
		writeTotalLine(doc, "Materials", b.MaterialCost, false)
		if b.MaterialMarkupAmount > 0 {
			writeTotalLine(doc, fmt.Sprintf("Material handling (%.0f%%)", b.MaterialMarkupPercent), b.MaterialMarkupAmount, false)
		}
	}
	if b.Overhead > 0 {
		writeTotalLine(doc, "Overhead", b.Overhead, false)
	}
	if b.ProfitAmount > 0 {
		writeTotalLine(doc, "Service charge", b.ProfitAmount, false)
	}
	writeTotalLine(doc, "Subtotal", b.Subtotal, false)
	if b.Tax > 0 {
		writeTotalLine(doc, fmt.Sprintf("Tax (%.2f%%)", b.TaxPercent), b.Tax, false)
	}
	writeTotalLine(doc, "Total", b.Total, true)
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(0, 8, "Payment Schedule")
	doc.Ln(9)
	doc.SetFont("Helvetica", "", 10)
	writeTotalLine(doc, fmt.Sprintf("Deposit due on acceptance (%.0f%%)", b.DepositPercent), b.Deposit, false)
	writeTotalLine(doc, "Balance due on completion", b.Balance, false)

	if b.GallonsTotal > 0 {
		doc.Ln(6)
		doc.SetFont("Helvetica", "I", 9)
		doc.Cell(0, 6, fmt.Sprintf("Estimated paint: %.1f gallons", b.GallonsTotal))
		doc.Ln(6)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeaderLine(doc *gofpdf.Fpdf, label, value string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.Cell(35, 6, label)
	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 6, value)
	doc.Ln(6)
}

func writeTotalLine(doc *gofpdf.Fpdf, label string, amount float64, emphasize bool) {
	style := ""
	if emphasize {
		style = "B"
	}
	doc.SetFont("Helvetica", style, 10)
	doc.Cell(120, 6, label)
	doc.CellFormat(40, 6, money(amount), "", 1, "R", false, 0, "")
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func unitLabel(u entities.MeasurementUnit) string {
	switch u {
	case entities.UnitSquareFoot:
		return "sq ft"
	case entities.UnitLinearFoot:
		return "lin ft"
	case entities.UnitCount:
		return "units"
	case entities.UnitHour:
		return "hrs"
	}
	return string(u)
}
