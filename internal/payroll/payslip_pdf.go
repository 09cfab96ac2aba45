package payroll

import (
	"bytes"
	"fmt"
	"time"

	"go-hrms/internal/employee"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFontSize   = 9
	pdfLineHeight = 4.5
)

// renderPayslipPDF lays the stored snapshot out on a single A4 page.
// Text is translated to cp1252, the encoding of the core Courier font.
func renderPayslipPDF(p Payslip, emp employee.Employee) ([]byte, error) {
	period := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetTitle(fmt.Sprintf("Payslip %s %s", emp.EmployeeCode, period), true)
	pdf.SetCreationDate(p.GeneratedAt.UTC())
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Courier", "B", 12)
	pdf.CellFormat(0, 7, tr("Payslip - "+period), "", 1, "L", false, 0, "")
	pdf.SetFont("Courier", "", pdfFontSize)

	write := func(s string) {
		pdf.CellFormat(0, pdfLineHeight, tr(s), "", 1, "L", false, 0, "")
	}

	write(fmt.Sprintf("Employee: %s (%s)", emp.Name, emp.EmployeeCode))
	write(fmt.Sprintf("Status: %s", p.Status))
	pdf.Ln(pdfLineHeight)
	write(fmt.Sprintf("Days in month: %d   Payable days: %s   LOP days: %s",
		p.TotalDays, p.PayableDays.StringFixed(1), p.LopDays.StringFixed(1)))
	write(fmt.Sprintf("Present: %d   Absent: %d   Paid leave: %d   Unpaid leave: %d   Half days: %d   Holidays: %d",
		p.PresentDays, p.AbsentDays, p.PaidLeaveDays, p.UnpaidLeaveDays, p.HalfDays, p.HolidayDays))
	pdf.Ln(pdfLineHeight)

	for _, l := range p.Lines {
		pdf.CellFormat(35, pdfLineHeight, tr(l.Category), "", 0, "L", false, 0, "")
		pdf.CellFormat(100, pdfLineHeight, tr(l.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, pdfLineHeight, l.Amount.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(pdfLineHeight)

	pdf.SetFont("Courier", "B", pdfFontSize)
	write(fmt.Sprintf("Gross earnings:   %s", p.GrossEarnings.StringFixed(2)))
	write(fmt.Sprintf("Total deductions: %s", p.TotalDeductions.StringFixed(2)))
	write(fmt.Sprintf("Net salary:       %s", p.NetSalary.StringFixed(2)))
	pdf.SetFont("Courier", "", pdfFontSize)

	if len(p.LopDetails) > 0 {
		pdf.Ln(pdfLineHeight)
		write("Loss of pay days:")
		for _, d := range p.LopDetails {
			write(fmt.Sprintf("  %s  %s", d.Date, d.Reason))
		}
	}
	pdf.Ln(pdfLineHeight)
	write("Generated at " + p.GeneratedAt.UTC().Format(time.RFC1123))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}
