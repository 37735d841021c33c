package receipt

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/queries"

	"github.com/phpdave11/gofpdf"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 7.0
	labelWidth = 45.0
)

// PDFRenderer lays out a one-page A4 booking receipt.
type PDFRenderer struct {
	companyName string
}

func NewPDFRenderer(companyName string) *PDFRenderer {
	return &PDFRenderer{companyName: companyName}
}

func (r *PDFRenderer) Render(view *queries.BookingView, issuedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking receipt", false)
	pdf.SetCreator(r.companyName, false)
	pdf.SetCreationDate(issuedAt)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontFamily, "B", 18)
	pdf.Cell(0, 10, tr(r.companyName))
	pdf.Ln(10)
	pdf.SetFont(fontFamily, "", 12)
	pdf.Cell(0, lineHeight, "Booking receipt")
	pdf.Ln(12)

	rows := [][2]string{
		{"Receipt no.", receiptNumber(view)},
		{"Issued", issuedAt.UTC().Format("2006-01-02 15:04 MST")},
		{"Customer", orDash(view.CustomerName)},
		{"Email", orDash(view.CustomerEmail)},
		{"Vehicle", fmt.Sprintf("%s (%s)", view.VehicleName(), view.VehicleType)},
		{"Rental period", fmt.Sprintf("%s to %s", view.StartDate.Format(time.DateOnly), view.EndDate.Format(time.DateOnly))},
		{"Status", view.Status},
		{"Payment method", orDash(view.PaymentMethod)},
	}
	for _, row := range rows {
		pdf.SetFont(fontFamily, "B", 11)
		pdf.CellFormat(labelWidth, lineHeight, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 11)
		pdf.CellFormat(0, lineHeight, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	if view.Notes != "" {
		pdf.SetFont(fontFamily, "I", 10)
		pdf.MultiCell(0, 6, tr("Notes: "+view.Notes), "", "", false)
		pdf.Ln(4)
	}

	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(labelWidth, 10, "Total paid", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, "$"+view.TotalCost.StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to write receipt pdf")
	}
	return buf.Bytes(), nil
}

func receiptNumber(view *queries.BookingView) string {
	id := strings.ToUpper(strings.ReplaceAll(view.ID.String(), "-", ""))
	return "RCT-" + view.StartDate.Format("20060102") + "-" + id[:8]
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
