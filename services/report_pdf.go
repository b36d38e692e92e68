package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// SalesReportPDF renders the report as one document with a section per
// dashboard tab: summary, daily sales, top items, payment methods.
func SalesReportPDF(restaurantName, currency string, r *SalesReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s sales report", restaurantName), true)

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, restaurantName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Sales report %s to %s",
		r.From.Format("2006-01-02"), r.To.Format("2006-01-02")))
	pdf.Ln(12)

	// summary
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Revenue: %s", money(r.Revenue, currency)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Delivered orders: %d", r.OrderCount))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Average order: %s", money(r.AverageOrder, currency)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Cancelled orders: %d", r.CancelledCount))
	pdf.Ln(12)

	// per-day series
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Daily sales")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(40, 7, "Day", "1", 0, "", false, 0, "")
	pdf.CellFormat(30, 7, "Orders", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Revenue", "1", 1, "R", false, 0, "")
	for _, d := range r.Daily {
		pdf.CellFormat(40, 7, d.Day, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", d.Orders), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, money(d.Revenue, currency), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(10)

	// top items
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Top items")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(80, 7, "Item", "1", 0, "", false, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Revenue", "1", 1, "R", false, 0, "")
	for _, t := range r.TopItems {
		pdf.CellFormat(80, 7, t.Name, "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", t.Qty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, money(t.Revenue, currency), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(10)

	// payment methods
	if len(r.Payments) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Payment methods")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(80, 7, "Method", "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, "Orders", "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, "Revenue", "1", 1, "R", false, 0, "")
		for _, p := range r.Payments {
			pdf.CellFormat(80, 7, p.Method, "1", 0, "", false, 0, "")
			pdf.CellFormat(25, 7, fmt.Sprintf("%d", p.Orders), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 7, money(p.Revenue, currency), "1", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(minor int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", minor/100, minor%100, currency)
}
