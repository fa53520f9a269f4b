package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// ReceiptOrder is what a receipt prints about an order.
type ReceiptOrder struct {
	Code            string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	ServicePackage  string
	Weight          decimal.Decimal
	Distance        decimal.Decimal
	Loads           int
	Price           decimal.Decimal
	Status          string
	EmployeeName    string
	CreatedAt       time.Time
	PaidAt          *time.Time
}

// Receipt renders single page A5 pdf receipts with the core Helvetica font.
type Receipt struct {
	shopName string
}

func NewReceipt(shopName string) Receipt {
	return Receipt{shopName: shopName}
}

func (r Receipt) Generate(o ReceiptOrder) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(r.shopName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Order "+tr(o.Code), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, o.CreatedAt.UTC().Format("2006-01-02 15:04")+" UTC", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	lines := [][2]string{
		{"Customer", o.CustomerName},
		{"Phone", o.CustomerPhone},
		{"Address", o.CustomerAddress},
		{"Package", o.ServicePackage},
		{"Weight", o.Weight.StringFixed(2) + " kg"},
		{"Distance", o.Distance.StringFixed(2) + " km"},
		{"Loads", fmt.Sprintf("%d", o.Loads)},
		{"Status", o.Status},
		{"Handled by", o.EmployeeName},
	}
	for _, l := range lines {
		if l[1] == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 6, l[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, tr(l[1]), "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Total: "+o.Price.StringFixed(2), "T", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	paid := "Not paid"
	if o.PaidAt != nil {
		paid = "Paid " + o.PaidAt.UTC().Format("2006-01-02 15:04")
	}
	pdf.CellFormat(0, 6, paid, "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
