package report

import (
	"bytes"
	"fmt"
	"time"

	"retirement-calc/internal/ledger"

	"github.com/go-pdf/fpdf"
)

const (
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	marginBottom = 15.0
	contentWidth = 210.0 - marginLeft - marginRight
)

// KV is one labelled line in a report section.
type KV struct {
	Label string
	Value string
}

// Plan is everything a PDF report shows.
type Plan struct {
	Title    string
	Subtitle string
	Inputs   []KV
	Headline []KV
	Rows     []ledger.Row
	// Generated is printed under the title; zero means now.
	Generated time.Time
}

type pdfReport struct {
	pdf  *fpdf.Fpdf
	plan Plan
}

// RenderPDF lays out the plan on A4 pages and returns the document bytes.
func RenderPDF(plan Plan) ([]byte, error) {
	if plan.Generated.IsZero() {
		plan.Generated = time.Now()
	}
	r := &pdfReport{
		pdf:  fpdf.New("P", "mm", "A4", ""),
		plan: plan,
	}
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetTitle(plan.Title, false)

	r.pdf.AddPage()
	r.addTitle()
	r.addSection("Inputs", plan.Inputs)
	r.addSection("Results", plan.Headline)
	if len(plan.Rows) > 0 {
		r.addLedger()
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addTitle() {
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, r.plan.Title, "", 1, "C", false, 0, "")

	if r.plan.Subtitle != "" {
		r.pdf.SetFont("Arial", "", 13)
		r.pdf.SetTextColor(80, 80, 80)
		r.pdf.CellFormat(contentWidth, 8, r.plan.Subtitle, "", 1, "C", false, 0, "")
	}

	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", r.plan.Generated.Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)
}

func (r *pdfReport) addSection(title string, lines []KV) {
	if len(lines) == 0 {
		return
	}
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 7, title, "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, kv := range lines {
		r.pdf.CellFormat(60, 6, kv.Label, "", 0, "L", false, 0, "")
		r.pdf.CellFormat(contentWidth-60, 6, kv.Value, "", 1, "L", false, 0, "")
	}
	r.pdf.Ln(4)
}

var ledgerColumns = []struct {
	header string
	width  float64
}{
	{"Year", 14},
	{"Start", 36},
	{"Rate", 20},
	{"Growth", 34},
	{"Withdrawal", 34},
	{"End", 42},
}

func (r *pdfReport) ledgerHeader() {
	r.pdf.SetFont("Arial", "B", 9)
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	for _, c := range ledgerColumns {
		r.pdf.CellFormat(c.width, 7, c.header, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) addLedger() {
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 7, "Year-by-Year", "", 1, "L", false, 0, "")
	r.ledgerHeader()

	r.pdf.SetFont("Arial", "", 9)
	for i, row := range r.plan.Rows {
		// Leave room for the row; repeat the header on each new page.
		if r.pdf.GetY() > 297-marginBottom-10 {
			r.pdf.AddPage()
			r.ledgerHeader()
			r.pdf.SetFont("Arial", "", 9)
		}

		if i%2 == 0 {
			r.pdf.SetFillColor(245, 247, 250)
		} else {
			r.pdf.SetFillColor(255, 255, 255)
		}
		r.pdf.SetTextColor(50, 50, 50)
		if row.Depleted {
			r.pdf.SetTextColor(180, 0, 0)
		}

		cells := []string{
			fmt.Sprintf("%d", row.Year),
			Money(row.StartBalance),
			Percent(row.Rate),
			Money(row.Growth),
			Money(row.Withdrawal),
			Money(row.EndBalance),
		}
		for j, c := range ledgerColumns {
			align := "R"
			if j == 0 {
				align = "C"
			}
			r.pdf.CellFormat(c.width, 6, cells[j], "LR", 0, align, true, 0, "")
		}
		r.pdf.Ln(-1)
	}
	r.pdf.CellFormat(contentWidth, 0, "", "T", 1, "", false, 0, "")
}

// WithdrawalPlan builds the report for a solved withdrawal and its schedule.
func WithdrawalPlan(s WithdrawalSummary, l ledger.Ledger) Plan {
	return Plan{
		Title:    "Retirement Withdrawal Plan",
		Subtitle: fmt.Sprintf("%s over %d years", Money(s.Balance), s.Years),
		Inputs: []KV{
			{"Retirement balance:", Money(s.Balance)},
			{"Annual growth rate:", Percent(s.Rate)},
			{"Years:", fmt.Sprintf("%d", s.Years)},
			{"Tolerance:", Money(s.Tolerance)},
		},
		Headline: []KV{
			{"Annual withdrawal:", Money(s.Annual)},
			{"Monthly:", Money(s.Monthly)},
			{"Total withdrawn:", Money(s.TotalWithdrawn)},
			{"Final balance:", Money(l.Final)},
		},
		Rows: l.Rows,
	}
}
