package ledger

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

var header = []string{
	"year",
	"start_balance",
	"rate",
	"growth",
	"withdrawal",
	"end_balance",
	"depleted",
}

// WriteCSV writes rows to a new file at path.
func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return EncodeCSV(f, rows)
}

// EncodeCSV writes a header and one record per row. Money columns are rounded
// to cents.
func EncodeCSV(out io.Writer, rows []Row) error {
	w := csv.NewWriter(out)

	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Year),
			fmtMoney(r.StartBalance),
			fmtRate(r.Rate),
			fmtMoney(r.Growth),
			fmtMoney(r.Withdrawal),
			fmtMoney(r.EndBalance),
			strconv.FormatBool(r.Depleted),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// Cents rounds an amount to two decimal places.
func Cents(x float64) float64 {
	f, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return f
}

func fmtMoney(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}

func fmtRate(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
