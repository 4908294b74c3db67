// Package export serializes evaluation reports for downstream tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/model"
)

// WriteJSON writes the full report to w in JSON format.
func WriteJSON(w io.Writer, rep *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteCapacityCSV writes the retention curves to w, one row per time point
// and one column per sweep temperature.
func WriteCapacityCSV(w io.Writer, rep *model.Report) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(rep.Curves)+1)
	header = append(header, "month")
	for _, c := range rep.Curves {
		header = append(header, fmt.Sprintf("capacity_pct_%gC", c.TempC))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, m := range rep.Months {
		rec := make([]string, 0, len(header))
		rec = append(rec, strconv.FormatFloat(m, 'f', -1, 64))
		for _, c := range rep.Curves {
			rec = append(rec, strconv.FormatFloat(c.Values[i], 'f', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAgingCSV writes the corrected resistance and terminal voltage series
// to w, one row per aging year.
func WriteAgingCSV(w io.Writer, rep *model.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "resistance_milliohm", "terminal_voltage_v"}); err != nil {
		return err
	}
	for i, y := range rep.AgingYears {
		rec := []string{
			strconv.FormatFloat(y, 'f', -1, 64),
			strconv.FormatFloat(rep.ResistanceMilliOhm[i], 'f', -1, 64),
			strconv.FormatFloat(rep.TerminalVoltageV[i], 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
