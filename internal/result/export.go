package result

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"taskpad/internal/store"

	"github.com/jung-kurt/gofpdf"
)

// Exporter dumps an owner's task list in json, csv, or pdf form.
type Exporter struct {
	st    store.Store
	owner string
}

func NewExporter(st store.Store, owner string) *Exporter {
	return &Exporter{st: st, owner: owner}
}

func (e *Exporter) Export(ctx context.Context, format string) ([]byte, error) {
	all, err := e.st.ListByOwner(ctx, e.owner)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(all, "", "  ")
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "title", "is_complete", "created_at", "owner"})
		for _, t := range all {
			_ = w.Write([]string{t.ID, t.Title, strconv.FormatBool(t.IsComplete), t.CreatedAt.Format(time.RFC3339), t.Owner})
		}
		w.Flush()
		return []byte(b.String()), nil
	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task List")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for _, t := range all {
			mark := "[ ]"
			if t.IsComplete {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s (created %s)", mark, t.Title, t.CreatedAt.Format("2006-01-02"))
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf strings.Builder
		if err := pdf.Output(io.Writer(&buf)); err != nil {
			return nil, err
		}
		return []byte(buf.String()), nil
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}
