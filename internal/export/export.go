// Package export writes the rendered task view in portable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"todo/internal/render"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// ErrUnknownFormat is returned for a format other than json, csv or pdf.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported formats in help order.
var Formats = []string{FormatJSON, FormatCSV, FormatPDF}

// Write encodes v to w in the given format. Items are written in view
// order (newest first).
func Write(w io.Writer, format string, v render.View) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return writeJSON(w, v)
	case FormatCSV:
		return writeCSV(w, v)
	case FormatPDF:
		return writePDF(w, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, v render.View) error {
	if v.Items == nil {
		v.Items = []render.Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(w io.Writer, v render.View) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "text", "completed", "created_at"}); err != nil {
		return err
	}
	for _, item := range v.Items {
		err := cw.Write([]string{
			item.ID,
			item.Text,
			strconv.FormatBool(item.Completed),
			item.CreatedAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writePDF(w io.Writer, v render.View) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252; translate so accented text survives
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Tasks")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	for i, item := range v.Items {
		mark := "[ ]"
		if item.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%d. %s %s", i+1, mark, item.Text)
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%d total, %d completed", v.Stats.Total, v.Stats.Completed))

	return pdf.Output(w)
}
