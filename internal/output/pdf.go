package output

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"todo/internal/service"
)

const (
	pdfFont       = "Courier"
	pdfLineHeight = 7.0

	// zapfCheck is the check mark glyph in the ZapfDingbats core font.
	zapfCheck = "4"
)

// WritePDF renders the same listing as FormatTasks as a one-column A4 PDF.
func WritePDF(w io.Writer, tasks []service.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("All tasks", true)
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 12)
	pdf.CellFormat(0, pdfLineHeight+1, ListHeader, "", 1, "L", false, 0, "")

	for _, task := range tasks {
		pdf.SetFont(pdfFont, "", 11)
		pdf.CellFormat(3, pdfLineHeight, "[", "", 0, "L", false, 0, "")
		if task.Done {
			pdf.SetFont("ZapfDingbats", "", 9)
			pdf.CellFormat(3, pdfLineHeight, zapfCheck, "", 0, "C", false, 0, "")
			pdf.SetFont(pdfFont, "", 11)
		} else {
			pdf.CellFormat(3, pdfLineHeight, "", "", 0, "C", false, 0, "")
		}
		line := fmt.Sprintf("] %s (ID: %d)", normalizeTitle(task.Title), task.ID)
		pdf.CellFormat(0, pdfLineHeight, tr(line), "", 1, "L", false, 0, "")
	}

	pdf.SetFont(pdfFont, "B", 12)
	pdf.CellFormat(0, pdfLineHeight+1, ListFooter, "", 1, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
