package export

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/ledgerlight/backend/internal/models"
	"github.com/ledgerlight/backend/internal/report"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	pdfMargin     = 15.0 // page margin in mm
	pdfLineHeight = 7.0
	pdfRowHeight  = 8.0
	pdfFooterRoom = 20.0 // vertical space reserved for the footer

	pdfTitleMaxLen    = 40
	pdfCategoryMaxLen = 20
)

// pdfDoc wraps the generator with the layout state shared by all
// sections: the unicode translator for the core fonts and the usable
// content geometry.
type pdfDoc struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string
	printer  *message.Printer
	contentW float64
	breakAt  float64 // Y offset at which a new page is started
}

// renderPDF renders the paginated A4 document.
//
// Pagination is purely a function of the accumulated vertical offset:
// before a block is drawn its height is checked against the remaining
// space, and a new page (with header and footer redrawn) is started
// when it does not fit.
func renderPDF(details []models.Expense, ctx ReportContext, opts Options, renderer ChartRenderer) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, 0)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	doc := &pdfDoc{
		pdf:      pdf,
		tr:       tr,
		printer:  message.NewPrinter(language.English),
		contentW: pageW - 2*pdfMargin,
		breakAt:  pageH - pdfMargin - pdfFooterRoom,
	}

	title := ctx.Title()
	generated := time.Now().Format("2006-01-02")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(doc.contentW, 10, tr(title), "", 1, "C", false, 0, "")
		pdf.Ln(4)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(pageH - pdfMargin)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(doc.contentW/2, 6, "Generated "+generated, "", 0, "L", false, 0, "")
		pdf.CellFormat(doc.contentW/2, 6, doc.printer.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	if !opts.IncludeSummary && !opts.IncludeChart && !opts.IncludeDetails {
		pdf.Ln(40)
		pdf.SetFont("Helvetica", "I", 12)
		pdf.CellFormat(doc.contentW, 10, tr(placeholderMessage), "", 1, "C", false, 0, "")
		return doc.output()
	}

	if opts.IncludeSummary {
		doc.writeSummary(ctx)
	}

	if opts.IncludeChart {
		doc.writeChart(ctx, renderer)
	}

	if opts.IncludeDetails {
		doc.writeDetails(details)
	}

	return doc.output()
}

// ensureSpace starts a new page when the next block of the given
// height would cross into the footer area.
func (d *pdfDoc) ensureSpace(height float64) {
	if d.pdf.GetY()+height > d.breakAt {
		d.pdf.AddPage()
	}
}

func (d *pdfDoc) writeSummary(ctx ReportContext) {
	d.ensureSpace(6 * pdfLineHeight)

	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.CellFormat(d.contentW, pdfLineHeight, "Summary", "", 1, "L", false, 0, "")

	d.pdf.SetFont("Helvetica", "", 10)

	lines := []string{
		d.printer.Sprintf("Total: %.2f", ctx.Summary.Total.InexactFloat64()),
		d.printer.Sprintf("Average: %.2f", ctx.Summary.Average.InexactFloat64()),
		d.printer.Sprintf("Count: %d", ctx.Summary.Count),
		d.printer.Sprintf("Highest: %s (%.2f)", ctx.Summary.Highest.Title, ctx.Summary.Highest.Amount.InexactFloat64()),
		d.printer.Sprintf("Lowest: %s (%.2f)", ctx.Summary.Lowest.Title, ctx.Summary.Lowest.Amount.InexactFloat64()),
	}

	for _, line := range lines {
		d.ensureSpace(pdfLineHeight)
		d.pdf.CellFormat(d.contentW, pdfLineHeight, d.tr(line), "", 1, "L", false, 0, "")
	}

	d.pdf.Ln(4)
}

// writeChart draws the rasterized chart scaled to the content width.
// A missing or failing renderer degrades to omitting the section.
func (d *pdfDoc) writeChart(ctx ReportContext, renderer ChartRenderer) {
	if renderer == nil {
		log.Debug().Msg("no chart renderer available, omitting chart section")
		return
	}

	png, err := renderer.RenderPNG(report.ToChartData(ctx.Buckets), chartWidthPx, chartHeightPx)
	if err != nil {
		log.Warn().Err(err).Msg("chart rendering failed, omitting chart section")
		return
	}

	info := d.pdf.RegisterImageOptionsReader("report-chart", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	if d.pdf.Err() {
		log.Warn().Str("error", d.pdf.Error().Error()).Msg("chart image could not be embedded")
		d.pdf.ClearError()
		return
	}

	width := d.contentW
	height := width * info.Height() / info.Width()

	d.ensureSpace(height)
	d.pdf.ImageOptions("report-chart", pdfMargin, d.pdf.GetY(), width, height, true, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	d.pdf.Ln(4)
}

func (d *pdfDoc) writeDetails(details []models.Expense) {
	colWidths := []float64{25, d.contentW - 25 - 35 - 25, 35, 25}

	header := func() {
		d.pdf.SetFont("Helvetica", "B", 9)
		d.pdf.SetFillColor(68, 114, 196)
		d.pdf.SetTextColor(255, 255, 255)
		d.pdf.CellFormat(colWidths[0], pdfRowHeight, "Date", "1", 0, "L", true, 0, "")
		d.pdf.CellFormat(colWidths[1], pdfRowHeight, "Title", "1", 0, "L", true, 0, "")
		d.pdf.CellFormat(colWidths[2], pdfRowHeight, "Category", "1", 0, "L", true, 0, "")
		d.pdf.CellFormat(colWidths[3], pdfRowHeight, "Amount", "1", 1, "R", true, 0, "")
		d.pdf.SetTextColor(0, 0, 0)
	}

	d.ensureSpace(2 * pdfRowHeight)
	header()

	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.SetFillColor(240, 240, 240)

	for i, expense := range details {
		// The table header travels with the table: it is re-emitted at
		// the top of every page the table spans.
		if d.pdf.GetY()+pdfRowHeight > d.breakAt {
			d.pdf.AddPage()
			header()
			d.pdf.SetFont("Helvetica", "", 9)
			d.pdf.SetFillColor(240, 240, 240)
		}

		fill := i%2 == 1

		d.pdf.CellFormat(colWidths[0], pdfRowHeight, expense.Date.String(), "1", 0, "L", fill, 0, "")
		d.pdf.CellFormat(colWidths[1], pdfRowHeight, d.tr(truncate(expense.Title, pdfTitleMaxLen)), "1", 0, "L", fill, 0, "")
		d.pdf.CellFormat(colWidths[2], pdfRowHeight, d.tr(truncate(expense.CategoryName(), pdfCategoryMaxLen)), "1", 0, "L", fill, 0, "")
		d.pdf.CellFormat(colWidths[3], pdfRowHeight, expense.Amount.StringFixed(2), "1", 1, "R", fill, 0, "")
	}
}

func (d *pdfDoc) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// truncate bounds a string to max runes, marking cut-off values with an
// ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
