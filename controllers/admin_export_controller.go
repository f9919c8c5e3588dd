package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/jmathewk/PromoDeck/models"
	"github.com/jmathewk/PromoDeck/repository"
	"github.com/jmathewk/PromoDeck/utils"
)

// ExportController produces downloadable catalog reports for the admin panel
type ExportController struct {
	Repo repository.OfferRepository
}

var exportHeaders = []string{"ID", "Title", "Active", "Start", "End", "Thumbnail", "PDF", "Created"}

// Export streams the full offer catalog as an Excel or PDF download
func (ec *ExportController) Export(c *gin.Context) {
	utils.LogInfo("ExportOffers called")

	format := c.DefaultQuery("format", "xlsx")
	if format != "xlsx" && format != "pdf" {
		utils.BadRequest(c, "Format must be xlsx or pdf.")
		return
	}

	offers, err := ec.Repo.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.LogDebug("Exporting %d offers as %s", len(offers), format)

	filename := fmt.Sprintf("offers-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", "attachment; filename="+filename)

	if format == "pdf" {
		ec.writePDF(c, offers)
		return
	}
	ec.writeExcel(c, offers)
}

func (ec *ExportController) writeExcel(c *gin.Context, offers []models.Offer) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Offers")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet")
		return
	}

	headerRow := sheet.AddRow()
	for _, h := range exportHeaders {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, offer := range offers {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(offer.ID))
		row.AddCell().SetString(offer.Title)
		row.AddCell().SetBool(offer.IsActive)
		row.AddCell().SetString(exportTime(offer.StartAt))
		row.AddCell().SetString(exportTime(offer.EndAt))
		row.AddCell().SetString(exportPath(offer.ThumbnailPath))
		row.AddCell().SetString(exportPath(offer.PdfPath))
		row.AddCell().SetString(offer.CreatedAt.Format("2006-01-02 15:04"))
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel export: %v", err)
	}
}

func (ec *ExportController) writePDF(c *gin.Context, offers []models.Offer) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "PromoDeck - Offer Catalog")
	pdf.Ln(12)

	widths := []float64{15, 70, 20, 40, 40, 45, 45}
	pdf.SetFont("Arial", "B", 9)
	for i, h := range exportHeaders[:7] {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, offer := range offers {
		active := "no"
		if offer.IsActive {
			active = "yes"
		}
		cells := []string{
			fmt.Sprintf("%d", offer.ID),
			offer.Title,
			active,
			exportTime(offer.StartAt),
			exportTime(offer.EndAt),
			exportPath(offer.ThumbnailPath),
			exportPath(offer.PdfPath),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF export: %v", err)
	}
}

func exportTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func exportPath(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
