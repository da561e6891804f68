package handler

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"movie-shelf/internal/middleware"
	"movie-shelf/internal/models"
	"movie-shelf/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler downloads the caller's movie list as CSV or XLSX.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

func (h *ExportHandler) ownedMovies(c *gin.Context) ([]models.Movie, bool) {
	user := middleware.CurrentUser(c)

	var movies []models.Movie
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC, id DESC").
		Find(&movies).Error; err != nil {
		util.ServerError(c)
		return nil, false
	}
	return movies, true
}

var exportHeaders = []string{"Name", "Rating", "Overview", "Image URL", "Added"}

func exportRow(m *models.Movie) []string {
	return []string{
		m.Name,
		strconv.FormatFloat(m.Rating, 'f', -1, 64),
		m.Overview,
		m.ImageURL,
		m.CreatedAt.Format("2006-01-02"),
	}
}

// ExportCSV streams the list as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	movies, ok := h.ownedMovies(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"movies_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM so spreadsheet apps detect the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer.Write(exportHeaders)
	for i := range movies {
		writer.Write(exportRow(&movies[i]))
	}
}

// ExportXLSX writes the list as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	movies, ok := h.ownedMovies(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	sheetName := "Movies"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.ServerError(c)
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx := range movies {
		row := idx + 2
		for col, val := range exportRow(&movies[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "B", 8)
	f.SetColWidth(sheetName, "C", "C", 50)
	f.SetColWidth(sheetName, "D", "D", 40)
	f.SetColWidth(sheetName, "E", "E", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"movies_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.ServerError(c)
	}
}
