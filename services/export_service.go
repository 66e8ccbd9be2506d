package services

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"lodging-backend/models"
)

// ExportFilename is the fixed name of the generated report; every
// export overwrites the previous one.
const ExportFilename = "guest_report.xlsx"

const exportSheet = "Guest Report"

type ExportService struct {
	DB        *gorm.DB
	ExportDir string
}

func NewExportService(db *gorm.DB, exportDir string) *ExportService {
	return &ExportService{DB: db, ExportDir: exportDir}
}

type exportRow struct {
	GroupName string
	CheckIn   time.Time
	CheckOut  time.Time
	FullName  string
}

// BuildGuestReport writes one row per guest, joined with the group
// name and stay dates, and returns the path of the written workbook.
func (s *ExportService) BuildGuestReport() (string, error) {
	log.Println("➡️ ExportService.BuildGuestReport")

	var rows []exportRow
	err := s.DB.Model(&models.Guest{}).
		Select("groups.name AS group_name, groups.check_in, groups.check_out, guests.full_name").
		Joins("JOIN groups ON groups.id = guests.group_id").
		Order("guests.id ASC").
		Scan(&rows).Error
	if err != nil {
		log.Printf("⬅️ ExportService.BuildGuestReport query error: %v", err)
		return "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("warning: closing export workbook: %v", err)
		}
	}()
	f.SetSheetName("Sheet1", exportSheet)

	headers := []string{"Group Name", "Check-In", "Check-Out", "Full Name"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, header)
	}

	for i, r := range rows {
		rowNum := i + 2
		f.SetCellValue(exportSheet, fmt.Sprintf("A%d", rowNum), r.GroupName)
		f.SetCellValue(exportSheet, fmt.Sprintf("B%d", rowNum), r.CheckIn.Format("2006-01-02"))
		f.SetCellValue(exportSheet, fmt.Sprintf("C%d", rowNum), r.CheckOut.Format("2006-01-02"))
		f.SetCellValue(exportSheet, fmt.Sprintf("D%d", rowNum), r.FullName)
	}

	path := filepath.Join(s.ExportDir, ExportFilename)
	if err := f.SaveAs(path); err != nil {
		log.Printf("⬅️ ExportService.BuildGuestReport save error: %v", err)
		return "", err
	}

	log.Printf("⬅️ ExportService.BuildGuestReport ok: %d rows -> %s", len(rows), path)
	return path, nil
}
