package services

import (
	"log"

	"gorm.io/gorm"

	"lodging-backend/models"
)

// GroupTotal is one line of the financial report.
type GroupTotal struct {
	GroupID   uint   `json:"group_id"`
	GroupName string `json:"group_name"`
	Total     int    `json:"total"`
}

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// FinancialReport returns the revenue per group, in group order, plus
// the grand total. Groups without priced guests report 0.
func (s *ReportService) FinancialReport() ([]GroupTotal, int, error) {
	log.Println("➡️ ReportService.FinancialReport")

	var totals []GroupTotal
	err := s.DB.Model(&models.Group{}).
		Select("groups.id AS group_id, groups.name AS group_name, COALESCE(SUM(guests.price), 0) AS total").
		Joins("LEFT JOIN guests ON guests.group_id = groups.id").
		Group("groups.id, groups.name").
		Order("groups.id ASC").
		Scan(&totals).Error
	if err != nil {
		log.Printf("⬅️ ReportService.FinancialReport error: %v", err)
		return nil, 0, err
	}

	grandTotal := 0
	for _, t := range totals {
		grandTotal += t.Total
	}

	log.Printf("⬅️ ReportService.FinancialReport ok: %d groups total=%d", len(totals), grandTotal)
	return totals, grandTotal, nil
}
