package service

import (
	"fmt"
	"log"
	"time"

	"carhire/internal/repository"
)

type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

// LogDailySummary logs how many bookings and inquiries arrived in the last
// 24 hours. Run from the cron schedule in main.
func (s *ReportService) LogDailySummary() error {
	since := time.Now().UTC().Add(-24 * time.Hour)

	bookings, err := s.Repo.CountBookingsSince(since)
	if err != nil {
		return fmt.Errorf("daily summary: failed to count bookings: %w", err)
	}
	inquiries, err := s.Repo.CountInquiriesSince(since)
	if err != nil {
		return fmt.Errorf("daily summary: failed to count inquiries: %w", err)
	}

	log.Printf("Daily summary: %d bookings, %d contact inquiries in the last 24h", bookings, inquiries)
	return nil
}
