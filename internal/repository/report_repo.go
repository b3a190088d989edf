package repository

import (
	"database/sql"
	"fmt"
	"time"
)

type ReportRepository struct {
	DB *sql.DB
}

func NewReportRepository(database *sql.DB) *ReportRepository {
	return &ReportRepository{DB: database}
}

// CountBookingsSince returns how many bookings were created at or after t.
func (r *ReportRepository) CountBookingsSince(t time.Time) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE created_at >= $1`, t).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting bookings: %w", err)
	}
	return count, nil
}

// CountInquiriesSince returns how many contact inquiries were created at or
// after t.
func (r *ReportRepository) CountInquiriesSince(t time.Time) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM contact_inquiries WHERE created_at >= $1`, t).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting contact inquiries: %w", err)
	}
	return count, nil
}
