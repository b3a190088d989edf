package repository

import (
	"database/sql"
	stderrors "errors"
	"fmt"

	"carhire/internal/db"
	"carhire/internal/errors"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

// InitSchema creates the two tables if they do not exist. Safe to call on
// every startup.
func (r *BookingRepository) InitSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			vehicle TEXT NOT NULL,
			pickup_date TEXT NOT NULL,
			return_date TEXT NOT NULL,
			additional_requests TEXT,
			payment_method TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS contact_inquiries (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("error creating schema: %w", err)
		}
	}
	return nil
}

// InsertBooking appends one booking row. The server assigns id and
// created_at and writes them back into res.
func (r *BookingRepository) InsertBooking(res *db.Booking) error {
	query := `
		INSERT INTO bookings
		(full_name, email, phone, vehicle, pickup_date, return_date, additional_requests, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err := r.DB.QueryRow(query,
		res.FullName,
		res.Email,
		res.Phone,
		res.Vehicle,
		res.PickupDate,
		res.ReturnDate,
		res.AdditionalRequests,
		res.PaymentMethod,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		return errors.NewStorageError(fmt.Errorf("error inserting booking: %w", err))
	}
	return nil
}

// InsertContactInquiry appends one contact inquiry row, writing back the
// server-assigned id and created_at.
func (r *BookingRepository) InsertContactInquiry(inq *db.ContactInquiry) error {
	query := `
		INSERT INTO contact_inquiries (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.DB.QueryRow(query,
		inq.Name,
		inq.Email,
		inq.Subject,
		inq.Message,
	).Scan(&inq.ID, &inq.CreatedAt)
	if err != nil {
		return errors.NewStorageError(fmt.Errorf("error inserting contact inquiry: %w", err))
	}
	return nil
}

// GetBookingByID reads a booking back by its identifier. No API route
// exposes this yet; it exists for tooling and tests.
func (r *BookingRepository) GetBookingByID(id int) (*db.Booking, error) {
	var res db.Booking
	query := `
		SELECT id, full_name, email, phone, vehicle, pickup_date, return_date, additional_requests, payment_method, created_at
		FROM bookings WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&res.ID, &res.FullName, &res.Email, &res.Phone, &res.Vehicle,
		&res.PickupDate, &res.ReturnDate, &res.AdditionalRequests, &res.PaymentMethod, &res.CreatedAt,
	)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return &res, nil
}
