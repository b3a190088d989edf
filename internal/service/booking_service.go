package service

import (
	"database/sql"
	"log"

	"carhire/internal/db"
	"carhire/internal/entities"
	"carhire/internal/repository"
)

type BookingService struct {
	Repo   *repository.BookingRepository
	Sender *SenderService
}

func NewBookingService(repo *repository.BookingRepository, sender *SenderService) *BookingService {
	return &BookingService{Repo: repo, Sender: sender}
}

// CreateBooking persists an already-validated booking and fires the
// confirmation email. The email outcome never affects the result.
func (s *BookingService) CreateBooking(req entities.BookingRequest) (int, error) {
	booking := &db.Booking{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Vehicle:       req.Vehicle,
		PickupDate:    req.PickupDate,
		ReturnDate:    req.ReturnDate,
		PaymentMethod: req.PaymentMethod,
	}
	if req.AdditionalRequests != nil {
		booking.AdditionalRequests = sql.NullString{String: *req.AdditionalRequests, Valid: true}
	}

	if err := s.Repo.InsertBooking(booking); err != nil {
		log.Printf("Error inserting booking: %v", err)
		return 0, err
	}

	s.Sender.SendBookingConfirmation(booking)
	return booking.ID, nil
}

// SubmitContactInquiry persists an already-validated inquiry and fires the
// acknowledgement email.
func (s *BookingService) SubmitContactInquiry(req entities.ContactRequest) (int, error) {
	inq := &db.ContactInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.Repo.InsertContactInquiry(inq); err != nil {
		log.Printf("Error inserting contact inquiry: %v", err)
		return 0, err
	}

	s.Sender.SendContactAcknowledgement(inq)
	return inq.ID, nil
}

// ListVehicles returns the fixed catalog.
func (s *BookingService) ListVehicles() []entities.Vehicle {
	return entities.Catalog
}
