package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"carhire/internal/entities"
	"carhire/internal/validation"
)

// BookingUseCase is what the handlers need from the service layer.
type BookingUseCase interface {
	CreateBooking(req entities.BookingRequest) (int, error)
	SubmitContactInquiry(req entities.ContactRequest) (int, error)
	ListVehicles() []entities.Vehicle
}

type BookingHandler struct {
	Service BookingUseCase
}

func NewBookingHandler(svc BookingUseCase) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings. Checks run in a fixed order:
// presence, email, phone, date format, date order, vehicle, payment method.
// The first failure wins.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if req.FullName == "" || req.Email == "" || req.Phone == "" || req.Vehicle == "" ||
		req.PickupDate == "" || req.ReturnDate == "" || req.PaymentMethod == "" {
		respondError(w, http.StatusBadRequest, "All required fields must be filled")
		return
	}
	if !validation.IsValidEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "Invalid email format")
		return
	}
	if !validation.IsValidPhone(req.Phone) {
		respondError(w, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	pickup, errPickup := validation.ParseDate(req.PickupDate)
	returnDate, errReturn := validation.ParseDate(req.ReturnDate)
	if errPickup != nil || errReturn != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format")
		return
	}
	if !pickup.Before(returnDate) {
		respondError(w, http.StatusBadRequest, "Return date must be after pickup date")
		return
	}

	if !entities.IsKnownVehicle(req.Vehicle) {
		respondError(w, http.StatusBadRequest, "Invalid vehicle selection")
		return
	}
	if !entities.IsKnownPaymentMethod(req.PaymentMethod) {
		respondError(w, http.StatusBadRequest, "Invalid payment method")
		return
	}

	if _, err := h.Service.CreateBooking(req); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Database error: %v", err))
		return
	}

	respondJSON(w, http.StatusCreated, MessageResponse{Message: "Booking created successfully"})
}

// SubmitContact handles POST /api/contact.
func (h *BookingHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req entities.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !validation.IsValidEmail(req.Email) {
		respondError(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	if _, err := h.Service.SubmitContactInquiry(req); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Database error: %v", err))
		return
	}

	respondJSON(w, http.StatusCreated, MessageResponse{Message: "Contact form submitted successfully"})
}

// ListVehicles handles GET /api/vehicles.
func (h *BookingHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Service.ListVehicles())
}
