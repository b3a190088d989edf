package entities

// BookingRequest is the payload of POST /api/bookings. AdditionalRequests is
// optional and may be null or absent.
type BookingRequest struct {
	FullName           string  `json:"full_name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	Vehicle            string  `json:"vehicle"`
	PickupDate         string  `json:"pickup_date"`
	ReturnDate         string  `json:"return_date"`
	AdditionalRequests *string `json:"additional_requests"`
	PaymentMethod      string  `json:"payment_method"`
}

// ContactRequest is the payload of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
