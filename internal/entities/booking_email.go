package entities

// BookingEmailData carries the booking fields referenced by the
// confirmation email body.
type BookingEmailData struct {
	FullName      string
	Vehicle       string
	PickupDate    string
	ReturnDate    string
	PaymentMethod string
}

// ContactEmailData carries the inquiry fields referenced by the
// acknowledgement email body.
type ContactEmailData struct {
	Name    string
	Subject string
	Message string
}
