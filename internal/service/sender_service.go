package service

import (
	"fmt"
	"log"

	"carhire/internal/config"
	"carhire/internal/db"
	"carhire/internal/entities"
)

type SenderService struct {
	cfg config.Config
}

func NewSenderService(cfg config.Config) *SenderService {
	return &SenderService{cfg: cfg}
}

// SendConfirmation makes exactly one delivery attempt and reports the
// outcome. Failures are logged, never returned: notification is best effort
// and must not fail the triggering request.
func (s *SenderService) SendConfirmation(toEmail, subject, body string) bool {
	var err error
	if s.cfg.SendGridAPIKey != "" {
		err = SendEmailWithSendGrid(s.cfg, toEmail, "", subject, body)
	} else {
		err = SendEmailWithSMTP(s.cfg, toEmail, subject, body)
	}
	if err != nil {
		log.Printf("Email sending failed for %s: %v", toEmail, err)
		return false
	}
	return true
}

// SendBookingConfirmation composes the booking confirmation and dispatches
// it on a goroutine so the HTTP response never waits on the relay.
func (s *SenderService) SendBookingConfirmation(booking *db.Booking) {
	body := bookingEmailBody(entities.BookingEmailData{
		FullName:      booking.FullName,
		Vehicle:       booking.Vehicle,
		PickupDate:    booking.PickupDate,
		ReturnDate:    booking.ReturnDate,
		PaymentMethod: booking.PaymentMethod,
	})
	go s.SendConfirmation(booking.Email, "Booking Confirmation", body)
}

// SendContactAcknowledgement composes the contact-form acknowledgement and
// dispatches it on a goroutine.
func (s *SenderService) SendContactAcknowledgement(inq *db.ContactInquiry) {
	body := contactEmailBody(entities.ContactEmailData{
		Name:    inq.Name,
		Subject: inq.Subject,
		Message: inq.Message,
	})
	go s.SendConfirmation(inq.Email, "Contact Form Submission", body)
}

func bookingEmailBody(d entities.BookingEmailData) string {
	return fmt.Sprintf(
		"Booking Confirmation\n\n"+
			"Name: %s\n"+
			"Vehicle: %s\n"+
			"Pickup Date: %s\n"+
			"Return Date: %s\n"+
			"Payment Method: %s\n\n"+
			"Thank you for choosing LTD Car Hiring Services!",
		d.FullName, d.Vehicle, d.PickupDate, d.ReturnDate, d.PaymentMethod,
	)
}

func contactEmailBody(d entities.ContactEmailData) string {
	return fmt.Sprintf(
		"Thank you for contacting LTD Car Hiring Services!\n\n"+
			"Name: %s\n"+
			"Subject: %s\n"+
			"Message: %s\n\n"+
			"We'll get back to you soon.",
		d.Name, d.Subject, d.Message,
	)
}
