package db

import (
	"database/sql"
	"time"
)

type Booking struct {
	ID                 int
	FullName           string
	Email              string
	Phone              string
	Vehicle            string
	PickupDate         string
	ReturnDate         string
	AdditionalRequests sql.NullString
	PaymentMethod      string
	CreatedAt          time.Time
}

type ContactInquiry struct {
	ID        int
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
