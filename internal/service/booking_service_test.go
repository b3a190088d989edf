package service

import (
	"testing"
	"time"

	"carhire/internal/config"
	"carhire/internal/entities"
	"carhire/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockService(t *testing.T) (*BookingService, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	repo := repository.NewBookingRepository(database)
	sender := NewSenderService(config.Config{})
	return NewBookingService(repo, sender), mock
}

func TestCreateBookingPersistsAllFields(t *testing.T) {
	svc, mock := newMockService(t)
	notes := "Child seat please"

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(
			"Thandi Nkosi", "thandi@example.com", "+27821234567", "BMW X5",
			"2025-06-01", "2025-06-05", notes, "Credit Card",
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

	id, err := svc.CreateBooking(entities.BookingRequest{
		FullName:           "Thandi Nkosi",
		Email:              "thandi@example.com",
		Phone:              "+27821234567",
		Vehicle:            "BMW X5",
		PickupDate:         "2025-06-01",
		ReturnDate:         "2025-06-05",
		AdditionalRequests: &notes,
		PaymentMethod:      "Credit Card",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingPropagatesStorageFailure(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(assert.AnError)

	_, err := svc.CreateBooking(entities.BookingRequest{
		FullName:      "Thandi Nkosi",
		Email:         "thandi@example.com",
		Phone:         "+27821234567",
		Vehicle:       "BMW X5",
		PickupDate:    "2025-06-01",
		ReturnDate:    "2025-06-05",
		PaymentMethod: "Credit Card",
	})
	assert.Error(t, err)
}

func TestSubmitContactInquiryPersists(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("INSERT INTO contact_inquiries").
		WithArgs("Sipho Dlamini", "sipho@example.com", "Weekend rates", "Do you offer weekend discounts?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, time.Now()))

	id, err := svc.SubmitContactInquiry(entities.ContactRequest{
		Name:    "Sipho Dlamini",
		Email:   "sipho@example.com",
		Subject: "Weekend rates",
		Message: "Do you offer weekend discounts?",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestListVehiclesReturnsFixedCatalog(t *testing.T) {
	svc, _ := newMockService(t)

	vehicles := svc.ListVehicles()
	require.Len(t, vehicles, 5)
	assert.Equal(t, "Toyota Corolla", vehicles[0].Name)
	assert.Equal(t, "Mercedes S-Class", vehicles[4].Name)
}
