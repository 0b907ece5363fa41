package model

import (
	gModel "lodge/shared/model"
)

const (
	EntityName = "booking"

	// Store keys. The list holds every booking ever created, the latest slot
	// mirrors the most recently created or edited record in full.
	StorageKeyAllBookings   = "allBookings"
	StorageKeyLatestBooking = "latestBooking"
)

// Booking is a persisted reservation. Payment card details are collected on
// the create request for validation only and are never part of this record.
type Booking struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	Guests       int    `json:"guests"`
	SelectedRoom string `json:"selectedRoom"`
	Price        string `json:"price"`
	gModel.Metadata
}
