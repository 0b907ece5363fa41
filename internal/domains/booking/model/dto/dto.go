package dto

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"lodge/internal/domains/booking/model"
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

// NewBookingID combines the current wall clock in milliseconds with a small
// random offset to reduce same-millisecond collisions. Best effort, not
// collision-proof.
func NewBookingID() int64 {
	return timezone.Now().UnixMilli() + rand.Int64N(1000)
}

// CreateBookingRequest carries both the stay details and the payment fields.
// The payment fields are validated here and then dropped; they must never be
// persisted or logged. Field order sets validation precedence: room selection
// first, then card number, then cvv.
type CreateBookingRequest struct {
	RoomID     int    `json:"roomId"     validate:"required,gt=0"`
	CardNumber string `json:"cardNumber" validate:"required,len=16,digitsonly"`
	CVV        string `json:"cvv"        validate:"required,len=3,digitsonly"`
	CardName   string `json:"cardName"   validate:"required,alphaspace"`
	FirstName  string `json:"firstName"  validate:"required,max=100"`
	LastName   string `json:"lastName"   validate:"required,max=100"`
	Email      string `json:"email"      validate:"required,email,max=100"`
	Phone      string `json:"phone"      validate:"required,len=10,digitsonly"`
	CheckIn    string `json:"checkIn"    validate:"required"`
	CheckOut   string `json:"checkOut"   validate:"required"`
	Guests     int    `json:"guests"     validate:"required,min=1"`
}

// Normalize applies the same input filtering the booking form applies per
// keystroke, so a request with formatted values ("4111-1111...") validates the
// way typed input would.
func (c *CreateBookingRequest) Normalize() {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = shared.Digits(c.Phone, 10)
	c.CardNumber = shared.Digits(c.CardNumber, 16)
	c.CVV = shared.Digits(c.CVV, 3)
	c.CardName = strings.TrimSpace(shared.LettersAndSpaces(c.CardName))
}

func (c *CreateBookingRequest) ToModel(room roomModel.Room) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, errors.New("check-in must be a valid date (YYYY-MM-DD)")
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, errors.New("check-out must be a valid date (YYYY-MM-DD)")
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if checkIn.Before(today) {
		return model.Booking{}, errors.New("check-in date cannot be in the past")
	}

	if checkOut.Before(checkIn) {
		return model.Booking{}, errors.New("check-out date cannot be before check-in")
	}

	return model.Booking{
		ID:           NewBookingID(),
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		CheckIn:      c.CheckIn,
		CheckOut:     c.CheckOut,
		Guests:       c.Guests,
		SelectedRoom: room.Name,
		Price:        room.Price,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}, nil
}

// GuestCount accepts a JSON number or string and coerces whatever it finds to
// an integer of at least 1. Unparsable input becomes 1, never an error.
type GuestCount int

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	value := strings.TrimSpace(strings.Trim(string(data), `"`))

	count, err := strconv.Atoi(value)
	if err != nil || count < 1 {
		count = 1
	}

	*g = GuestCount(count)

	return nil
}

// UpdateBookingRequest edits the latest booking. Zero-valued fields leave the
// record unchanged.
type UpdateBookingRequest struct {
	FirstName string      `json:"firstName" validate:"omitempty,max=100"`
	LastName  string      `json:"lastName"  validate:"omitempty,max=100"`
	Email     string      `json:"email"     validate:"omitempty,email,max=100"`
	Phone     string      `json:"phone"     validate:"omitempty"`
	CheckIn   string      `json:"checkIn"   validate:"omitempty"`
	CheckOut  string      `json:"checkOut"  validate:"omitempty"`
	Guests    *GuestCount `json:"guests"    validate:"omitempty"`
}

// ApplyTo copies the provided fields onto the working record. Phone updates
// that are not plain digits of at most ten characters are ignored rather than
// rejected, matching the edit form's input rule.
func (u *UpdateBookingRequest) ApplyTo(booking *model.Booking) {
	if u.FirstName != "" {
		booking.FirstName = u.FirstName
	}

	if u.LastName != "" {
		booking.LastName = u.LastName
	}

	if u.Email != "" {
		booking.Email = u.Email
	}

	if u.Phone != "" && shared.IsDigits(u.Phone) && len(u.Phone) <= 10 {
		booking.Phone = u.Phone
	}

	if u.CheckIn != "" {
		booking.CheckIn = u.CheckIn
	}

	if u.CheckOut != "" {
		booking.CheckOut = u.CheckOut
	}

	if u.Guests != nil {
		booking.Guests = int(*u.Guests)
	}

	booking.ModifiedAt = timezone.Now()
}

type BookingResponse struct {
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
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
	r.Guests = model.Guests
	r.SelectedRoom = model.SelectedRoom
	r.Price = model.Price
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"totalData"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
