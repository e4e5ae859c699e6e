package dto

import (
	"strconv"
	"time"

	"github.com/port-russell/marina-service/pkg/util"
)

const (
	msgBookingID  = "bookingId must be a number"
	msgClientName = "clientName must be at least 3 characters"
	msgBoatName   = "boatName must be at least 3 characters"
	msgCheckIn    = "checkIn must be a date"
	msgCheckOut   = "checkOut must be a date"

	dateLayout = "2006-01-02"
)

// BookingCreateRequest is the reservation payload. The catway is identified
// by the URL, never by the body.
type BookingCreateRequest struct {
	BookingID  Scalar `json:"bookingId" form:"bookingId"`
	ClientName Scalar `json:"clientName" form:"clientName"`
	BoatName   Scalar `json:"boatName" form:"boatName"`
	CheckIn    Scalar `json:"checkIn" form:"checkIn"`
	CheckOut   Scalar `json:"checkOut" form:"checkOut"`
}

// BookingCreate is a validated reservation. No ordering is enforced between
// CheckIn and CheckOut.
type BookingCreate struct {
	BookingID  int64
	ClientName string
	BoatName   string
	CheckIn    time.Time
	CheckOut   time.Time
}

// Validate checks every field and returns either the validated value or the
// field errors in rule order.
func (r BookingCreateRequest) Validate() (BookingCreate, []util.FieldError) {
	var errs []util.FieldError

	bookingID, err := strconv.ParseInt(r.BookingID.Trimmed(), 10, 64)
	if err != nil {
		errs = append(errs, util.FieldError{Field: "bookingId", Message: msgBookingID})
	}

	clientName := r.ClientName.Trimmed()
	if len(clientName) < 3 {
		errs = append(errs, util.FieldError{Field: "clientName", Message: msgClientName})
	}

	boatName := r.BoatName.Trimmed()
	if len(boatName) < 3 {
		errs = append(errs, util.FieldError{Field: "boatName", Message: msgBoatName})
	}

	checkIn, err := time.Parse(dateLayout, r.CheckIn.Trimmed())
	if err != nil {
		errs = append(errs, util.FieldError{Field: "checkIn", Message: msgCheckIn})
	}

	checkOut, err := time.Parse(dateLayout, r.CheckOut.Trimmed())
	if err != nil {
		errs = append(errs, util.FieldError{Field: "checkOut", Message: msgCheckOut})
	}

	if len(errs) > 0 {
		return BookingCreate{}, errs
	}
	return BookingCreate{
		BookingID:  bookingID,
		ClientName: clientName,
		BoatName:   boatName,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}, nil
}

// BookingUpdateRequest is the partial-update payload; every field is
// optional.
type BookingUpdateRequest struct {
	BookingID  Scalar `json:"bookingId" form:"bookingId"`
	ClientName Scalar `json:"clientName" form:"clientName"`
	BoatName   Scalar `json:"boatName" form:"boatName"`
	CheckIn    Scalar `json:"checkIn" form:"checkIn"`
	CheckOut   Scalar `json:"checkOut" form:"checkOut"`
}

// BookingPatch carries the fields to overwrite. Absent or blank fields stay
// nil; a bookingId of zero is likewise ignored.
type BookingPatch struct {
	BookingID  *int64
	ClientName *string
	BoatName   *string
	CheckIn    *time.Time
	CheckOut   *time.Time
}

// Validate applies the create rules to every supplied field.
func (r BookingUpdateRequest) Validate() (BookingPatch, []util.FieldError) {
	var (
		patch BookingPatch
		errs  []util.FieldError
	)

	if !r.BookingID.Empty() {
		bookingID, err := strconv.ParseInt(r.BookingID.Trimmed(), 10, 64)
		if err != nil {
			errs = append(errs, util.FieldError{Field: "bookingId", Message: msgBookingID})
		} else if bookingID != 0 {
			patch.BookingID = &bookingID
		}
	}

	if !r.ClientName.Empty() {
		clientName := r.ClientName.Trimmed()
		if len(clientName) < 3 {
			errs = append(errs, util.FieldError{Field: "clientName", Message: msgClientName})
		} else {
			patch.ClientName = &clientName
		}
	}

	if !r.BoatName.Empty() {
		boatName := r.BoatName.Trimmed()
		if len(boatName) < 3 {
			errs = append(errs, util.FieldError{Field: "boatName", Message: msgBoatName})
		} else {
			patch.BoatName = &boatName
		}
	}

	if !r.CheckIn.Empty() {
		checkIn, err := time.Parse(dateLayout, r.CheckIn.Trimmed())
		if err != nil {
			errs = append(errs, util.FieldError{Field: "checkIn", Message: msgCheckIn})
		} else {
			patch.CheckIn = &checkIn
		}
	}

	if !r.CheckOut.Empty() {
		checkOut, err := time.Parse(dateLayout, r.CheckOut.Trimmed())
		if err != nil {
			errs = append(errs, util.FieldError{Field: "checkOut", Message: msgCheckOut})
		} else {
			patch.CheckOut = &checkOut
		}
	}

	if len(errs) > 0 {
		return BookingPatch{}, errs
	}
	return patch, nil
}
