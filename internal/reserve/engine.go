// Package reserve decides slot availability and constructs confirmed
// bookings. It is pure: callers pass the existing booking set and the current
// time in, and persist the returned booking themselves.
package reserve

import (
	"errors"
	"fmt"
	"time"

	"hospbook/internal/catalog"
	"hospbook/internal/model"
)

var (
	ErrDateInPast  = errors.New("appointment date is in the past")
	ErrUnknownSlot = errors.New("slot is not offered by this doctor")
	ErrSlotTaken   = errors.New("slot is already booked")
)

// IsAvailable reports whether the doctor has no existing booking for slot on
// the given calendar day. Dates are compared at day precision.
func IsAvailable(doctor catalog.Doctor, date time.Time, slot string, existing []model.Booking) bool {
	for _, b := range existing {
		if b.DoctorName == doctor.Name && b.DoctorSurname == doctor.Surname &&
			b.Slot == slot && model.SameDay(b.Date, date) {
			return false
		}
	}
	return true
}

// Reserve validates the request and, if the slot is free, returns the
// confirmed booking with its date normalized to midnight. now supplies the
// current time; dates before now's calendar day are rejected regardless of
// slot state. Availability is re-checked here even when the caller already
// displayed the slot as free, closing the gap between display and commit.
func Reserve(doctor catalog.Doctor, date time.Time, slot string, patient model.Patient, existing []model.Booking, now time.Time) (model.Booking, error) {
	if model.Midnight(date).Before(model.Midnight(now)) {
		return model.Booking{}, fmt.Errorf("%s: %w", date.Format(model.DateLayout), ErrDateInPast)
	}
	if !offersSlot(doctor, slot) {
		return model.Booking{}, fmt.Errorf("%q: %w", slot, ErrUnknownSlot)
	}
	if !IsAvailable(doctor, date, slot, existing) {
		return model.Booking{}, fmt.Errorf("%s %s, %s %s: %w",
			doctor.Name, doctor.Surname, date.Format(model.DateLayout), slot, ErrSlotTaken)
	}

	return model.Booking{
		DoctorName:     doctor.Name,
		DoctorSurname:  doctor.Surname,
		Date:           model.Midnight(date),
		Slot:           slot,
		PatientName:    patient.Name,
		PatientSurname: patient.Surname,
	}, nil
}

func offersSlot(d catalog.Doctor, slot string) bool {
	for _, s := range d.Slots {
		if s == slot {
			return true
		}
	}
	return false
}
