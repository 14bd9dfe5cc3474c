package model

import "time"

// DateLayout is the wire format for calendar dates (ISO 8601 date only).
const DateLayout = "2006-01-02"

// Patient is the contact data collected during a booking session. Email and
// phone are captured for the front desk but are not part of the persisted
// booking record.
type Patient struct {
	Name    string
	Surname string
	Email   string
	Phone   string
}

// Booking is one confirmed reservation: a slot for a doctor on a calendar day
// by a patient. It is the only entity the system persists.
type Booking struct {
	DoctorName     string
	DoctorSurname  string
	Date           time.Time // calendar day, normalized to midnight
	Slot           string
	PatientName    string
	PatientSurname string
}

// SameDay reports whether a and b fall on the same calendar day, ignoring any
// time-of-day component.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Midnight truncates t to the start of its calendar day in its own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
