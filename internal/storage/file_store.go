// Package storage persists confirmed bookings in a single flat file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"hospbook/internal/model"
)

// Store is the durable set of confirmed bookings.
//
// Append must be atomic with respect to the uniqueness check on
// (doctor name, doctor surname, date, slot): implementations reject a
// duplicate and commit under a single serialization point, so a future
// multi-session extension cannot double-book through the store.
type Store interface {
	LoadAll() ([]model.Booking, error)
	Append(model.Booking) error
}

var (
	ErrMalformedState   = errors.New("booking file is malformed")
	ErrDuplicateBooking = errors.New("duplicate booking for doctor, date and slot")
)

// bookingRecord is the on-disk shape of one booking. Dates are written as
// ISO 8601 calendar days.
type bookingRecord struct {
	DoctorName     string `json:"doctor_name"`
	DoctorSurname  string `json:"doctor_surname"`
	Slot           string `json:"slot"`
	Date           string `json:"date"`
	PatientName    string `json:"patient_name"`
	PatientSurname string `json:"patient_surname"`
}

// FileStore keeps the full booking set in one JSON file, rewritten on every
// append.
type FileStore struct {
	path string

	mu       sync.Mutex
	bookings []model.Booking
}

// Open reads the booking file at path. A missing file is a first run and
// yields an empty store. An unreadable or malformed file is a hard error, not
// an empty set: silently dropping history could double-book slots that are
// already taken.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read bookings: %w", err)
	}

	var records []bookingRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	for _, r := range records {
		date, err := time.ParseInLocation(model.DateLayout, r.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: bad date %q", ErrMalformedState, r.Date)
		}
		s.bookings = append(s.bookings, model.Booking{
			DoctorName:     r.DoctorName,
			DoctorSurname:  r.DoctorSurname,
			Date:           date,
			Slot:           r.Slot,
			PatientName:    r.PatientName,
			PatientSurname: r.PatientSurname,
		})
	}
	return s, nil
}

// LoadAll returns a snapshot of all confirmed bookings.
func (s *FileStore) LoadAll() ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

// Append adds one booking and rewrites the whole file before returning.
// Success means the booking is durable and visible to the next LoadAll. On a
// write failure the in-memory set is left unchanged and the booking is not
// confirmed.
func (s *FileStore) Append(b model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookings {
		if existing.DoctorName == b.DoctorName && existing.DoctorSurname == b.DoctorSurname &&
			existing.Slot == b.Slot && model.SameDay(existing.Date, b.Date) {
			return fmt.Errorf("%s %s, %s %s: %w",
				b.DoctorName, b.DoctorSurname, b.Date.Format(model.DateLayout), b.Slot, ErrDuplicateBooking)
		}
	}

	next := make([]model.Booking, 0, len(s.bookings)+1)
	next = append(next, s.bookings...)
	next = append(next, b)
	if err := s.write(next); err != nil {
		return fmt.Errorf("persist bookings: %w", err)
	}
	s.bookings = next
	return nil
}

// write rewrites the full file through a temp file and rename, so a crash
// mid-write cannot leave a truncated booking set behind.
func (s *FileStore) write(bookings []model.Booking) error {
	records := make([]bookingRecord, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, bookingRecord{
			DoctorName:     b.DoctorName,
			DoctorSurname:  b.DoctorSurname,
			Slot:           b.Slot,
			Date:           b.Date.Format(model.DateLayout),
			PatientName:    b.PatientName,
			PatientSurname: b.PatientSurname,
		})
	}
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
