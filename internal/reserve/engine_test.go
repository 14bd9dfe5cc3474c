package reserve

import (
	"errors"
	"testing"
	"time"

	"hospbook/internal/catalog"
	"hospbook/internal/model"
)

func pediatrician() catalog.Doctor {
	return catalog.Doctor{
		ID:              "doc-1",
		Name:            "Aydub",
		Surname:         "Ekberov",
		ExperienceYears: 3,
		Slots:           []string{"09:00-11:00", "12:00-14:00", "15:00-17:00"},
	}
}

func somePatient() model.Patient {
	return model.Patient{Name: "Anar", Surname: "Quliyev", Email: "anar@example.com", Phone: "+994501234567"}
}

func TestReserve_ThenConflict_ThenOtherSlot(t *testing.T) {
	doctor := pediatrician()
	now := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	first, err := Reserve(doctor, date, "09:00-11:00", somePatient(), nil, now)
	if err != nil {
		t.Fatalf("first reserve failed: %v", err)
	}
	if first.DoctorName != "Aydub" || first.DoctorSurname != "Ekberov" {
		t.Fatalf("booking carries wrong doctor: %s %s", first.DoctorName, first.DoctorSurname)
	}
	if first.Slot != "09:00-11:00" {
		t.Fatalf("booking carries wrong slot: %s", first.Slot)
	}

	existing := []model.Booking{first}
	if _, err := Reserve(doctor, date, "09:00-11:00", somePatient(), existing, now); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	second, err := Reserve(doctor, date, "12:00-14:00", somePatient(), existing, now)
	if err != nil {
		t.Fatalf("reserve of a different slot failed: %v", err)
	}
	if second.Slot != "12:00-14:00" {
		t.Fatalf("expected slot 12:00-14:00, got %s", second.Slot)
	}
}

func TestReserve_MakesSlotUnavailable(t *testing.T) {
	doctor := pediatrician()
	now := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	booking, err := Reserve(doctor, date, "09:00-11:00", somePatient(), nil, now)
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if IsAvailable(doctor, date, "09:00-11:00", []model.Booking{booking}) {
		t.Fatal("slot still available after a successful reserve")
	}
}

func TestReserve_DoesNotInterfere(t *testing.T) {
	doctor := pediatrician()
	other := catalog.Doctor{ID: "doc-2", Name: "Veli", Surname: "Veliyev", ExperienceYears: 5, Slots: doctor.Slots}
	now := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	otherDate := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	booking, err := Reserve(doctor, date, "09:00-11:00", somePatient(), nil, now)
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	existing := []model.Booking{booking}

	if !IsAvailable(doctor, date, "12:00-14:00", existing) {
		t.Fatal("another slot of the same doctor became unavailable")
	}
	if !IsAvailable(doctor, otherDate, "09:00-11:00", existing) {
		t.Fatal("the same slot on another date became unavailable")
	}
	if !IsAvailable(other, date, "09:00-11:00", existing) {
		t.Fatal("the same slot of another doctor became unavailable")
	}
}

func TestReserve_RejectsPastDate(t *testing.T) {
	doctor := pediatrician()
	now := time.Date(2025, time.June, 2, 8, 30, 0, 0, time.UTC)
	yesterday := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	if _, err := Reserve(doctor, yesterday, "09:00-11:00", somePatient(), nil, now); !errors.Is(err, ErrDateInPast) {
		t.Fatalf("expected ErrDateInPast, got %v", err)
	}

	// Past-date rejection wins even when the slot is already taken.
	taken := []model.Booking{{DoctorName: doctor.Name, DoctorSurname: doctor.Surname, Date: yesterday, Slot: "09:00-11:00"}}
	if _, err := Reserve(doctor, yesterday, "09:00-11:00", somePatient(), taken, now); !errors.Is(err, ErrDateInPast) {
		t.Fatalf("expected ErrDateInPast, got %v", err)
	}
}

func TestReserve_AllowsToday(t *testing.T) {
	doctor := pediatrician()
	now := time.Date(2025, time.June, 1, 16, 45, 0, 0, time.UTC)
	today := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	if _, err := Reserve(doctor, today, "09:00-11:00", somePatient(), nil, now); err != nil {
		t.Fatalf("same-day reserve failed: %v", err)
	}
}

func TestReserve_RejectsUnknownSlot(t *testing.T) {
	doctor := pediatrician()
	now := time.Date(2025, time.May, 20, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	if _, err := Reserve(doctor, date, "18:00-20:00", somePatient(), nil, now); !errors.Is(err, ErrUnknownSlot) {
		t.Fatalf("expected ErrUnknownSlot, got %v", err)
	}
}

func TestIsAvailable_ComparesDatesByCalendarDay(t *testing.T) {
	doctor := pediatrician()
	morning := time.Date(2025, time.June, 1, 9, 15, 0, 0, time.UTC)
	midnight := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	existing := []model.Booking{{DoctorName: doctor.Name, DoctorSurname: doctor.Surname, Date: morning, Slot: "09:00-11:00"}}
	if IsAvailable(doctor, midnight, "09:00-11:00", existing) {
		t.Fatal("time-of-day component leaked into the availability check")
	}
}
