// Package session drives the interactive console flow: it renders catalog
// choices, collects validated input and hands the resulting requests to the
// reservation engine and the booking store.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"hospbook/internal/catalog"
	"hospbook/internal/model"
	"hospbook/internal/reserve"
	"hospbook/internal/storage"
)

type Flow struct {
	catalog *catalog.Catalog
	store   storage.Store
	logger  *slog.Logger
	in      *bufio.Scanner
	out     io.Writer
	now     func() time.Time
}

func New(cat *catalog.Catalog, store storage.Store, logger *slog.Logger, in io.Reader, out io.Writer) *Flow {
	return &Flow{
		catalog: cat,
		store:   store,
		logger:  logger,
		in:      bufio.NewScanner(in),
		out:     out,
		now:     time.Now,
	}
}

// Run books patients one after another until input ends or ctx is cancelled.
// Recoverable rejections (bad choice, past date, slot conflict) re-prompt;
// store failures abort, because the durability guarantee is gone and a
// confirmation would be a lie.
func (f *Flow) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		done, err := f.bookOne()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		f.printf("\nPress Enter for the next patient...\n")
		if _, ok := f.readLine(); !ok {
			return nil
		}
	}
}

// bookOne walks a single patient through one confirmed booking. done reports
// that input was exhausted mid-flow, which ends the session without error.
func (f *Flow) bookOne() (done bool, err error) {
	f.printf("Hospital System\n\n")

	doctor, ok := f.chooseDoctor()
	if !ok {
		return true, nil
	}
	date, ok := f.chooseDate()
	if !ok {
		return true, nil
	}
	patient, ok := f.readPatient()
	if !ok {
		return true, nil
	}

	for {
		bookings, err := f.store.LoadAll()
		if err != nil {
			return false, fmt.Errorf("load bookings: %w", err)
		}
		slot, ok := f.chooseSlot(doctor, date, bookings)
		if !ok {
			return true, nil
		}

		booking, err := reserve.Reserve(doctor, date, slot, patient, bookings, f.now())
		if err != nil {
			if errors.Is(err, reserve.ErrSlotTaken) {
				f.printf("That slot is already booked, please pick another one.\n")
				continue
			}
			if errors.Is(err, reserve.ErrDateInPast) || errors.Is(err, reserve.ErrUnknownSlot) {
				f.printf("Booking rejected: %v\n", err)
				continue
			}
			return false, err
		}

		if err := f.store.Append(booking); err != nil {
			return false, fmt.Errorf("booking could not be saved: %w", err)
		}
		f.logger.Info("booking confirmed",
			"doctor", doctor.Name+" "+doctor.Surname,
			"date", booking.Date.Format(model.DateLayout),
			"slot", booking.Slot,
		)
		f.printf("\nThank you %s %s, you are booked with Dr. %s %s on %s at %s.\n",
			patient.Name, patient.Surname,
			doctor.Name, doctor.Surname,
			booking.Date.Format(model.DateLayout), booking.Slot,
		)
		return false, nil
	}
}

func (f *Flow) chooseDoctor() (catalog.Doctor, bool) {
	departments := f.catalog.Departments()
	f.printf("Departments:\n")
	for i, d := range departments {
		f.printf("%d. %s\n", i+1, d.Name)
	}
	n, ok := f.promptChoice("Choose a department: ", len(departments))
	if !ok {
		return catalog.Doctor{}, false
	}
	dept := departments[n-1]

	doctors := f.catalog.DoctorsIn(dept.Name)
	f.printf("\nDoctors in %s:\n", dept.Name)
	for i, d := range doctors {
		f.printf("%d. %s %s (%d years)\n", i+1, d.Name, d.Surname, d.ExperienceYears)
	}
	n, ok = f.promptChoice("Choose a doctor: ", len(doctors))
	if !ok {
		return catalog.Doctor{}, false
	}

	// Selection resolves through the surrogate ID, not the name pair.
	doctor, ok := f.catalog.DoctorByID(doctors[n-1].ID)
	return doctor, ok
}

func (f *Flow) chooseDate() (time.Time, bool) {
	for {
		f.printf("\nPick a date for the appointment (YYYY-MM-DD): ")
		line, ok := f.readLine()
		if !ok {
			return time.Time{}, false
		}
		date, err := ParseDate(line, f.now())
		if err != nil {
			f.printf("Invalid or past date, try again: %v\n", err)
			continue
		}
		return date, true
	}
}

func (f *Flow) readPatient() (model.Patient, bool) {
	var p model.Patient
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Name: ", &p.Name},
		{"Surname: ", &p.Surname},
		{"Email: ", &p.Email},
		{"Phone: ", &p.Phone},
	}
	f.printf("\n")
	for _, field := range fields {
		f.printf("%s", field.prompt)
		line, ok := f.readLine()
		if !ok {
			return model.Patient{}, false
		}
		*field.dst = line
	}
	return p, true
}

func (f *Flow) chooseSlot(doctor catalog.Doctor, date time.Time, bookings []model.Booking) (string, bool) {
	slots := f.catalog.SlotsFor(doctor)
	f.printf("\nSlots for %s %s on %s:\n", doctor.Name, doctor.Surname, date.Format(model.DateLayout))
	for i, slot := range slots {
		status := "free"
		if !reserve.IsAvailable(doctor, date, slot, bookings) {
			status = "taken"
		}
		f.printf("%d. %s - %s\n", i+1, slot, status)
	}
	n, ok := f.promptChoice("Choose a slot: ", len(slots))
	if !ok {
		return "", false
	}
	return slots[n-1], true
}

// promptChoice re-prompts until the answer is a number in [1, max] or input
// ends.
func (f *Flow) promptChoice(prompt string, max int) (int, bool) {
	for {
		f.printf("%s", prompt)
		line, ok := f.readLine()
		if !ok {
			return 0, false
		}
		n, err := ParseChoice(line, 1, max)
		if err != nil {
			continue
		}
		return n, true
	}
}

func (f *Flow) readLine() (string, bool) {
	if !f.in.Scan() {
		return "", false
	}
	return f.in.Text(), true
}

func (f *Flow) printf(format string, args ...any) {
	fmt.Fprintf(f.out, format, args...)
}
