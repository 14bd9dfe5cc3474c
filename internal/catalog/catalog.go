// Package catalog holds the static department/doctor/slot hierarchy. It is
// seeded once at startup and read-only afterwards.
package catalog

import "github.com/google/uuid"

// DefaultSlots is the daily slot set a doctor offers unless seeded with an
// explicit one. Order is display order and defines the 1..N choice mapping.
var DefaultSlots = []string{"09:00-11:00", "12:00-14:00", "15:00-17:00"}

type Doctor struct {
	ID              string
	Name            string
	Surname         string
	ExperienceYears int
	Slots           []string
}

type Department struct {
	Name    string
	Doctors []Doctor
}

type Catalog struct {
	departments []Department
	byID        map[string]Doctor
}

// New returns the catalog seeded with the hospital's departments.
func New() *Catalog {
	return From(seed())
}

// From builds a catalog from explicit departments. Each doctor without an ID
// gets a generated surrogate one; doctors are matched by ID in-process, while
// name and surname exist for display and for the persisted booking record.
// Doctors without slots get DefaultSlots.
func From(departments []Department) *Catalog {
	c := &Catalog{departments: departments, byID: make(map[string]Doctor)}
	for di := range c.departments {
		doctors := c.departments[di].Doctors
		for dj := range doctors {
			doc := &doctors[dj]
			if doc.ID == "" {
				doc.ID = uuid.NewString()
			}
			if len(doc.Slots) == 0 {
				doc.Slots = append([]string(nil), DefaultSlots...)
			}
			c.byID[doc.ID] = *doc
		}
	}
	return c
}

// Departments lists all departments in seeded order. Never empty after New.
func (c *Catalog) Departments() []Department {
	return c.departments
}

// DoctorsIn lists a department's doctors in seeded order, or nil for an
// unknown department name.
func (c *Catalog) DoctorsIn(department string) []Doctor {
	for _, d := range c.departments {
		if d.Name == department {
			return d.Doctors
		}
	}
	return nil
}

// DoctorByID resolves a doctor by surrogate ID.
func (c *Catalog) DoctorByID(id string) (Doctor, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// SlotsFor returns the doctor's slots in stable display order.
func (c *Catalog) SlotsFor(d Doctor) []string {
	return d.Slots
}
