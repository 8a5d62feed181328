package domain

import "time"

// Gender enumerates the partner gender values carried over from the
// bookstore schema.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Partner is a business partner: a customer, an author, an employee, or any
// combination of the three. Every partner belongs to exactly one group.
type Partner struct {
	ID          int64
	Value       string
	Name        string
	Description string
	Active      bool
	Customer    bool
	Author      bool
	Employee    bool
	ProfileURL  string
	Gender      Gender
	GroupID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
