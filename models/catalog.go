package models

import "strings"

type ServiceCatalogEntry struct {
	ID          string  `json:"_id"`
	Name        string  `json:"serviceName"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"` // in minutes
	Description string  `json:"description,omitempty"`
}

type ProductCatalogEntry struct {
	ID          string  `json:"_id"`
	Name        string  `json:"productName"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description,omitempty"`
}

type StaffMember struct {
	ID           string  `json:"_id"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	PhoneNumber  string  `json:"phoneNumber"`
	Email        string  `json:"email"`
	Role         string  `json:"role"` // specialization
	HireDate     string  `json:"hireDate"`
	Salary       float64 `json:"salary"`
	Availability bool    `json:"availability"`
	Notes        string  `json:"notes,omitempty"`
}

func (s StaffMember) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// StaffRoles lists the specializations a staff member can hold.
var StaffRoles = []string{
	"Hair Stylist",
	"Barber",
	"Colorist",
	"Nail Technician",
	"Esthetician",
	"Massage Therapist",
	"Makeup Artist",
	"Receptionist",
	"Salon Manager",
	"Other",
}
