package models

import "time"

const DefaultAppointmentMinutes = 30

type Appointment struct {
	ID       string               `json:"_id"`
	Customer *Customer            `json:"customer,omitempty"`
	Service  *ServiceCatalogEntry `json:"service,omitempty"`
	Staff    *StaffMember         `json:"staff,omitempty"`
	DateTime time.Time            `json:"dateTime"`
	Status   string               `json:"status"`
	Notes    string               `json:"notes,omitempty"`
}

// AppointmentRequest is the body of POST /api/appointments.
type AppointmentRequest struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email,omitempty"`
	Service     string    `json:"service"`
	Staff       string    `json:"staff"`
	DateTime    time.Time `json:"dateTime"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
}

// CalendarEvent is an appointment laid out on the booking calendar.
type CalendarEvent struct {
	ID       string               `json:"id"`
	Title    string               `json:"title"`
	Start    time.Time            `json:"start"`
	End      time.Time            `json:"end"`
	Service  *ServiceCatalogEntry `json:"service,omitempty"`
	Staff    *StaffMember         `json:"staff,omitempty"`
	Customer *Customer            `json:"customer,omitempty"`
	Status   string               `json:"status"`
	Notes    string               `json:"notes,omitempty"`
}

func (a Appointment) ToEvent() CalendarEvent {
	minutes := DefaultAppointmentMinutes
	if a.Service != nil && a.Service.Duration > 0 {
		minutes = a.Service.Duration
	}

	title := ""
	if a.Customer != nil {
		title = a.Customer.FullName()
	}

	return CalendarEvent{
		ID:       a.ID,
		Title:    title,
		Start:    a.DateTime,
		End:      a.DateTime.Add(time.Duration(minutes) * time.Minute),
		Service:  a.Service,
		Staff:    a.Staff,
		Customer: a.Customer,
		Status:   a.Status,
		Notes:    a.Notes,
	}
}
