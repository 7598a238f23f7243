package models

import (
	"strings"
	"time"
)

type Customer struct {
	ID          string `json:"_id,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	Birthdate   string `json:"birthdate,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// BirthdateTime parses the birthdate as either a plain date or an RFC 3339 timestamp.
func (c Customer) BirthdateTime() (time.Time, bool) {
	if c.Birthdate == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, c.Birthdate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
