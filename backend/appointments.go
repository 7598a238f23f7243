package backend

import (
	"context"
	"net/http"

	"hairlab-backoffice/models"
)

func (c *Client) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var items []models.Appointment
	if err := c.doJSON(ctx, http.MethodGet, "/api/appointments", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateAppointment(ctx context.Context, req models.AppointmentRequest) (models.Appointment, error) {
	var appt models.Appointment
	err := c.doJSON(ctx, http.MethodPost, "/api/appointments", nil, req, &appt)
	return appt, err
}
