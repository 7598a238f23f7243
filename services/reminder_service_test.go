package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hairlab-backoffice/models"
)

func TestRender(t *testing.T) {
	got := Render("Hi [CustomerName], you paid [Amount]. [Unknown]", map[string]string{
		"CustomerName": "Meera",
		"Amount":       "295.00",
	})
	assert.Equal(t, "Hi Meera, you paid 295.00. [Unknown]", got)
}

func TestNotify_LogsFailedDelivery(t *testing.T) {
	sender := &mockSender{}
	repo := &mockReminderRepo{}
	repo.On("ActiveTemplate", mock.Anything, models.ReminderBirthday).
		Return(models.ReminderTemplate{Message: "Happy birthday [CustomerName]"}, nil)
	sender.On("Send", mock.Anything, "+919876543210", "Happy birthday Meera").Return("whatsapp", errors.New("undeliverable"))
	repo.On("LogMessage", mock.Anything, mock.MatchedBy(func(e *models.ReminderLog) bool {
		return e.Status == models.ReminderStatusFailed && e.Channel == "whatsapp" && e.ErrorMessage == "undeliverable"
	})).Return(nil)

	n := NewNotificationService(sender, repo)
	err := n.Notify(context.Background(), models.ReminderBirthday, "c1", "+919876543210", map[string]string{"CustomerName": "Meera"})
	assert.EqualError(t, err, "undeliverable")
	repo.AssertExpectations(t)
}

func TestNotify_NoTemplate(t *testing.T) {
	repo := &mockReminderRepo{}
	repo.On("ActiveTemplate", mock.Anything, models.ReminderReceipt).Return(models.ReminderTemplate{}, ErrNoActiveTemplate)

	n := NewNotificationService(&mockSender{}, repo)
	err := n.Notify(context.Background(), models.ReminderReceipt, "", "9876543210", nil)
	assert.ErrorIs(t, err, ErrNoActiveTemplate)
}

func TestReminderService_SendsUpcomingBirthdaysOnce(t *testing.T) {
	client := newBackend(t, map[string]http.HandlerFunc{
		"GET /api/customers": respond(`[
			{"_id":"c1","firstName":"Meera","lastName":"Iyer","phoneNumber":"9876543210","birthdate":"1990-06-03"},
			{"_id":"c2","firstName":"Arjun","lastName":"Rao","phoneNumber":"9123456780","birthdate":"1985-06-20T00:00:00.000Z"},
			{"_id":"c3","firstName":"Kavya","lastName":"Iyer","phoneNumber":"9000000001","birthdate":"1992-06-05"},
			{"_id":"c4","firstName":"Dev","lastName":"Shah","phoneNumber":"9000000002"}
		]`),
	})

	sender := &mockSender{}
	repo := &mockReminderRepo{}
	repo.On("ActiveTemplate", mock.Anything, models.ReminderBirthday).
		Return(models.ReminderTemplate{Message: "Happy birthday [CustomerName]"}, nil)
	repo.On("SentSince", mock.Anything, "c1", models.ReminderBirthday, mock.Anything).Return(false, nil)
	repo.On("SentSince", mock.Anything, "c3", models.ReminderBirthday, mock.Anything).Return(true, nil)
	repo.On("LogMessage", mock.Anything, mock.Anything).Return(nil)
	sender.On("Send", mock.Anything, "9876543210", "Happy birthday Meera Iyer").Return("sms", nil).Once()

	svc := NewReminderService(client, NewNotificationService(sender, repo), repo, 7)
	svc.now = func() time.Time { return time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC) }

	assert.Equal(t, 1, svc.SendDailyReminders(context.Background()))
	sender.AssertExpectations(t)
	repo.AssertNotCalled(t, "SentSince", mock.Anything, "c2", mock.Anything, mock.Anything)
}

func TestReminderService_Schedule(t *testing.T) {
	svc := NewReminderService(newBackend(t, nil), nil, nil, 7)
	c := cron.New()
	require.NoError(t, svc.Schedule(c, "0 9 * * *"))
	assert.Len(t, c.Entries(), 1)
	assert.Error(t, svc.Schedule(c, "not a schedule"))
}
