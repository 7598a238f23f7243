// services/reminder_service.go
package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/models"
	"hairlab-backoffice/utils"
)

type ReminderService struct {
	client    *backend.Client
	notifier  *NotificationService
	repo      ReminderRepository
	daysAhead int
	now       func() time.Time
}

// NewReminderService builds the birthday reminder job. client must carry a
// token the backend accepts for listing customers.
func NewReminderService(client *backend.Client, notifier *NotificationService, repo ReminderRepository, daysAhead int) *ReminderService {
	if daysAhead < 0 {
		daysAhead = 0
	}
	return &ReminderService{
		client:    client,
		notifier:  notifier,
		repo:      repo,
		daysAhead: daysAhead,
		now:       time.Now,
	}
}

// Schedule registers the daily run on c.
func (s *ReminderService) Schedule(c *cron.Cron, spec string) error {
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		s.SendDailyReminders(ctx)
	})
	return err
}

// SendDailyReminders greets every customer whose birthday falls within the
// next daysAhead days and who has not been greeted for it yet. It returns
// the number of messages sent.
func (s *ReminderService) SendDailyReminders(ctx context.Context) int {
	log.Info().Msg("Starting daily reminder processing")

	customers, err := s.client.Customers().List(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch customers")
		return 0
	}

	sent := 0
	for _, customer := range s.upcomingBirthdays(customers) {
		if s.notifyBirthday(ctx, customer) {
			sent++
		}
	}

	log.Info().Int("sent", sent).Msg("Daily reminder processing completed")
	return sent
}

func (s *ReminderService) upcomingBirthdays(customers []models.Customer) []models.Customer {
	today := s.now()
	var upcoming []models.Customer
	for _, c := range customers {
		birthdate, ok := c.BirthdateTime()
		if !ok || c.PhoneNumber == "" {
			continue
		}
		if utils.DaysBetween(today, utils.NextAnniversary(birthdate, today)) <= s.daysAhead {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming
}

func (s *ReminderService) notifyBirthday(ctx context.Context, customer models.Customer) bool {
	since := utils.BeginningOfDay(s.now()).AddDate(0, 0, -s.daysAhead)
	already, err := s.repo.SentSince(ctx, customer.ID, models.ReminderBirthday, since)
	if err != nil {
		log.Error().Err(err).Str("customer", customer.ID).Msg("Failed to check reminder log")
		return false
	}
	if already {
		return false
	}

	err = s.notifier.Notify(ctx, models.ReminderBirthday, customer.ID, customer.PhoneNumber, map[string]string{
		"CustomerName": customer.FullName(),
	})
	return err == nil
}
