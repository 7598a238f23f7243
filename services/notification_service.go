package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"hairlab-backoffice/config"
	"hairlab-backoffice/models"
)

// Sender delivers a text message and reports the channel it used.
type Sender interface {
	Send(ctx context.Context, to, body string) (channel string, err error)
}

// TwilioSender sends over WhatsApp when the number is in E.164 form and a
// WhatsApp sender is configured, otherwise over SMS.
type TwilioSender struct {
	client *twilio.RestClient
	cfg    config.TwilioConfig
}

func NewTwilioSender(cfg config.TwilioConfig) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
		cfg: cfg,
	}
}

func (s *TwilioSender) Send(_ context.Context, to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)

	channel := "sms"
	if strings.HasPrefix(to, "+") && s.cfg.WhatsAppNumber != "" {
		channel = "whatsapp"
		params.SetTo("whatsapp:" + to)
		params.SetFrom("whatsapp:" + s.cfg.WhatsAppNumber)
	} else {
		params.SetTo(to)
		params.SetFrom(s.cfg.PhoneNumber)
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return channel, err
	}
	if resp.Sid != nil {
		log.Debug().Str("sid", *resp.Sid).Str("channel", channel).Msg("Message accepted by Twilio")
	}
	return channel, nil
}

// LogSender only logs messages. It stands in when Twilio is not configured.
type LogSender struct{}

func (LogSender) Send(_ context.Context, to, body string) (string, error) {
	log.Info().Str("to", to).Str("body", body).Msg("Message not sent, no provider configured")
	return "log", nil
}

// ReminderRepository holds message templates and the outbound message log.
type ReminderRepository interface {
	ActiveTemplate(ctx context.Context, kind string) (models.ReminderTemplate, error)
	LogMessage(ctx context.Context, entry *models.ReminderLog) error
	SentSince(ctx context.Context, customerID, kind string, since time.Time) (bool, error)
}

var ErrNoActiveTemplate = errors.New("no active template")

type GormReminderRepository struct {
	db *gorm.DB
}

func NewGormReminderRepository(db *gorm.DB) *GormReminderRepository {
	return &GormReminderRepository{db: db}
}

// SeedTemplates inserts the default template for every type that has none.
func (r *GormReminderRepository) SeedTemplates(ctx context.Context) error {
	for _, tpl := range models.DefaultReminderTemplates {
		tpl := tpl
		if err := r.db.WithContext(ctx).
			Where(models.ReminderTemplate{Type: tpl.Type}).
			FirstOrCreate(&tpl).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *GormReminderRepository) ActiveTemplate(ctx context.Context, kind string) (models.ReminderTemplate, error) {
	var tpl models.ReminderTemplate
	err := r.db.WithContext(ctx).Where("type = ? AND is_active = ?", kind, true).First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tpl, ErrNoActiveTemplate
	}
	return tpl, err
}

func (r *GormReminderRepository) LogMessage(ctx context.Context, entry *models.ReminderLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *GormReminderRepository) SentSince(ctx context.Context, customerID, kind string, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ReminderLog{}).
		Where("customer_id = ? AND type = ? AND status = ? AND sent_at >= ?", customerID, kind, models.ReminderStatusSent, since).
		Count(&count).Error
	return count > 0, err
}

// NotificationService renders templates and sends them to customers,
// recording every attempt.
type NotificationService struct {
	sender Sender
	repo   ReminderRepository
	now    func() time.Time
}

func NewNotificationService(sender Sender, repo ReminderRepository) *NotificationService {
	return &NotificationService{sender: sender, repo: repo, now: time.Now}
}

// Render fills the [Placeholder] fields of a template.
func Render(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "["+k+"]", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Notify sends the active template of kind to a customer. Delivery failures
// are recorded and returned.
func (n *NotificationService) Notify(ctx context.Context, kind, customerID, phone string, values map[string]string) error {
	tpl, err := n.repo.ActiveTemplate(ctx, kind)
	if err != nil {
		return err
	}

	message := Render(tpl.Message, values)
	channel, sendErr := n.sender.Send(ctx, phone, message)

	entry := &models.ReminderLog{
		CustomerID: customerID,
		Phone:      phone,
		Type:       kind,
		Message:    message,
		Status:     models.ReminderStatusSent,
		Channel:    channel,
		SentAt:     n.now(),
	}
	if sendErr != nil {
		entry.Status = models.ReminderStatusFailed
		entry.ErrorMessage = sendErr.Error()
		log.Error().Err(sendErr).Str("phone", phone).Str("type", kind).Msg("Failed to send message")
	}
	if err := n.repo.LogMessage(ctx, entry); err != nil {
		log.Error().Err(err).Str("customer", customerID).Msg("Failed to log message")
	}
	return sendErr
}

// ReminderAdmin manages templates and reads the message log.
type ReminderAdmin interface {
	ListTemplates(ctx context.Context) ([]models.ReminderTemplate, error)
	UpdateTemplate(ctx context.Context, kind string, message *string, isActive *bool) (models.ReminderTemplate, error)
	RecentLogs(ctx context.Context, limit int) ([]models.ReminderLog, error)
}

var ErrTemplateNotFound = errors.New("template not found")

func (r *GormReminderRepository) ListTemplates(ctx context.Context) ([]models.ReminderTemplate, error) {
	var templates []models.ReminderTemplate
	err := r.db.WithContext(ctx).Order("type").Find(&templates).Error
	return templates, err
}

func (r *GormReminderRepository) UpdateTemplate(ctx context.Context, kind string, message *string, isActive *bool) (models.ReminderTemplate, error) {
	var tpl models.ReminderTemplate
	err := r.db.WithContext(ctx).Where("type = ?", kind).First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tpl, ErrTemplateNotFound
	}
	if err != nil {
		return tpl, err
	}

	if message != nil {
		tpl.Message = *message
	}
	if isActive != nil {
		tpl.IsActive = *isActive
	}
	err = r.db.WithContext(ctx).Save(&tpl).Error
	return tpl, err
}

func (r *GormReminderRepository) RecentLogs(ctx context.Context, limit int) ([]models.ReminderLog, error) {
	var logs []models.ReminderLog
	err := r.db.WithContext(ctx).Order("sent_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}
