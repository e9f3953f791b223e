package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mashkanta-digital/admin-api/internal/models"
	"github.com/mashkanta-digital/admin-api/internal/scheduling"
	"github.com/mashkanta-digital/admin-api/pkg/jobs"
)

type templateFinder interface {
	FindByTrigger(ctx context.Context, trigger string) (*models.MessageTemplate, error)
}

// Sender delivers a rendered message to a customer. The transport
// behind it (SMS gateway, messaging API) is an external collaborator.
type Sender interface {
	Send(ctx context.Context, userID, message string) error
}

// LogSender is the development fallback: it logs instead of delivering.
type LogSender struct {
	Logger *zap.Logger
}

// Send logs the rendered message.
func (s LogSender) Send(_ context.Context, userID, message string) error {
	if s.Logger != nil {
		s.Logger.Info("notification", zap.String("user_id", userID), zap.String("message", message))
	}
	return nil
}

var hebrewWeekdays = [7]string{"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת"}

// NotificationService fires the message side-channel after a meeting is
// scheduled: it finds the template tagged for the trigger, substitutes
// placeholders and hands delivery to the background queue so slow
// transports never block the booking path.
type NotificationService struct {
	templates templateFinder
	sender    Sender
	queue     *jobs.Queue
	logger    *zap.Logger
}

// NewNotificationService constructs the service. When queue is nil the
// send happens inline.
func NewNotificationService(templates templateFinder, sender Sender, queue *jobs.Queue, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{templates: templates, sender: sender, queue: queue, logger: logger}
}

type notificationJob struct {
	UserID  string
	Message string
}

// HandleJob is the queue handler for queued deliveries.
func (s *NotificationService) HandleJob(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(notificationJob)
	if !ok {
		return fmt.Errorf("unexpected notification payload %T", job.Payload)
	}
	return s.sender.Send(ctx, payload.UserID, payload.Message)
}

// MeetingScheduled renders and dispatches the "meeting scheduled"
// message. A missing template means the admin opted out: no message, no
// error. Any failure here is the caller's non-fatal warning; the
// meeting itself is never rolled back.
func (s *NotificationService) MeetingScheduled(ctx context.Context, meeting *models.Meeting) error {
	template, err := s.templates.FindByTrigger(ctx, models.TemplateTriggerMeetingScheduled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("find meeting template: %w", err)
	}

	message := RenderMeetingMessage(template.Body, meeting)
	if s.queue == nil {
		return s.sender.Send(ctx, meeting.UserID, message)
	}
	return s.queue.Enqueue(jobs.Job{
		ID:      uuid.NewString(),
		Type:    models.TemplateTriggerMeetingScheduled,
		Payload: notificationJob{UserID: meeting.UserID, Message: message},
	})
}

// RenderMeetingMessage substitutes the template placeholders:
// {customer} with the customer id/name and {details} with a multi-line
// day/date/time/notes block.
func RenderMeetingMessage(body string, meeting *models.Meeting) string {
	lines := []string{
		"יום " + hebrewWeekdays[meeting.StartsAt.Weekday()],
		meeting.StartsAt.Format(scheduling.DateLayout),
		fmt.Sprintf("%s-%s",
			meeting.StartsAt.Format(scheduling.ClockLayout),
			meeting.EndsAt.Format(scheduling.ClockLayout)),
	}
	if meeting.Notes != "" {
		lines = append(lines, meeting.Notes)
	}
	replacer := strings.NewReplacer(
		"{customer}", meeting.UserID,
		"{details}", strings.Join(lines, "\n"),
	)
	return replacer.Replace(body)
}
