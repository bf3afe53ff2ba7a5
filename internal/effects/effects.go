// Package effects carries the side effects a core operation produces
// (in-app notifications, emails) out of the operation itself. Core code emits
// effects after its state change commits; an Outbox drains them to the
// delivery channels, and delivery failures never reach the caller.
package effects

import (
	"context"
	"fmt"
	"strings"
	"time"

	model "auction-marketplace/internal/models"
	"auction-marketplace/utils"
)

type Kind string

const (
	KindNotification Kind = "notification"
	KindEmail        Kind = "email"
)

type Effect struct {
	Kind        Kind
	RecipientID string
	Email       string
	SenderID    string
	ProductID   string
	Type        model.NotificationType
	Title       string
	Message     string
	Link        string
}

// Emitter accepts effects for deferred delivery.
type Emitter interface {
	Emit(ctx context.Context, effects ...Effect)
}

// Nop drops every effect.
type Nop struct{}

func (Nop) Emit(context.Context, ...Effect) {}

// NotificationWriter persists in-app notifications.
type NotificationWriter interface {
	CreateNotification(ctx context.Context, n model.Notification) error
}

type Email struct {
	UserID  string `json:"user_id"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Mailer hands an email to whatever relay actually sends it.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// Publisher broadcasts an event to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// Deliverer delivers a single effect.
type Deliverer interface {
	Deliver(ctx context.Context, e Effect) error
}

// Dispatcher routes effects to the notification store, the mailer and,
// when configured, the event publisher.
type Dispatcher struct {
	notifications NotificationWriter
	mailer        Mailer
	publisher     Publisher
	now           func() time.Time
}

// NewDispatcher builds a Dispatcher. publisher may be nil.
func NewDispatcher(notifications NotificationWriter, mailer Mailer, publisher Publisher) *Dispatcher {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &Dispatcher{
		notifications: notifications,
		mailer:        mailer,
		publisher:     publisher,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (d *Dispatcher) Deliver(ctx context.Context, e Effect) error {
	switch e.Kind {
	case KindNotification:
		n := model.Notification{
			NotificationID: utils.GenerateID(),
			UserID:         e.RecipientID,
			SenderID:       e.SenderID,
			ProductID:      e.ProductID,
			Type:           e.Type,
			Title:          e.Title,
			Message:        e.Message,
			Link:           e.Link,
			CreatedAt:      d.now(),
		}
		if n.Type == "" {
			n.Type = model.NotificationGeneral
		}
		if err := d.notifications.CreateNotification(ctx, n); err != nil {
			return fmt.Errorf("effects: store notification for %s: %w", e.RecipientID, err)
		}
		if d.publisher != nil {
			subject := "notification." + strings.ToLower(string(n.Type))
			if err := d.publisher.Publish(ctx, subject, n); err != nil {
				return fmt.Errorf("effects: publish notification %s: %w", n.NotificationID, err)
			}
		}
		return nil

	case KindEmail:
		if e.Email == "" {
			return fmt.Errorf("effects: no email address for user %s", e.RecipientID)
		}
		email := Email{UserID: e.RecipientID, To: e.Email, Subject: e.Title, Body: e.Message}
		if err := d.mailer.Send(ctx, email); err != nil {
			return fmt.Errorf("effects: send email to %s: %w", e.RecipientID, err)
		}
		return nil

	default:
		return fmt.Errorf("effects: unknown effect kind %q", e.Kind)
	}
}

// LogMailer only logs. Used when no mail relay is configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, email Email) error {
	utils.Info("email relay not configured, email logged only", map[string]any{
		"user_id": email.UserID,
		"to":      email.To,
		"subject": email.Subject,
	})
	return nil
}

// Synchronous delivers effects in the caller's goroutine, logging failures.
type Synchronous struct {
	Deliverer Deliverer
}

func (s Synchronous) Emit(ctx context.Context, effects ...Effect) {
	for _, e := range effects {
		deliverLogged(ctx, s.Deliverer, e)
	}
}

func deliverLogged(ctx context.Context, d Deliverer, e Effect) {
	if err := d.Deliver(ctx, e); err != nil {
		utils.Error("effect delivery failed", map[string]any{
			"kind":       e.Kind,
			"type":       e.Type,
			"recipient":  e.RecipientID,
			"product_id": e.ProductID,
			"error":      err.Error(),
		})
	}
}
