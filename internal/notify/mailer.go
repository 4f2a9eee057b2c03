package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/config"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"

	"gopkg.in/gomail.v2"
)

// mailer implements Notifier over SMTP. When disabled via config it only
// logs what would have been sent, which keeps local development quiet.
type mailer struct {
	dialer  *gomail.Dialer
	from    string
	enabled bool
}

// NewMailer creates an SMTP-backed Notifier from mail configuration.
func NewMailer(cfg config.MailConfig) Notifier {
	m := &mailer{
		from:    cfg.From,
		enabled: cfg.Enabled,
	}
	if cfg.Enabled {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return m
}

// PlanAssigned emails an athlete about their new training plan.
func (m *mailer) PlanAssigned(ctx context.Context, recipient domain.User, plan domain.TrainingPlan) error {
	subject := fmt.Sprintf("New training plan: %s", plan.Title)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour coach assigned you a new training plan %q (%s, %d weeks, %d sessions/week) starting %s.\n\nLog in to review your schedule.\n",
		recipient.Name, plan.Title, plan.Category, plan.Duration.Weeks, plan.Duration.SessionsPerWeek,
		plan.StartDate.Format("2006-01-02"),
	)
	return m.send(ctx, recipient.Email, subject, body)
}

// FeedbackResponded emails an athlete that their feedback got a response.
func (m *mailer) FeedbackResponded(ctx context.Context, recipient domain.User, fb domain.Feedback) error {
	subject := "Your coach responded to your feedback"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s feedback from %s has a new response from your coach.\n\nLog in to read it.\n",
		recipient.Name, fb.Type, fb.CreatedAt.Format("2006-01-02"),
	)
	return m.send(ctx, recipient.Email, subject, body)
}

func (m *mailer) send(ctx context.Context, to, subject, body string) error {
	if !m.enabled {
		log.Printf("INFO: mail disabled, skipping notification to %s: %s", to, subject)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
